package printf

import (
	"errors"
	"fmt"

	"github.com/joeshaw/envdecode"
)

// ConfigFromEnv reads a [Config] from PRINTF_* environment variables.
// Unset variables leave their fields at the zero value.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	return cfg, nil
}
