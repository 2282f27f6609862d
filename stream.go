package printf

import (
	"io"
	"iter"
)

// WriteIter formats template once per argument list produced by seq and
// writes each result to w on its own line. Lines are written as they
// arrive. Iteration stops at the first write error, which is returned.
func (f *Formatter) WriteIter(w io.Writer, template string, seq iter.Seq[[]any]) error {
	var writeErr error
	seq(func(args []any) bool {
		if _, err := io.WriteString(w, f.Sprintf(template, args...)+"\n"); err != nil {
			writeErr = err
			return false
		}
		return true
	})
	return writeErr
}

// WriteChan formats argument lists received from ch and writes them to w.
// It is a thin wrapper around [Formatter.WriteIter]. On a write error the
// channel is left undrained.
func (f *Formatter) WriteChan(w io.Writer, template string, ch <-chan []any) error {
	return f.WriteIter(w, template, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
