// internal/writers/lines.go
package writers

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Line buffers are reused across writers.
var linePool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 256)
		return &b
	},
}

// StartLines spins up a writer goroutine that formats each T as one line.
//   - header: written first when non-empty
//   - format: renders one value, without the trailing newline
//
// Every line reaches out in a single Write, so a failed write costs exactly
// that line: it is logged and skipped and writing resumes. Only a broken pipe
// stops the writer; it is returned on the error channel after the input drains.
// out should do its own buffering if it needs any.
func StartLines[T any](out io.Writer, bufSize int, header string, format func(T) string, log logrus.FieldLogger) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bp := linePool.Get().(*[]byte)
		defer linePool.Put(bp)

		skipped := 0
		write := func(line string) error {
			buf := append(append((*bp)[:0], line...), '\n')
			*bp = buf
			if _, err := out.Write(buf); err != nil {
				if IsBrokenPipe(err) {
					return err
				}
				skipped++
				log.WithError(err).Warn("report line not written; skipping")
			}
			return nil
		}

		var fatal error
		if header != "" {
			fatal = write(header)
		}
		for v := range in {
			if fatal != nil {
				continue
			}
			fatal = write(format(v))
		}
		if skipped > 0 {
			log.WithField("skipped", skipped).Warn("report is incomplete")
		}
		done <- fatal
	}()

	return in, done
}
