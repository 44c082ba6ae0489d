package appcore

import (
	"context"

	"github.com/sirupsen/logrus"

	"telofind/internal/writers"
)

// sink pairs a staged report with its line writer goroutine.
type sink[T any] struct {
	rep  *writers.Report
	in   chan<- T
	errc <-chan error
	sent int
}

func openSink[T any](path, header string, row func(T) string, bufSize int, log logrus.FieldLogger) (*sink[T], error) {
	rep, err := writers.CreateReport(path)
	if err != nil {
		return nil, err
	}
	in, errc := writers.StartLines[T](rep, bufSize, header, row, log.WithField("report", path))
	return &sink[T]{rep: rep, in: in, errc: errc}, nil
}

func (s *sink[T]) send(ctx context.Context, v T) error {
	select {
	case s.in <- v:
		s.sent++
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// close stops the writer and returns its error. Safe to call once.
func (s *sink[T]) close() error {
	close(s.in)
	return <-s.errc
}

func (s *sink[T]) commit() error { return s.rep.Commit() }

func (s *sink[T]) abort() { s.rep.Abort() }

func (s *sink[T]) path() string { return s.rep.Path() }
