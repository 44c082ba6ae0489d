package appcore

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// progress is a task counter bar; the zero value is a no-op.
type progress struct {
	bar *pb.ProgressBar
}

func startProgress(enabled bool, w io.Writer) *progress {
	if !enabled {
		return &progress{}
	}
	bar := pb.Simple.New(0)
	bar.SetWriter(w)
	bar.Start()
	return &progress{bar: bar}
}

// add grows the total as records are read; the record count is not known
// up front.
func (p *progress) add(n int) {
	if p.bar != nil {
		p.bar.AddTotal(int64(n))
	}
}

func (p *progress) done() {
	if p.bar != nil {
		p.bar.Increment()
	}
}

func (p *progress) finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}
