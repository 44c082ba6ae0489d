package cmdutil

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevels(t *testing.T) {
	var b bytes.Buffer
	assert.Equal(t, logrus.WarnLevel, NewLogger(&b, true, true).GetLevel())
	assert.Equal(t, logrus.DebugLevel, NewLogger(&b, false, true).GetLevel())
	assert.Equal(t, logrus.InfoLevel, NewLogger(&b, false, false).GetLevel())
}

func TestNewLoggerTextNoTimestamp(t *testing.T) {
	var b bytes.Buffer
	l := NewLogger(&b, false, false)
	l.WithField("record", "chr1").Info("processed")
	out := b.String()
	assert.Contains(t, out, `level=info msg=processed record=chr1`)
	assert.NotContains(t, out, "time=")
}
