package appshell

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunPassesHelpWhenNoArgs(t *testing.T) {
	var got []string
	code := run(func(_ context.Context, argv []string, _, _ io.Writer) int {
		got = argv
		return 0
	}, nil, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"--help"}, got)
}

func TestRunReturnsCode(t *testing.T) {
	code := run(func(context.Context, []string, io.Writer, io.Writer) int { return 3 },
		[]string{"explore"}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Equal(t, 3, code)
}
