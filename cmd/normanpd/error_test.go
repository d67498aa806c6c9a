package main_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/blotter"
	main "github.com/fwojciec/blotter/cmd/normanpd"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"internal", errors.New("boom"), 1},
		{"invalid", blotter.Errorf(blotter.EINVALID, "bad"), 2},
		{"reset", blotter.Errorf(blotter.ERESET, "bad"), 3},
		{"fetch", blotter.Errorf(blotter.EFETCH, "bad"), 4},
		{"decode", blotter.Errorf(blotter.EDECODE, "bad"), 5},
		{"store", blotter.Errorf(blotter.ESTORE, "bad"), 6},
		{"export", blotter.Errorf(blotter.EEXPORT, "bad"), 7},
		{"not found", blotter.Errorf(blotter.ENOTFOUND, "bad"), 1},
		{
			"store outranks export",
			errors.Join(blotter.Errorf(blotter.ESTORE, "insert"), blotter.Errorf(blotter.EEXPORT, "write")),
			6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, main.ExitCode(tt.err))
		})
	}
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := blotter.WrapError(blotter.EFETCH, errors.New("HTTP 503"), "fetch %s", "https://example.com")
		assert.Equal(t, "error: fetch https://example.com: HTTP 503", main.FormatError(err))
	})

	t.Run("plain error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "error: boom", main.FormatError(errors.New("boom")))
	})

	t.Run("joined errors", func(t *testing.T) {
		t.Parallel()
		err := errors.Join(
			blotter.Errorf(blotter.ESTORE, "store incidents"),
			blotter.Errorf(blotter.EEXPORT, "write artifacts"),
		)
		assert.Equal(t, "error: store incidents\nerror: write artifacts", main.FormatError(err))
	})
}
