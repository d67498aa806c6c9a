package main

import (
	"errors"
	"strings"

	"github.com/fwojciec/blotter"
)

// ExitCode maps an error to the process exit status. For joined errors the
// first one decides.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch blotter.ErrorCode(err) {
	case blotter.EINVALID:
		return 2
	case blotter.ERESET:
		return 3
	case blotter.EFETCH:
		return 4
	case blotter.EDECODE:
		return 5
	case blotter.ESTORE:
		return 6
	case blotter.EEXPORT:
		return 7
	default:
		return 1
	}
}

// FormatError renders err for the console, one "error: " line per failure.
func FormatError(err error) string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var lines []string
		for _, e := range joined.Unwrap() {
			lines = append(lines, FormatError(e))
		}
		return strings.Join(lines, "\n")
	}

	var e *blotter.Error
	if !errors.As(err, &e) {
		return "error: " + err.Error()
	}
	return "error: " + blotter.ErrorMessage(err)
}
