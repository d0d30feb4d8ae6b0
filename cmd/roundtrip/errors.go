package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nomagicln/roundtrip/pkg/codegen"
	"github.com/nomagicln/roundtrip/pkg/config"
)

// FormatError formats an error into a user-friendly message.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var validationErrs []*config.ValidationError
	collectValidationErrors(err, &validationErrs)
	if len(validationErrs) > 0 {
		return formatValidationErrors(validationErrs)
	}

	switch {
	case errors.Is(err, codegen.ErrNoPackage):
		return fmt.Sprintf("Error: %s\n\nRun roundtrip in a directory containing Go files, or pass one as argument.", err)
	case errors.Is(err, os.ErrNotExist):
		return fmt.Sprintf("Error: %s\n\nRun 'roundtrip init' to create a configuration file.", err)
	case errors.Is(err, codegen.ErrUnsupportedFormat):
		return fmt.Sprintf("Error: %s\n\nSupported formats: %s", err, strings.Join(codegen.ListFormats(), ", "))
	default:
		return fmt.Sprintf("Error: %s", err)
	}
}

// collectValidationErrors walks err, including joined errors.
func collectValidationErrors(err error, out *[]*config.ValidationError) {
	if err == nil {
		return
	}
	if v, ok := err.(*config.ValidationError); ok {
		*out = append(*out, v)
		return
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			collectValidationErrors(e, out)
		}
		return
	}
	collectValidationErrors(errors.Unwrap(err), out)
}

func formatValidationErrors(errs []*config.ValidationError) string {
	var sb strings.Builder
	sb.WriteString("Error: invalid configuration\n\n")
	for _, e := range errs {
		sb.WriteString(fmt.Sprintf("  %s: %s (got %v)\n", e.Field, e.Reason, e.Value))
	}
	return strings.TrimRight(sb.String(), "\n")
}
