package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInputFormat marks input that is structurally unrecognizable. Fatal.
	ErrInputFormat = errors.New("input format error")
	// ErrEmptyInput marks input that parsed but yielded zero usable
	// utterances. Fatal.
	ErrEmptyInput = errors.New("empty input")
	// ErrValidation marks configuration or argument values that fail checks.
	ErrValidation = errors.New("validation error")
	// ErrConfiguration marks unusable configuration files.
	ErrConfiguration = errors.New("configuration error")
	// ErrExternalTool marks failures in external binaries such as ffprobe.
	ErrExternalTool = errors.New("external tool error")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrValidation
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsFatal reports whether the error carries one of the markers that must
// abort a run rather than degrade output quality.
func IsFatal(err error) bool {
	return errors.Is(err, ErrInputFormat) ||
		errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrConfiguration)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
