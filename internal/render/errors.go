package render

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed statements. Compilation wraps them with
// context; match with errors.Is.
var (
	ErrNoTable        = errors.New("statement has no target table")
	ErrRowLength      = errors.New("row width does not match column list")
	ErrEmptyStatement = errors.New("statement is incomplete")
	ErrEmptyList      = errors.New("empty expression list")
	ErrInvalidExpr    = errors.New("invalid expression")
)

// UnsupportedFeatureError indicates a feature not supported by the dialect.
type UnsupportedFeatureError struct {
	Feature string
	Dialect string
	Hint    string
}

func (e UnsupportedFeatureError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s is not supported: %s", e.Dialect, e.Feature, e.Hint)
	}
	return fmt.Sprintf("%s: %s is not supported", e.Dialect, e.Feature)
}

// NewUnsupportedFeatureError creates a new unsupported feature error.
func NewUnsupportedFeatureError(dialect, feature string, hint ...string) error {
	err := UnsupportedFeatureError{Feature: feature, Dialect: dialect}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}

// IsUnsupported reports whether err is, or wraps, an UnsupportedFeatureError.
func IsUnsupported(err error) bool {
	var uf UnsupportedFeatureError
	return errors.As(err, &uf)
}
