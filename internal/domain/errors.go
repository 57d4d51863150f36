package domain

import (
	"errors"
	"fmt"
)

// Configuration error kinds. Every error returned by Validator wraps one of
// them, so callers can match with errors.Is.
var (
	ErrInvalidMode               = errors.New("invalid mode")
	ErrInvalidPersistType        = errors.New("invalid persist type")
	ErrInvalidPersistKey         = errors.New("invalid persist key")
	ErrInvalidPersistCookieKey   = errors.New("invalid persist cookieSystemThemeKey")
	ErrInvalidPersistCustomFlag  = errors.New("invalid persist custom flag")
	ErrInvalidApplyShape         = errors.New("invalid apply")
	ErrInvalidApplyQuerySelector = errors.New("invalid apply query selector")
	ErrInvalidApplyClassName     = errors.New("invalid apply class name")
	ErrInvalidVariableName       = errors.New("invalid variable name")
)

// ValidationError reports which configuration field failed and why.
type ValidationError struct {
	Kind   error
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s %s (got %s)", e.Kind, e.Field, e.Reason, describe(e.Value))
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func invalid(kind error, field string, value any, reason string) error {
	return &ValidationError{Kind: kind, Field: field, Value: value, Reason: reason}
}

func describe(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", v)
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%v", v)
	}
}
