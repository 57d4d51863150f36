package domain

import (
	m "github.com/mouse-blink/modegen/internal/model"
)

// Validator turns a decoded configuration document into a validated Config.
type Validator interface {
	Validate(raw map[string]any) (m.Config, error)
}

type validator struct{}

// NewValidator creates a Validator.
func NewValidator() Validator {
	return &validator{}
}

// Validate checks every field before anything is generated and fills in
// defaults. The first violation is returned.
func (v *validator) Validate(raw map[string]any) (m.Config, error) {
	name, ok := raw["variableName"].(string)
	if !ok {
		return m.Config{}, invalid(ErrInvalidVariableName, "variableName", raw["variableName"], "must be a string")
	}

	if name == "" {
		return m.Config{}, invalid(ErrInvalidVariableName, "variableName", name, "must not be empty")
	}

	cfg := m.DefaultConfig(name)

	if value, present := raw["defaultMode"]; present {
		mode, ok := value.(string)
		if !ok || !m.Mode(mode).Valid() {
			return m.Config{}, invalid(ErrInvalidMode, "defaultMode", value, "must be one of system, dark, light")
		}

		cfg.DefaultMode = m.Mode(mode)
	}

	if value, present := raw["persist"]; present {
		persist, err := validatePersist(value)
		if err != nil {
			return m.Config{}, err
		}

		cfg.Persist = persist
	}

	if value, present := raw["apply"]; present {
		apply, err := validateApply(value)
		if err != nil {
			return m.Config{}, err
		}

		cfg.Apply = apply
	}

	return cfg, nil
}

func validatePersist(value any) (m.Persist, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return m.Persist{}, invalid(ErrInvalidPersistType, "persist", value, "must be an object")
	}

	persist := m.Persist{Type: m.PersistCookie, Key: m.DefaultPersistKey}

	if v, present := obj["type"]; present {
		s, ok := v.(string)
		if !ok || !m.PersistType(s).Valid() {
			return m.Persist{}, invalid(ErrInvalidPersistType, "persist.type", v, "must be one of cookie, localStorage, sessionStorage")
		}

		persist.Type = m.PersistType(s)
	}

	if v, present := obj["key"]; present {
		s, ok := v.(string)
		if !ok {
			return m.Persist{}, invalid(ErrInvalidPersistKey, "persist.key", v, "must be a string")
		}

		persist.Key = s
	}

	if v, present := obj["cookieSystemThemeKey"]; present {
		s, ok := v.(string)
		if !ok {
			return m.Persist{}, invalid(ErrInvalidPersistCookieKey, "persist.cookieSystemThemeKey", v, "must be a string")
		}

		if s != "" {
			persist.CookieSystemThemeKey = &s
		}
	}

	if v, present := obj["custom"]; present {
		b, ok := v.(bool)
		if !ok {
			return m.Persist{}, invalid(ErrInvalidPersistCustomFlag, "persist.custom", v, "must be a boolean")
		}

		persist.Custom = b
	}

	return persist, nil
}

func validateApply(value any) (m.Apply, error) {
	if s, ok := value.(string); ok && s == "custom" {
		return m.Apply{Custom: true}, nil
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return m.Apply{}, invalid(ErrInvalidApplyShape, "apply", value, `must be "custom" or an object`)
	}

	apply := m.Apply{
		QuerySelector: m.DefaultQuerySelector,
		DarkClassName: m.DefaultDarkClassName,
	}

	if v, present := obj["querySelector"]; present {
		s, ok := v.(string)
		if !ok {
			return m.Apply{}, invalid(ErrInvalidApplyQuerySelector, "apply.querySelector", v, "must be a string")
		}

		apply.QuerySelector = s
	}

	if v, present := obj["darkClassName"]; present {
		s, ok := v.(string)
		if !ok || s == "" {
			return m.Apply{}, invalid(ErrInvalidApplyClassName, "apply.darkClassName", v, "must be a non-empty string")
		}

		apply.DarkClassName = s
	}

	if v, present := obj["lightClassName"]; present && v != nil {
		s, ok := v.(string)
		if !ok || s == "" {
			return m.Apply{}, invalid(ErrInvalidApplyClassName, "apply.lightClassName", v, "must be a non-empty string or null")
		}

		apply.LightClassName = &s
	}

	return apply, nil
}
