package domain

import (
	"errors"
	"testing"

	m "github.com/mouse-blink/modegen/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Defaults(t *testing.T) {
	cfg, err := NewValidator().Validate(map[string]any{"variableName": "myDarkMode"})
	require.NoError(t, err)

	assert.Equal(t, "myDarkMode", cfg.VariableName)
	assert.Equal(t, m.ModeSystem, cfg.DefaultMode)
	assert.Equal(t, m.Persist{Type: m.PersistCookie, Key: "dark"}, cfg.Persist)
	assert.Equal(t, m.Apply{QuerySelector: "html", DarkClassName: "dark"}, cfg.Apply)
}

func TestValidator_FullConfig(t *testing.T) {
	cfg, err := NewValidator().Validate(map[string]any{
		"variableName": "theme",
		"defaultMode":  "light",
		"persist": map[string]any{
			"type":                 "cookie",
			"key":                  "mode",
			"cookieSystemThemeKey": "sys",
		},
		"apply": map[string]any{
			"querySelector":  "body",
			"darkClassName":  "is-dark",
			"lightClassName": "is-light",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, m.ModeLight, cfg.DefaultMode)
	assert.Equal(t, "mode", cfg.Persist.Key)
	require.NotNil(t, cfg.Persist.CookieSystemThemeKey)
	assert.Equal(t, "sys", *cfg.Persist.CookieSystemThemeKey)
	assert.Equal(t, "body", cfg.Apply.QuerySelector)
	assert.Equal(t, "is-dark", cfg.Apply.DarkClassName)
	require.NotNil(t, cfg.Apply.LightClassName)
	assert.Equal(t, "is-light", *cfg.Apply.LightClassName)
}

func TestValidator_PartialObjectsKeepDefaults(t *testing.T) {
	cfg, err := NewValidator().Validate(map[string]any{
		"variableName": "v",
		"persist":      map[string]any{"type": "sessionStorage"},
		"apply":        map[string]any{"lightClassName": nil},
	})
	require.NoError(t, err)

	assert.Equal(t, m.Persist{Type: m.PersistSessionStorage, Key: "dark"}, cfg.Persist)
	assert.Equal(t, m.Apply{QuerySelector: "html", DarkClassName: "dark"}, cfg.Apply)
}

func TestValidator_CustomFlags(t *testing.T) {
	cfg, err := NewValidator().Validate(map[string]any{
		"variableName": "v",
		"persist":      map[string]any{"custom": true},
		"apply":        "custom",
	})
	require.NoError(t, err)

	assert.True(t, cfg.Persist.Custom)
	assert.Equal(t, m.Apply{Custom: true}, cfg.Apply)
}

func TestValidator_EmptyCookieSystemThemeKeyIsAbsent(t *testing.T) {
	cfg, err := NewValidator().Validate(map[string]any{
		"variableName": "v",
		"persist":      map[string]any{"cookieSystemThemeKey": ""},
	})
	require.NoError(t, err)

	assert.Nil(t, cfg.Persist.CookieSystemThemeKey)
}

func TestValidator_Errors(t *testing.T) {
	tests := []struct {
		name  string
		raw   map[string]any
		kind  error
		field string
	}{
		{"missing variable name", map[string]any{}, ErrInvalidVariableName, "variableName"},
		{"numeric variable name", map[string]any{"variableName": 3.0}, ErrInvalidVariableName, "variableName"},
		{"empty variable name", map[string]any{"variableName": ""}, ErrInvalidVariableName, "variableName"},
		{"unknown mode", map[string]any{"variableName": "v", "defaultMode": "purple"}, ErrInvalidMode, "defaultMode"},
		{"non-string mode", map[string]any{"variableName": "v", "defaultMode": true}, ErrInvalidMode, "defaultMode"},
		{"persist not an object", map[string]any{"variableName": "v", "persist": "cookie"}, ErrInvalidPersistType, "persist"},
		{"unknown persist type", map[string]any{"variableName": "v", "persist": map[string]any{"type": "indexedDB"}}, ErrInvalidPersistType, "persist.type"},
		{"non-string persist key", map[string]any{"variableName": "v", "persist": map[string]any{"key": 1.0}}, ErrInvalidPersistKey, "persist.key"},
		{"non-string system theme key", map[string]any{"variableName": "v", "persist": map[string]any{"cookieSystemThemeKey": false}}, ErrInvalidPersistCookieKey, "persist.cookieSystemThemeKey"},
		{"non-bool custom", map[string]any{"variableName": "v", "persist": map[string]any{"custom": "yes"}}, ErrInvalidPersistCustomFlag, "persist.custom"},
		{"apply other string", map[string]any{"variableName": "v", "apply": "auto"}, ErrInvalidApplyShape, "apply"},
		{"apply array", map[string]any{"variableName": "v", "apply": []any{}}, ErrInvalidApplyShape, "apply"},
		{"non-string selector", map[string]any{"variableName": "v", "apply": map[string]any{"querySelector": 1.0}}, ErrInvalidApplyQuerySelector, "apply.querySelector"},
		{"empty dark class", map[string]any{"variableName": "v", "apply": map[string]any{"darkClassName": ""}}, ErrInvalidApplyClassName, "apply.darkClassName"},
		{"non-string light class", map[string]any{"variableName": "v", "apply": map[string]any{"lightClassName": 2.0}}, ErrInvalidApplyClassName, "apply.lightClassName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewValidator().Validate(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	_, err := NewValidator().Validate(map[string]any{"variableName": "v", "defaultMode": "purple"})
	require.Error(t, err)

	assert.Equal(t, `invalid mode: defaultMode must be one of system, dark, light (got "purple")`, err.Error())
}
