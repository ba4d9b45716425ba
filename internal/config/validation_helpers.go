package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	huepickerrors "github.com/alexisbeaulieu97/huepick/pkg/errors"
)

// convertValidationError normalizes validator errors into huepick validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return huepickerrors.NewValidationError(field, msg, err)
	}

	return huepickerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns Config.Log.Level into log.level.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	t := reflect.TypeOf(Config{})
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.ToLower(part)
		if t.Kind() == reflect.Struct {
			if f, ok := t.FieldByName(part); ok {
				if tag := strings.Split(f.Tag.Get("yaml"), ",")[0]; tag != "" {
					name = tag
				}
				t = f.Type
			}
		}
		lowered = append(lowered, name)
	}
	return strings.Join(lowered, ".")
}
