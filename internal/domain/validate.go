package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports the first field of a record that failed validation.
type ValidationError struct {
	Record string
	Field  string
	Rule   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s %s", e.Record, e.Field, ruleMessage(e.Rule))
}

func ruleMessage(rule string) string {
	switch rule {
	case "required", "notblank":
		return "is required"
	case "gt":
		return "must be at least 1"
	case "hexcolor":
		return "must be a hex color such as #22c55e"
	case "oneof":
		return "must be one of: done, failed"
	case "isodate":
		return "must be a date in YYYY-MM-DD form"
	default:
		return "is invalid (" + rule + ")"
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func recordValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(DateLayout, fl.Field().String())
			return err == nil
		})
		validate = v
	})
	return validate
}

func validateRecord(record string, v any) error {
	err := recordValidator().Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{Record: record, Field: fe.Field(), Rule: fe.Tag()}
	}
	return fmt.Errorf("validating %s: %w", record, err)
}
