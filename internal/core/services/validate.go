package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alao-ohio/roster/internal/core/domain"
)

// settingsValidator checks the validate tags on domain.CleanSettings.
var settingsValidator = newSettingsValidator()

func newSettingsValidator() *validator.Validate {
	v := validator.New()

	if err := v.RegisterValidation("notblank", validateNotBlank); err != nil {
		panic(fmt.Sprintf("register notblank validator: %v", err))
	}
	if err := v.RegisterValidation("rule", validateRule); err != nil {
		panic(fmt.Sprintf("register rule validator: %v", err))
	}

	return v
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateRule(fl validator.FieldLevel) bool {
	return domain.Rule(fl.Field().String()).IsValid()
}

// settingsKeys maps struct fields to the config keys users edit.
var settingsKeys = map[string]string{
	"InputPath":   keyInputPath,
	"OutputPath":  keyOutputPath,
	"DropColumns": keyDropColumns,
}

// validateSettings reports every tag failure on settings and its bindings,
// plus columns that are both dropped and bound.
func validateSettings(settings *domain.CleanSettings) []error {
	var errs []error

	errs = append(errs, structErrors(settings, func(fe validator.FieldError) error {
		field, _, _ := strings.Cut(fe.StructField(), "[")
		key := settingsKeys[field]
		switch fe.Tag() {
		case "nefield":
			return fmt.Errorf("%w: %s and %s are the same file", domain.ErrInvalidInput, keyInputPath, key)
		default:
			return fmt.Errorf("%w: %s has an empty value", domain.ErrInvalidInput, key)
		}
	})...)

	for _, b := range settings.Bindings {
		errs = append(errs, structErrors(b, func(fe validator.FieldError) error {
			if fe.Tag() == "rule" {
				return fmt.Errorf("%w: %s.%s = %q", domain.ErrUnknownRule, prefixColumns, b.Column, b.Rule)
			}
			return fmt.Errorf("%w: %s has an empty column name", domain.ErrInvalidInput, prefixColumns)
		})...)
	}

	bound := make(map[string]domain.Rule, len(settings.Bindings))
	for _, b := range settings.Bindings {
		bound[b.Column] = b.Rule
	}
	for _, c := range settings.DropColumns {
		if rule, ok := bound[c]; ok {
			errs = append(errs, fmt.Errorf("%w: column %q is both dropped and bound to %s",
				domain.ErrInvalidInput, c, rule))
		}
	}

	return errs
}

// structErrors runs the validator and converts each field failure with fn.
func structErrors(s any, fn func(validator.FieldError) error) []error {
	err := settingsValidator.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []error{err}
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, fn(fe))
	}
	return errs
}
