package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"tramondo/pkg/config"
	apperrors "tramondo/pkg/errors"
	"tramondo/pkg/model"
)

var reSlug = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	return fmt.Sprintf("validation failed: %d error(s)", len(v))
}

// Details maps each offending JSON field to its message.
func (v ValidationErrors) Details() map[string]any {
	details := make(map[string]any, len(v))
	for _, e := range v {
		details[e.Field] = e.Message
	}
	return details
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("activity_type", validateActivityType)
	_ = v.RegisterValidation("slug", validateSlug)
	_ = v.RegisterValidation("timestamp", validateTimestamp)
	_ = v.RegisterValidation("booking_status", validateBookingStatus)

	return &Validator{validate: v}
}

// Validate checks a struct against its validate tags. Tag failures come back
// as ValidationErrors; anything else is returned unchanged.
func (v *Validator) Validate(s any) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	validationErrors := make(ValidationErrors, 0, len(errs))

	for _, err := range errs {
		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message(err),
		})
	}

	return validationErrors
}

func message(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		if isNumeric(err.Kind()) {
			return fmt.Sprintf("must be at least %s", err.Param())
		}
		return fmt.Sprintf("must be at least %s characters", err.Param())
	case "max":
		if isNumeric(err.Kind()) {
			return fmt.Sprintf("must be at most %s", err.Param())
		}
		return fmt.Sprintf("must be at most %s characters", err.Param())
	case "email":
		return "must be a valid email address"
	case "activity_type":
		return "must be one of " + strings.Join(config.ActivityTypes, ", ")
	case "slug":
		return "must contain only lower-case letters, digits and single dashes"
	case "timestamp":
		return "must be an ISO 8601 date"
	case "booking_status":
		return "must be one of " + strings.Join(config.BookingStatuses, ", ")
	default:
		return fmt.Sprintf("failed on %s", err.Tag())
	}
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func validateActivityType(fl validator.FieldLevel) bool {
	return slices.Contains(config.ActivityTypes, fl.Field().String())
}

func validateSlug(fl validator.FieldLevel) bool {
	return reSlug.MatchString(fl.Field().String())
}

func validateTimestamp(fl validator.FieldLevel) bool {
	_, err := model.ParseTimestamp(fl.Field().String())
	return err == nil
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	return slices.Contains(config.BookingStatuses, fl.Field().String())
}

// AsAppError turns a Validate failure into the 400 clients see, keeping the
// per-field messages as details.
func AsAppError(message string, err error) *apperrors.AppError {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.Validation(message, verrs.Details())
	}
	return apperrors.Validation(message, nil)
}
