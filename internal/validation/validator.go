package validation

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "fioapi/internal/errors"
	"fioapi/internal/models"
)

// TokenLength is the exact length of an API token issued by the bank
const TokenLength = 64

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("report_format", validateReportFormat)
	_ = v.RegisterValidation("statement_format", validateStatementFormat)
	_ = v.RegisterValidation("fio_token", validateToken)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and converts the first failure into a VALIDATION error.
// Format rules map to VALIDATION_003, everything else to VALIDATION_002.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.New(apperrors.ValidationInvalidParameter, apperrors.WithCause(err))
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "report_format", "statement_format":
		return apperrors.New(apperrors.ValidationInvalidFormat,
			apperrors.WithDetails(fmt.Sprintf("%s: %q is not a supported format", fe.Field(), fe.Value())))
	default:
		return apperrors.NewInvalidParameter(FormatFieldError(fe))
	}
}

// FormatFieldError renders a field error as a short sentence
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "fio_token":
		return fmt.Sprintf("%s must be exactly %d characters", fe.Field(), TokenLength)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	default:
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
}

// Custom validation functions

// validateReportFormat accepts the formats of the transaction report endpoints
func validateReportFormat(fl validator.FieldLevel) bool {
	return models.TransactionReportFormat(fl.Field().String()).IsValid()
}

// validateStatementFormat accepts the formats of the official statement endpoint
func validateStatementFormat(fl validator.FieldLevel) bool {
	return models.AccountStatementFormat(fl.Field().String()).IsValid()
}

// validateToken checks the token length in bytes
func validateToken(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) == TokenLength
}
