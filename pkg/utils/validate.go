package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	domainVehicle "fleet-maintenance-manager/internal/domain/vehicle"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

var (
	validate *validator.Validate

	mobileNumberRe = regexp.MustCompile(`^[0-9]\d{9}$`)
	policyNumberRe = regexp.MustCompile(`^[A-Z0-9/-]+$`)
)

func init() {
	validate = validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	_ = validate.RegisterValidation("fuel_type", validateFuelType)
	_ = validate.RegisterValidation("mobile_number", validateMobileNumber)
	_ = validate.RegisterValidation("policy_number", validatePolicyNumber)
	_ = validate.RegisterValidation("date", validateDate)
	_ = validate.RegisterValidation("pastdate", validatePastDate)
	_ = validate.RegisterValidation("trimmed_min", validateTrimmedMin)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// FieldErrors flattens a validator error into the per-field error map used
// by the API envelope. An empty map means the input was valid.
func FieldErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)
	if err == nil {
		return fieldErrors
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fieldErrors["_form"] = err.Error()
		return fieldErrors
	}

	for _, fe := range verrs {
		fieldErrors[fe.Field()] = fieldErrorMessage(fe)
	}
	return fieldErrors
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min", "trimmed_min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "fuel_type":
		return fmt.Sprintf("%s must be one of: Petrol, Diesel, Electric, Hybrid, CNG", fe.Field())
	case "mobile_number":
		return fmt.Sprintf("%s must be exactly 10 digits", fe.Field())
	case "policy_number":
		return fmt.Sprintf("%s may only contain A-Z, 0-9, '/' and '-'", fe.Field())
	case "date":
		return fmt.Sprintf("%s must be a valid date (YYYY-MM-DD)", fe.Field())
	case "pastdate":
		return fmt.Sprintf("%s must not be in the future", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func validateFuelType(fl validator.FieldLevel) bool {
	return domainVehicle.IsValidFuelType(fl.Field().String())
}

// validateTrimmedMin enforces a minimum character count after surrounding
// whitespace is stripped. The stored value is trimmed the same way, so the
// length rule holds for what actually gets persisted.
func validateTrimmedMin(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= n
}

func validateMobileNumber(fl validator.FieldLevel) bool {
	return mobileNumberRe.MatchString(fl.Field().String())
}

func validatePolicyNumber(fl validator.FieldLevel) bool {
	return policyNumberRe.MatchString(fl.Field().String())
}

func validateDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(dateLayout, fl.Field().String())
	return err == nil
}

// validatePastDate accepts dates up to and including today; strictly future
// dates fail.
func validatePastDate(fl validator.FieldLevel) bool {
	d, err := time.Parse(dateLayout, fl.Field().String())
	if err != nil {
		return false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !d.After(today)
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
