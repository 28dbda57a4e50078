package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"travel-backend/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	phoneRegex   = regexp.MustCompile(`^\d{10}$`)
	registerOnce sync.Once
	registerErr  error
)

// ValidPhone accepts exactly ten digits.
func ValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ValidPassword requires at least eight letters or digits with at least one
// of each.
func ValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var letter, digit bool
	for _, r := range password {
		switch {
		case r < unicode.MaxASCII && unicode.IsLetter(r):
			letter = true
		case r < unicode.MaxASCII && unicode.IsDigit(r):
			digit = true
		default:
			return false
		}
	}
	return letter && digit
}

func ValidCategory(category string) bool {
	for _, c := range models.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// RegisterValidators installs the custom binding tags (phone10, password,
// category) and makes validation errors report JSON field names.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		rules := map[string]func(string) bool{
			"phone10":  ValidPhone,
			"password": ValidPassword,
			"category": ValidCategory,
		}
		for tag, fn := range rules {
			if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
				return fn(fl.Field().String())
			}); err != nil {
				registerErr = err
				return
			}
		}
	})
	return registerErr
}

// FieldError turns a binding error into the top-level JSON field it concerns
// and a human message. messages overrides the default text per field.
func FieldError(err error, messages map[string]string) (string, string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := topLevelField(fe.Namespace())
		if msg, ok := messages[field]; ok {
			return field, msg
		}
		return field, defaultMessage(field, fe)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := topLevelField("." + typeErr.Field)
		if msg, ok := messages[field]; ok {
			return field, msg
		}
		return field, fmt.Sprintf("%s has the wrong type.", field)
	}

	return "", "Invalid request payload"
}

// topLevelField maps "Request.itinerary[0].title" to "itinerary".
func topLevelField(namespace string) string {
	parts := strings.SplitN(namespace, ".", 3)
	field := namespace
	if len(parts) > 1 {
		field = parts[1]
	}
	if i := strings.IndexByte(field, '['); i >= 0 {
		field = field[:i]
	}
	return field
}

func defaultMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", field)
	case "email":
		return "Please enter a valid email address."
	case "phone10":
		return "Phone number must be exactly 10 digits."
	case "password":
		return "Password must be at least 8 characters with letters and numbers."
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Add at least %s %s.", fe.Param(), field)
		}
		return fmt.Sprintf("%s must be at least %s characters.", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s.", field, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL.", field)
	case "category":
		return fmt.Sprintf("%s must be one of %s.", field, strings.Join(models.Categories, ", "))
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s format.", field, "YYYY-MM-DD")
	default:
		return fmt.Sprintf("%s is invalid.", field)
	}
}
