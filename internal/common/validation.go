package common

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

var (
	emailRegex    = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	nonDigitRegex = regexp.MustCompile(`[^0-9]`)
)

func newValidator() *validator.Validate {
	v := validator.New()
	// report json names, not Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateStruct runs `validate` tags and returns the first failure as a
// ValidationError.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return NewValidationError(err.Error())
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return NewValidationError(fmt.Sprintf("%s is required", fe.Field()))
	case "gt":
		return NewValidationError(fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param()))
	case "max":
		return NewValidationError(fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
	case "email":
		return NewValidationError(fmt.Sprintf("%s must be a valid email", fe.Field()))
	default:
		return NewValidationError(fmt.Sprintf("%s is invalid", fe.Field()))
	}
}

func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return NewValidationError("email is required")
	}
	if !emailRegex.MatchString(email) {
		return NewValidationError("invalid email format")
	}
	return nil
}

// NormalizePhone strips everything but digits and requires exactly nine.
func NormalizePhone(phone string) (string, error) {
	if IsBlank(phone) {
		return "", NewValidationError("phone is required")
	}
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	if len(digits) != 9 {
		return "", NewValidationError("phone must have 9 digits")
	}
	return digits, nil
}

// PasswordProblems lists every rule the password breaks.
func PasswordProblems(password string) []string {
	if IsBlank(password) {
		return []string{"password is required"}
	}

	var problems []string
	if len(password) < 8 {
		problems = append(problems, "must be at least 8 characters")
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r):
			symbol = true
		}
	}
	if !upper {
		problems = append(problems, "must include an uppercase letter")
	}
	if !lower {
		problems = append(problems, "must include a lowercase letter")
	}
	if !digit {
		problems = append(problems, "must include a number")
	}
	if !symbol {
		problems = append(problems, "must include a symbol")
	}
	if strings.Contains(password, " ") {
		problems = append(problems, "must not contain spaces")
	}
	return problems
}

func ValidatePassword(password string) error {
	problems := PasswordProblems(password)
	if len(problems) == 0 {
		return nil
	}
	return NewValidationError("invalid password: " + strings.Join(problems, ", "))
}
