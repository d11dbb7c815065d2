package validator

import (
	"log"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	// PasswordTag accepts alphanumeric-only values of length >= 8 with at
	// least one letter and one digit.
	PasswordTag = "userpassword"
	// AdultDateTag accepts dates at least 18 years in the past.
	AdultDateTag = "adultdate"
)

// JSONTagName resolves struct fields to their json names so validation
// errors are keyed the way clients sent them.
func JSONTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// Register installs the custom rules on the given validator instance.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation(PasswordTag, passwordValidator); err != nil {
		return err
	}
	return v.RegisterValidation(AdultDateTag, adultDateValidator)
}

// RegisterGinValidator installs the custom rules and json tag naming on
// gin's binding validator.
func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(JSONTagName)
		if err := Register(v); err != nil {
			log.Fatal("register custom validators failed")
		}
	}
}

var passwordValidator validator.Func = func(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLetter = true
		default:
			return false
		}
	}
	return hasLetter && hasDigit
}

var adultDateValidator validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	cutoff := time.Now().AddDate(-18, 0, 0)
	return !date.After(cutoff)
}
