// Package validate checks the demo command's flag-driven configuration
// against its declared tags, reporting failures with translated
// messages keyed by flag name.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var check *validator.Validate
var translator ut.Translator

func init() {
	check = validator.New()
	translator, _ = ut.New(en.New(), en.New()).GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(check, translator); err != nil {
		panic(err)
	}

	check.RegisterTagNameFunc(flagName)

	if err := check.RegisterValidation("interval", validInterval); err != nil {
		panic(err)
	}
}

// flagName reports fields by their flag tag, so failures read the way
// the user typed them.
func flagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("flag"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	return name
}

// validInterval accepts any non-negative time.Duration. Zero is valid:
// a zero interval degrades the pacer to an unthrottled passthrough.
func validInterval(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(time.Duration)
	return ok && d >= 0
}

// Check the provided config against its declared tags.
func Check(val any) error {
	err := check.Struct(val)
	if err == nil {
		return nil
	}

	verrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	msgs := make([]string, 0, len(verrors))
	for _, verror := range verrors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", verror.Field(), message(verror)))
	}

	return errors.New(strings.Join(msgs, "; "))
}

func message(verror validator.FieldError) string {
	switch verror.Tag() {
	case "interval":
		return "must not be negative"
	default:
		return verror.Translate(translator)
	}
}
