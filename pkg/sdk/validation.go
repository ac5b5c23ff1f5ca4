package sdk

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	notBlankTag  = "notblank"
	notBlankText = "{0} cannot be blank"

	statusTag  = "content_status"
	statusText = "{0} must be one of draft, published or archived"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
	translator   ut.Translator
)

func formValidator() (*validator.Validate, ut.Translator) {
	validateOnce.Do(func() {
		validate = validator.New()

		english := en.New()
		uni := ut.New(english, english)
		translator, _ = uni.GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(validate, translator)

		// Use form tag names for errors instead of Go struct names.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = validate.RegisterValidation(notBlankTag, notBlankValidation)
		_ = validate.RegisterValidation(statusTag, contentStatusValidation)
		registerCustomTranslation(validate, translator, notBlankTag, notBlankText)
		registerCustomTranslation(validate, translator, statusTag, statusText)
	})
	return validate, translator
}

func registerCustomTranslation(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(
		tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// notBlankValidation rejects strings that are empty after trimming.
func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

func contentStatusValidation(fl validator.FieldLevel) bool {
	switch v := fl.Field().Interface().(type) {
	case ContentStatus:
		_, err := ParseContentStatus(string(v))
		return err == nil
	case string:
		_, err := ParseContentStatus(v)
		return err == nil
	default:
		return false
	}
}

// validateStruct runs struct tags on fields and converts failures into a
// *ValidationError with translated messages.
func validateStruct(fields any) error {
	v, trans := formValidator()
	err := v.Struct(fields)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(vErrs))}
	for _, fe := range vErrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Error: fe.Translate(trans)})
	}
	return out
}
