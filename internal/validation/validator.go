package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"
)

var (
	correoTag   = "correo"
	correoText  = "{0} no es un correo electrónico válido"
	correoRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

	requiredTag  = "required"
	requiredText = "{0} es obligatorio"
)

// FieldError describes a failed constraint on a single request field.
type FieldError struct {
	Field string `json:"campo"`
	Error string `json:"error"`
}

type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func New() *Validator {
	locale := es.New()
	uni := ut.New(locale, locale)
	translator, _ := uni.GetTranslator("es")

	validate := validator.New()
	_ = es_translations.RegisterDefaultTranslations(validate, translator)

	// Report JSON names instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(correoTag, correoValidation)
	registerTranslation(validate, translator, correoTag, correoText, false)
	registerTranslation(validate, translator, requiredTag, requiredText, true)

	return &Validator{validate: validate, translator: translator}
}

// Struct validates s and returns its field errors, or nil when s is valid.
func (v *Validator) Struct(s interface{}) []FieldError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Error: err.Error()}}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Error: fe.Translate(v.translator)})
	}
	return fields
}

// IsEmail reports whether s has the local@domain.tld shape accepted at registration.
func IsEmail(s string) bool {
	return correoRegex.MatchString(s)
}

func correoValidation(fl validator.FieldLevel) bool {
	return IsEmail(fl.Field().String())
}

func registerTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override bool) {
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, override) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}
