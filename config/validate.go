package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/MihaiBandur/HackathonQuantic/maxcut"
)

const tagAlgorithm = "algorithm"

// Validate checks c against its struct tags. The returned error wraps
// ErrInvalid and lists every violation in English, keyed by config name.
func Validate(c Config) error {
	return ValidateKeys(c)
}

// ValidateKeys is Validate restricted to the fields behind keys. With no
// keys every field is checked. An unknown key wraps ErrInvalid.
func ValidateKeys(c Config, keys ...string) error {
	validate, trans, err := newValidator()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		err = validate.Struct(c)
	} else {
		var fields []string
		if fields, err = fieldNames(keys); err != nil {
			return err
		}
		err = validate.StructPartial(c, fields...)
	}
	if err != nil {
		msgs := translateError(err, trans)
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
	}

	return nil
}

// fieldNames maps config keys to the Config field names StructPartial expects.
func fieldNames(keys []string) ([]string, error) {
	byKey := make(map[string]string)
	t := reflect.TypeOf(Config{})
	for i := range t.NumField() {
		f := t.Field(i)
		byKey[strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]] = f.Name
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		name, ok := byKey[k]
		if !ok {
			return nil, fmt.Errorf("%w: unknown key %q", ErrInvalid, k)
		}
		out = append(out, name)
	}

	return out, nil
}

// newValidator builds a validator whose field names are the mapstructure
// keys and whose messages come from the English translator.
func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation(tagAlgorithm, func(fl validator.FieldLevel) bool {
		_, err := maxcut.ParseAlgorithm(fl.Field().String())
		return err == nil
	}); err != nil {
		return nil, nil, fmt.Errorf("config: register %s: %w", tagAlgorithm, err)
	}

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("config: register translations: %w", err)
	}
	err := validate.RegisterTranslation(tagAlgorithm, trans,
		func(t ut.Translator) error {
			return t.Add(tagAlgorithm, "{0} must name a supported algorithm ({1})", true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tagAlgorithm, fe.Field(), algorithmNames())
			return msg
		})
	if err != nil {
		return nil, nil, fmt.Errorf("config: register %s translation: %w", tagAlgorithm, err)
	}

	return validate, trans, nil
}

func translateError(err error, trans ut.Translator) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fe.Translate(trans))
	}

	return out
}

func algorithmNames() string {
	algos := maxcut.Algorithms()
	names := make([]string, len(algos))
	for i, a := range algos {
		names[i] = a.String()
	}

	return strings.Join(names, ", ")
}
