package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

var redisSchemes = []string{"redis://", "rediss://", "unix://"}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("redisurl", isRedisURL); err != nil {
		return nil, nil, fmt.Errorf("failed to register redisurl validation: %w", err)
	}
	if err := validate.RegisterTranslation("redisurl", trans, func(ut ut.Translator) error {
		return ut.Add("redisurl", "{0} must start with one of "+strings.Join(redisSchemes, ", "), true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("redisurl", strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register redisurl translation: %w", err)
	}

	return validate, trans, nil
}

func isRedisURL(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, scheme := range redisSchemes {
		if strings.HasPrefix(value, scheme) {
			return true
		}
	}
	return false
}
