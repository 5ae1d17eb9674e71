package validator

import (
	"errors"
	"net/http"

	"authorization-engine/utility/appError"
	"authorization-engine/utility/errorcode"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	validation "gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

var activeTranslator ut.Translator

// CustomizeMessages ... Customize validation error messages
func CustomizeMessages(validator *validation.Validate) (ut.Translator, error) {
	translator := en.New()
	uni := ut.New(translator, translator)

	trans, found := uni.GetTranslator("en")
	if !found {
		return trans, appError.Err{ErrType: errorcode.SERVER_ERR_CODE, ErrCode: http.StatusInternalServerError, Err: errors.New("translator not found")}
	}
	activeTranslator = trans

	if err := en_translations.RegisterDefaultTranslations(validator, trans); err != nil {
		return trans, appError.Err{ErrType: errorcode.SERVER_ERR_CODE, ErrCode: http.StatusInternalServerError, Err: err}
	}

	_ = validator.RegisterTranslation("required", trans, func(ut ut.Translator) error {
		return ut.Add("required", "{0} is a required field", true)
	}, func(ut ut.Translator, fe validation.FieldError) string {
		t, _ := ut.T("required", fe.Field())
		return t
	})

	_ = validator.RegisterTranslation("gt", trans, func(ut ut.Translator) error {
		return ut.Add("gt", "{0} must be greater than the allowed minimum", true)
	}, func(ut ut.Translator, fe validation.FieldError) string {
		t, _ := ut.T("gt", fe.Field())
		return t
	})

	return trans, nil
}

// Translate ... Renders a field error with the registered translations,
// falling back to the raw rule name when CustomizeMessages has not run.
func Translate(fieldErr validation.FieldError) string {
	if activeTranslator == nil {
		return fieldErr.Field() + " failed on the " + fieldErr.Tag() + " rule"
	}
	return fieldErr.Translate(activeTranslator)
}
