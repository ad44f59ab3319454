// Package bind provides JSON bind and validation helpers for handlers
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "tutorhub/internal/platform/errors"
	"tutorhub/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// ValidatorSvc holds a singleton validator and translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce    sync.Once
	vSvc     *ValidatorSvc
	jsonMore = func(dec *json.Decoder) bool { return dec.More() } // seam
)

// Get returns the validator singleton with english translations and json tag names
func Get() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		short(v, trans, "min", "{0} must be at least {1}")
		short(v, trans, "max", "{0} must be at most {1}")
		short(v, trans, "oneof", "{0} must be one of [{1}]")

		_ = v.RegisterValidation("notblank", notBlank)
		short(v, trans, "notblank", "{0} must not be blank")

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// jsonName makes messages use the json tag name
func jsonName(fld reflect.StructField) string {
	tag := fld.Tag.Get("json")
	if tag == "-" || tag == "" {
		return fld.Name
	}
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	return tag
}

// notBlank rejects strings made only of whitespace, other kinds pass
func notBlank(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(f.String()) != ""
}

// JSONOptions controls parsing behavior
type JSONOptions struct {
	MaxBytes        int64 // default 1MB
	DisallowUnknown bool  // default true
	AllowEmptyBody  bool  // default false
}

func defaultJSONOptions() JSONOptions {
	return JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}
}

// ParseJSON decodes JSON into T, validates it, and maps failures to project errors
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := defaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Get().Error().Err(err).Msg("failed to close request body")
		}
	}()

	var reader io.Reader = r.Body
	if !o.AllowEmptyBody {
		buf := make([]byte, 1)
		n, _ := r.Body.Read(buf)
		if n == 0 {
			return zero, perr.JSONErrf("empty body")
		}
		reader = io.MultiReader(bytes.NewReader(buf[:n]), r.Body)
	}
	if o.MaxBytes > 0 {
		reader = io.LimitReader(reader, o.MaxBytes)
	}

	dec := json.NewDecoder(reader)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		if o.AllowEmptyBody && errors.Is(err, io.EOF) {
			return dst, nil
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if jsonMore(dec) {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// Validate runs struct validation and returns a validation error carrying the first field
func Validate(v any) error {
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return perr.JSONErrf("validation error")
	}
	field, msg := FieldAndMessage(err)
	return perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s", msg), field)
}

// FieldAndMessage returns the first failing field and its translated message
func FieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fe.Field(), fe.Translate(Get().Translator)
	}
	return "", err.Error()
}

// short registers a one-line translation for tag
func short(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error { return ut.Add(tag, text, true) },
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}
