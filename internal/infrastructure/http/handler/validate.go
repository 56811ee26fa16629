package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rezkam/hostitask/internal/i18n"
	"github.com/rezkam/hostitask/internal/infrastructure/http/response"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names instead of Go field names.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// issueKeys maps validator tags to label keys.
var issueKeys = map[string]string{
	"required": i18n.KeyIssueRequired,
	"max":      i18n.KeyIssueMaxLength,
	"oneof":    i18n.KeyIssueOneOf,
}

func issueFor(lang i18n.Lang, e validator.FieldError) string {
	key, ok := issueKeys[e.Tag()]
	if !ok {
		return "invalid value: " + e.Tag()
	}
	msg := i18n.Label(lang, key)
	if strings.Contains(msg, "%s") {
		return fmt.Sprintf(msg, strings.ReplaceAll(e.Param(), " ", ", "))
	}
	return msg
}

// validateStruct returns one ErrorField per failing field, in declaration order.
func validateStruct(s any, lang i18n.Lang) []response.ErrorField {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []response.ErrorField{{Field: "body", Issue: err.Error()}}
	}
	fields := make([]response.ErrorField, 0, len(validationErrs))
	for _, e := range validationErrs {
		fields = append(fields, response.ErrorField{Field: e.Field(), Issue: issueFor(lang, e)})
	}
	return fields
}

// decodeAndValidate reads a JSON body into dst and validates it.
// It writes the error response itself and reports false on failure.
// With allowEmpty, a missing body leaves dst at its zero value.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any, lang i18n.Lang, allowEmpty bool) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if !(allowEmpty && errors.Is(err, io.EOF)) {
			response.BadRequest(w, "invalid JSON")
			return false
		}
	}
	if fields := validateStruct(dst, lang); len(fields) > 0 {
		response.ValidationErrors(w, fields)
		return false
	}
	return true
}
