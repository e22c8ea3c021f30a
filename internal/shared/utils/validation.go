package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is shared by every handler that accepts a request body.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json field names instead of Go struct names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// ValidationError lists every failing field with the rule it broke.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, rule := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, rule))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// ValidateStruct runs the struct tags of v.
func ValidateStruct(v interface{}) error {
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		fields[fe.Field()] = rule
	}
	return &ValidationError{Fields: fields}
}

// DecodeAndValidate reads a JSON body into v and validates it.
func DecodeAndValidate(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return ValidateStruct(v)
}

// WriteBadRequest reports a decode or validation failure.
func WriteBadRequest(w http.ResponseWriter, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		WriteJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "campos invalidos",
			"fields": verr.Fields,
		})
		return
	}
	WriteError(w, http.StatusBadRequest, "solicitud invalida", err)
}
