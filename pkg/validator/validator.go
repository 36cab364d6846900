package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ghuser/storefront/pkg/apperr"
)

const (
	invalidJSONMessage      = "Invalid JSON"
	bodyTooLargeMessage     = "Request body too large"
	validationFailedMessage = "Validation failed"

	// maxSafeInteger is the largest integer a JSON number carries exactly.
	maxSafeInteger = 1<<53 - 1
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		// ignore unexported or explicitly ignored
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if err := validate.RegisterValidation("integer", isInteger); err != nil {
		panic(err)
	}
}

// isInteger backs the "integer" tag. JSON numbers are decoded into float64
// fields so 5.0 and 1e2 pass while 1.5 does not.
func isInteger(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		v := f.Float()
		return v == math.Trunc(v) && math.Abs(v) <= maxSafeInteger
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// FormatValidationErrors converts validator.ValidationErrors into a map of
// field name → human-readable message.
func FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return errs
	}
	for _, e := range ve {
		errs[e.Field()] = formatFieldError(e)
	}
	return errs
}

// Describe flattens the field messages into "Validation failed: a: ...; b: ...",
// ordered by field name.
func Describe(fields map[string]string) string {
	if len(fields) == 0 {
		return validationFailedMessage
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+fields[name])
	}
	return validationFailedMessage + ": " + strings.Join(parts, "; ")
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "uuid", "uuid4":
		return "Must be a valid UUID"
	case "min":
		return fmt.Sprintf("Minimum length is %s", e.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", e.Param())
	case "email":
		return "Must be a valid email address"
	case "url":
		return "Must be a valid URL"
	case "numeric":
		return "Must be a numeric value"
	case "alpha":
		return "Must contain only letters"
	case "alphanum":
		return "Must contain only letters and numbers"
	case "gt":
		return fmt.Sprintf("Must be greater than %s", e.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", e.Param())
	case "integer":
		return "Expected integer, received number"
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", e.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.Join(strings.Fields(e.Param()), ", "))
	default:
		return fmt.Sprintf("Validation failed on '%s'", e.Tag())
	}
}

// ValidateRequest decodes the JSON request body into T and validates it.
// An empty body decodes as {}. The body must be a single JSON object and no
// field of T may be sent as null. Failures come back as *apperr.Error: 400 for
// malformed JSON, wrong JSON types, nulls and constraint violations, 413 when
// the body exceeds the limit installed by httpx.RequestBodyLimit.
func ValidateRequest[T any](r *http.Request) (*T, error) {
	var req T
	if err := decode(r.Body, &req); err != nil {
		return nil, err
	}
	if err := Validate(&req); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			return nil, fmt.Errorf("validate %T: %w", req, err)
		}
		return nil, apperr.Validation(Describe(FormatValidationErrors(err))).Wrap(err)
	}
	return &req, nil
}

func decode[T any](body io.Reader, dst *T) error {
	if body == nil {
		return nil
	}
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperr.New(bodyTooLargeMessage, http.StatusRequestEntityTooLarge).Wrap(err)
		}
		return fmt.Errorf("read request body: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	// Anything after the first value makes the whole body malformed.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return apperr.Validation(invalidJSONMessage)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return apperr.Validation(invalidJSONMessage)
	}
	if nulls := nullFields(fields, reflect.TypeOf(dst).Elem()); len(nulls) > 0 {
		return apperr.Validation(Describe(nulls))
	}
	return nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperr.Validation(Describe(map[string]string{
			typeErr.Field: fmt.Sprintf("Expected %s, received %s", jsonType(typeErr.Type), receivedType(typeErr.Value)),
		})).Wrap(err)
	}
	return apperr.Validation(invalidJSONMessage).Wrap(err)
}

// nullFields reports every field of t that the body sets to an explicit null.
// encoding/json would leave such fields untouched, indistinguishable from absent.
func nullFields(fields map[string]json.RawMessage, t reflect.Type) map[string]string {
	out := map[string]string{}
	if t.Kind() != reflect.Struct {
		return out
	}
	for i := range t.NumField() {
		f := t.Field(i)
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		if raw, ok := fields[name]; ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			out[name] = fmt.Sprintf("Expected %s, received null", jsonType(f.Type))
		}
	}
	return out
}

func jsonType(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

// receivedType trims encoding/json's "number 5.5" style value description.
func receivedType(v string) string {
	kind, _, _ := strings.Cut(v, " ")
	return kind
}
