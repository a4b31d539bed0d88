// internal/utils/validator.go
package utils

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/atelier-gestor/atelier/internal/i18n"
	"github.com/atelier-gestor/atelier/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)

	// Money and PATCH fields are validated through their underlying value
	validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	validate.RegisterCustomTypeFunc(fieldValue[string], models.Field[string]{})
	validate.RegisterCustomTypeFunc(fieldValue[int], models.Field[int]{})
	validate.RegisterCustomTypeFunc(fieldValue[uint], models.Field[uint]{})
	validate.RegisterCustomTypeFunc(fieldValue[decimal.Decimal], models.Field[decimal.Decimal]{})
	validate.RegisterCustomTypeFunc(fieldValue[models.OrderStatus], models.Field[models.OrderStatus]{})

	validate.RegisterValidation("order_status", validateOrderStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return nil
}

func fieldValue[T any](field reflect.Value) interface{} {
	f, ok := field.Interface().(models.Field[T])
	if !ok || !f.Set || f.Null {
		return nil
	}
	return f.Value
}

func validateOrderStatus(fl validator.FieldLevel) bool {
	return models.OrderStatus(fl.Field().String()).Valid()
}

// ValidationError is one entry of a 422 detail list.
type ValidationError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// GetValidationErrors converts validator failures into body-located entries.
func GetValidationErrors(err error, lang string) []ValidationError {
	var validationErrors []ValidationError

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Loc:  bodyLoc(e.Namespace()),
				Msg:  getValidationMessage(e, lang),
				Type: e.Tag(),
			})
		}
	}

	return validationErrors
}

// GetBindingErrors describes a request body that could not be decoded.
func GetBindingErrors(err error) []ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		return []ValidationError{{
			Loc:  loc,
			Msg:  "Input should be a valid " + typeErr.Type.String(),
			Type: "type_error",
		}}
	}

	return []ValidationError{{
		Loc:  []string{"body"},
		Msg:  err.Error(),
		Type: "json_invalid",
	}}
}

// bodyLoc turns "OrderCreate.itens[0].quantidade" into body, itens, 0, quantidade.
func bodyLoc(namespace string) []string {
	loc := []string{"body"}
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for _, part := range parts {
		if idx := strings.IndexByte(part, '['); idx > 0 && strings.HasSuffix(part, "]") {
			loc = append(loc, part[:idx], part[idx+1:len(part)-1])
			continue
		}
		loc = append(loc, part)
	}
	return loc
}

func getValidationMessage(e validator.FieldError, lang string) string {
	switch e.Tag() {
	case "required":
		return i18n.T(lang, i18n.KeyValidationRequired)
	case "email":
		return i18n.T(lang, i18n.KeyValidationEmail)
	case "min", "gte":
		return i18n.T(lang, i18n.KeyValidationMin, e.Param())
	case "max", "lte":
		return i18n.T(lang, i18n.KeyValidationMax, e.Param())
	case "numeric":
		return i18n.T(lang, i18n.KeyValidationNumeric)
	case "order_status":
		return i18n.T(lang, i18n.KeyValidationStatus)
	default:
		return i18n.T(lang, i18n.KeyValidationInvalid, e.Field())
	}
}
