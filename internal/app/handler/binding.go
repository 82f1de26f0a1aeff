package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"marketplace-admin/internal/app/pricing"
)

var (
	registerOnce sync.Once
	registerErr  error

	fieldKeyRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]{0,63}$`)
)

// RegisterValidators добавляет в валидатор gin теги decimal_gt0, decimal_gte0 и fieldkey
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator is not go-playground/validator")
			return
		}

		// в ошибках поля называются как в JSON
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

		if registerErr = v.RegisterValidation("decimal_gt0", decimalGreaterThanZero); registerErr != nil {
			return
		}
		if registerErr = v.RegisterValidation("decimal_gte0", decimalNotNegative); registerErr != nil {
			return
		}
		registerErr = v.RegisterValidation("fieldkey", validFieldKey)
	})
	return registerErr
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func decimalGreaterThanZero(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && d.IsPositive()
}

func decimalNotNegative(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && !d.IsNegative()
}

func validFieldKey(fl validator.FieldLevel) bool {
	return fieldKeyRe.MatchString(fl.Field().String())
}

// bindJSON разбирает тело запроса; ошибки тегов возвращаются как ошибки полей
func (h *APIHandler) bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]pricing.FieldError, len(verrs))
		for i, fe := range verrs {
			fields[i] = bindingFieldError(fe)
		}
		h.writeError(c, &pricing.ValidationError{Fields: fields}, "bind request")
		return false
	}

	h.errorResponse(c, http.StatusBadRequest, "Неверный формат запроса: "+err.Error())
	return false
}

func bindingFieldError(fe validator.FieldError) pricing.FieldError {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "required_without":
		return pricing.FieldError{Field: field, Code: pricing.CodeRequired, Message: fmt.Sprintf("%s is required", field)}
	case "decimal_gt0":
		return pricing.FieldError{Field: field, Code: pricing.CodeInvalid, Message: fmt.Sprintf("%s must be greater than 0", field)}
	case "decimal_gte0":
		return pricing.FieldError{Field: field, Code: pricing.CodeInvalid, Message: fmt.Sprintf("%s must not be negative", field)}
	case "fieldkey":
		return pricing.FieldError{Field: "customFields", Code: pricing.CodeInvalid, Message: fmt.Sprintf("Custom field name %q is invalid", fe.Value())}
	default:
		return pricing.FieldError{Field: field, Code: pricing.CodeInvalid, Message: fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())}
	}
}
