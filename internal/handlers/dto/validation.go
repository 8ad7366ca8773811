package dto

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerTagNames sync.Once

// RegisterValidatorTagNames faz o validador do Gin reportar campos pelo nome JSON
func RegisterValidatorTagNames() {
	registerTagNames.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(func(fld reflect.StructField) string {
				name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
				if name == "-" {
					return ""
				}
				return name
			})
		}
	})
}

// ToValidationErrors converte erros do validator em erros de campo traduzidos.
// Retorna nil para erros que não são de validação (ex.: JSON malformado).
func ToValidationErrors(c *gin.Context, err error) []ValidationError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	result := make([]ValidationError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		key := "validation.invalid"
		switch fe.Tag() {
		case "required":
			key = "validation.required"
		case "max":
			key = "validation.max"
		}

		result = append(result, ValidationError{
			Field: fe.Field(),
			Tag:   fe.Tag(),
			Message: T(c, key, map[string]interface{}{
				"Field": fe.Field(),
				"Param": fe.Param(),
			}),
		})
	}
	return result
}
