// Package validate проверяет тела запросов тегами validator и переводит
// нарушения в models.ValidationError с именами полей из JSON.
// Сообщения пишутся на португальском: их показывает фронтенд.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return val
}

// Struct проверяет структуру. Возвращает *models.ValidationError или nil.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return &models.ValidationError{Fields: fields}
}

func message(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return "Este campo é obrigatório."
	case "max":
		return fmt.Sprintf("Certifique-se de que este campo não tenha mais de %s caracteres.", fe.Param())
	case "oneof":
		return fmt.Sprintf("Escolha um valor válido: %s.", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return "Valor inválido."
	}
}
