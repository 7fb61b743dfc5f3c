// Package validator envuelve go-playground/validator con las reglas propias del
// almacén (ubicación de torre de dos dígitos, texto no vacío) y traduce los
// errores a mensajes legibles con el nombre JSON del campo.
package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var towerPattern = regexp.MustCompile(`^[0-9]{2}$`)

// IsTowerLocation indica si s es una ubicación de torre válida (exactamente dos dígitos).
func IsTowerLocation(s string) bool {
	return towerPattern.MatchString(s)
}

// FieldError describe una regla incumplida.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError agrupa los errores de un struct.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// Validator valida DTOs a partir de sus tags `validate`.
type Validator struct {
	v *validator.Validate
}

// New construye el validador con las reglas personalizadas registradas.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("tower", func(fl validator.FieldLevel) bool {
		return IsTowerLocation(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return &Validator{v: v}
}

var std = New()

// Struct valida s con el validador por defecto.
func Struct(s any) error {
	return std.Struct(s)
}

// Struct valida s. Devuelve *ValidationError si alguna regla falla.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es requerido", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s debe tener al menos %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("%s debe ser mayor o igual a %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s debe tener como máximo %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("%s debe ser menor o igual a %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s debe ser mayor que %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", field, fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s debe coincidir con %s", field, fe.Param())
	case "notblank":
		return fmt.Sprintf("%s no puede estar en blanco", field)
	case "tower":
		return fmt.Sprintf("%s debe tener exactamente dos dígitos", field)
	default:
		return fmt.Sprintf("%s no cumple la regla %s", field, fe.Tag())
	}
}
