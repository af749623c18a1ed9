// Package forms define los formularios de alta/edición de la consola:
// restricciones por campo (validator), constructores de valores por defecto
// que unifican crear vs editar, campos derivados recalculados como funciones
// puras y constructores del payload que espera el contrato REST.
//
// Una validación fallida es de alcance campo y bloquea el envío: no se hace
// ninguna llamada de red.
package forms

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validate instancia única del motor de validación.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Los mensajes de error usan el nombre del tag json, no el del campo Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// decimal.Decimal se valida por su valor numérico (gt, gte, lte funcionan).
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return v
}

// FieldErrors errores de validación por campo (campo -> mensaje legible).
type FieldErrors map[string]string

// Validate valida un formulario contra sus tags. Devuelve nil si es válido.
func Validate(form any) FieldErrors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"_form": err.Error()}
	}
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		out[fieldPath(fe)] = message(fe)
	}
	return out
}

// fieldPath ruta del campo sin el nombre del struct raíz
// (ej. "items[0].quantity" en lugar de "OrderForm.items[0].quantity").
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// message traduce el tag fallido a un mensaje corto en español.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "email":
		return "no es un email válido"
	case "min":
		return "muy corto (mínimo " + fe.Param() + ")"
	case "max":
		return "muy largo (máximo " + fe.Param() + ")"
	case "gt":
		return "debe ser mayor que " + fe.Param()
	case "gte":
		return "debe ser al menos " + fe.Param()
	case "oneof":
		return "valor fuera del catálogo (" + fe.Param() + ")"
	default:
		return "inválido (" + fe.Tag() + ")"
	}
}
