package forms

import (
	"github.com/tu-usuario/moda-backoffice/internal/domain/entity"
	"github.com/tu-usuario/moda-backoffice/internal/infrastructure/api"
)

// CustomerForm formulario de alta/edición de cliente.
type CustomerForm struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"omitempty,email,max=200"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Address string `json:"address" validate:"omitempty,max=300"`
	City    string `json:"city" validate:"omitempty,max=100"`
	Note    string `json:"note" validate:"omitempty,max=500"`
}

// NewCustomerForm construye los valores por defecto del formulario. Con
// existing == nil es el modo crear; con un cliente existente precarga sus
// campos (modo editar). Un solo constructor unifica ambos modos.
func NewCustomerForm(existing *entity.Customer) CustomerForm {
	if existing == nil {
		return CustomerForm{}
	}
	return CustomerForm{
		Name:    existing.Name,
		Email:   existing.Email,
		Phone:   existing.Phone,
		Address: existing.Address,
		City:    existing.City,
		Note:    existing.Note,
	}
}

// Payload construye el cuerpo del contrato REST.
func (f CustomerForm) Payload() api.CustomerPayload {
	return api.CustomerPayload{
		Name:    f.Name,
		Email:   f.Email,
		Phone:   f.Phone,
		Address: f.Address,
		City:    f.City,
		Note:    f.Note,
	}
}
