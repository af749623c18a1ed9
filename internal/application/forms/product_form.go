package forms

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/moda-backoffice/internal/domain/entity"
	"github.com/tu-usuario/moda-backoffice/internal/infrastructure/api"
)

// VariantForm sub-formulario de una variante (SKU) dentro del producto.
type VariantForm struct {
	ID       string          `json:"id"`
	SKU      string          `json:"sku" validate:"required,min=1,max=60"`
	Size     string          `json:"size" validate:"required,max=10"`
	Color    string          `json:"color" validate:"required,max=50"`
	Gender   string          `json:"gender" validate:"required,oneof=MEN WOMEN UNISEX KIDS"`
	Unit     string          `json:"unit" validate:"omitempty,max=20"`
	Price    decimal.Decimal `json:"price" validate:"gte=0"`
	Cost     decimal.Decimal `json:"cost" validate:"gte=0"`
	Quantity decimal.Decimal `json:"quantity" validate:"gte=0"`
	FileKey  string          `json:"file_key"`
}

// ProductForm formulario de alta/edición de producto con sus variantes.
type ProductForm struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description" validate:"omitempty,max=1000"`
	Category    string          `json:"category" validate:"omitempty,max=100"`
	BasePrice   decimal.Decimal `json:"base_price" validate:"gte=0"`
	FileKey     string          `json:"file_key"`
	Variants    []VariantForm   `json:"variants" validate:"omitempty,dive"`
}

// NewProductForm valores por defecto: vacío al crear, precargado al editar.
func NewProductForm(existing *entity.Product) ProductForm {
	if existing == nil {
		return ProductForm{}
	}
	variants := make([]VariantForm, 0, len(existing.Variants))
	for _, v := range existing.Variants {
		variants = append(variants, VariantForm{
			ID:       v.ID,
			SKU:      v.SKU,
			Size:     v.Size,
			Color:    v.Color,
			Gender:   v.Gender,
			Unit:     v.Unit,
			Price:    v.Price,
			Cost:     v.Cost,
			Quantity: v.Quantity,
			FileKey:  v.FileKey,
		})
	}
	return ProductForm{
		Name:        existing.Name,
		Description: existing.Description,
		Category:    existing.Category,
		BasePrice:   existing.BasePrice,
		FileKey:     existing.FileKey,
		Variants:    variants,
	}
}

// Payload construye el cuerpo del contrato REST.
func (f ProductForm) Payload() api.ProductPayload {
	variants := make([]api.VariantPayload, 0, len(f.Variants))
	for _, v := range f.Variants {
		variants = append(variants, api.VariantPayload{
			ID:       v.ID,
			SKU:      v.SKU,
			Size:     v.Size,
			Color:    v.Color,
			Gender:   v.Gender,
			Unit:     v.Unit,
			Price:    v.Price,
			Cost:     v.Cost,
			Quantity: v.Quantity,
			FileKey:  v.FileKey,
		})
	}
	return api.ProductPayload{
		Name:        f.Name,
		Description: f.Description,
		Category:    f.Category,
		BasePrice:   f.BasePrice,
		FileKey:     f.FileKey,
		Variants:    variants,
	}
}
