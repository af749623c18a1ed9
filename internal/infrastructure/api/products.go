package api

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/moda-backoffice/internal/domain/entity"
)

// variantWire forma JSON de la variante (SKU) en el contrato REST.
type variantWire struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
	Gender      string          `json:"gender"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Quantity    decimal.Decimal `json:"quantity"`
	FileKey     string          `json:"file_key"`
	ProductName string          `json:"product_name"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (w variantWire) toEntity() entity.Variant {
	return entity.Variant{
		ID:          w.ID,
		ProductID:   w.ProductID,
		SKU:         w.SKU,
		Name:        w.Name,
		Size:        w.Size,
		Color:       w.Color,
		Gender:      w.Gender,
		Unit:        w.Unit,
		Price:       w.Price,
		Cost:        w.Cost,
		Quantity:    w.Quantity,
		FileKey:     w.FileKey,
		ProductName: w.ProductName,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

// productWire forma JSON del producto con sus variantes anidadas.
type productWire struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	BasePrice   decimal.Decimal `json:"base_price"`
	FileKey     string          `json:"file_key"`
	Variants    []variantWire   `json:"variants"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (w productWire) toEntity() entity.Product {
	variants := make([]entity.Variant, 0, len(w.Variants))
	for _, v := range w.Variants {
		variants = append(variants, v.toEntity())
	}
	return entity.Product{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Category:    w.Category,
		BasePrice:   w.BasePrice,
		FileKey:     w.FileKey,
		Variants:    variants,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

// VariantPayload cuerpo de una variante dentro de crear/actualizar producto.
type VariantPayload struct {
	ID       string          `json:"id,omitempty"` // vacío al crear
	SKU      string          `json:"sku"`
	Size     string          `json:"size"`
	Color    string          `json:"color"`
	Gender   string          `json:"gender"`
	Unit     string          `json:"unit,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Cost     decimal.Decimal `json:"cost"`
	Quantity decimal.Decimal `json:"quantity"`
	FileKey  string          `json:"file_key,omitempty"`
}

// ProductPayload cuerpo para crear/actualizar un producto.
type ProductPayload struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Category    string           `json:"category,omitempty"`
	BasePrice   decimal.Decimal  `json:"base_price"`
	FileKey     string           `json:"file_key,omitempty"`
	Variants    []VariantPayload `json:"variants,omitempty"`
}

// ListProducts GET /products.
func (c *Client) ListProducts(ctx context.Context, p ListParams) (Page[entity.Product], error) {
	raw, err := c.do(ctx, http.MethodGet, "/products", p.values(), nil)
	if err != nil {
		return Page[entity.Product]{}, err
	}
	page, err := decodePage[productWire](raw)
	if err != nil {
		return Page[entity.Product]{}, err
	}
	items := make([]entity.Product, 0, len(page.Items))
	for _, w := range page.Items {
		items = append(items, w.toEntity())
	}
	return Page[entity.Product]{Items: items, Meta: page.Meta}, nil
}

// CreateProduct POST /products.
func (c *Client) CreateProduct(ctx context.Context, payload ProductPayload) (*entity.Product, error) {
	var w productWire
	if err := c.post(ctx, "/products", payload, &w); err != nil {
		return nil, err
	}
	out := w.toEntity()
	return &out, nil
}

// UpdateProduct PUT /products/{id}.
func (c *Client) UpdateProduct(ctx context.Context, id string, payload ProductPayload) (*entity.Product, error) {
	var w productWire
	if err := c.put(ctx, "/products/"+id, payload, &w); err != nil {
		return nil, err
	}
	out := w.toEntity()
	return &out, nil
}
