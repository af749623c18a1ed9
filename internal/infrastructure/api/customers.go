package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tu-usuario/moda-backoffice/internal/domain/entity"
)

// customerWire forma JSON del cliente en el contrato REST.
type customerWire struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (w customerWire) toEntity() entity.Customer {
	return entity.Customer{
		ID:        w.ID,
		Name:      w.Name,
		Email:     w.Email,
		Phone:     w.Phone,
		Address:   w.Address,
		City:      w.City,
		Note:      w.Note,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// CustomerPayload cuerpo para crear/actualizar un cliente.
type CustomerPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Note    string `json:"note,omitempty"`
}

// ListCustomers GET /customers.
func (c *Client) ListCustomers(ctx context.Context, p ListParams) (Page[entity.Customer], error) {
	raw, err := c.do(ctx, http.MethodGet, "/customers", p.values(), nil)
	if err != nil {
		return Page[entity.Customer]{}, err
	}
	page, err := decodePage[customerWire](raw)
	if err != nil {
		return Page[entity.Customer]{}, err
	}
	items := make([]entity.Customer, 0, len(page.Items))
	for _, w := range page.Items {
		items = append(items, w.toEntity())
	}
	return Page[entity.Customer]{Items: items, Meta: page.Meta}, nil
}

// CreateCustomer POST /customers.
func (c *Client) CreateCustomer(ctx context.Context, payload CustomerPayload) (*entity.Customer, error) {
	var w customerWire
	if err := c.post(ctx, "/customers", payload, &w); err != nil {
		return nil, err
	}
	out := w.toEntity()
	return &out, nil
}

// UpdateCustomer PUT /customers/{id}.
func (c *Client) UpdateCustomer(ctx context.Context, id string, payload CustomerPayload) (*entity.Customer, error) {
	var w customerWire
	if err := c.put(ctx, "/customers/"+id, payload, &w); err != nil {
		return nil, err
	}
	out := w.toEntity()
	return &out, nil
}
