// Package dto defines data transfer objects for the products feature's HTTP transport layer.
package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"time"

	"admin_backend/internal/api"
	"admin_backend/internal/feature/products/domain/entity"
)

// ActionRequest is the body of POST /products.
// ProductID is accepted at the top level for delete requests.
type ActionRequest struct {
	Action    string          `json:"action"`
	ProductID api.ID          `json:"productid"`
	Data      json.RawMessage `json:"data"`
}

// Count keeps the raw JSON text of a count so that validation sees exactly what was sent.
// A JSON string is unquoted; an integral number such as 5.0 or 5e0 is written
// as an integer; any other literal is kept as sent; absent or null is "".
type Count string

// UnmarshalJSON implements json.Unmarshaler.
func (c *Count) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*c = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = Count(s)
	case b[0] == '-' || (b[0] >= '0' && b[0] <= '9'):
		*c = Count(integralText(json.Number(b)))
	default:
		*c = Count(b)
	}
	return nil
}

// maxExactInt is the largest integer a float64 holds exactly.
const maxExactInt = 1 << 53

func integralText(n json.Number) string {
	if _, err := n.Int64(); err == nil {
		return n.String()
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > maxExactInt {
		return n.String()
	}
	return strconv.FormatInt(int64(f), 10)
}

// ProductPayload carries the product fields of add, update and register requests.
type ProductPayload struct {
	ID        api.ID `json:"id"`
	ProductID api.ID `json:"productid"`
	Name      string `json:"name"`
	Owner     string `json:"owner"`
	Category  string `json:"category"`
	Count     Count  `json:"count"`
}

// Input converts the payload to a usecase input.
func (p ProductPayload) Input() entity.ProductInput {
	return entity.ProductInput{
		Name:     p.Name,
		Owner:    p.Owner,
		Category: p.Category,
		Count:    string(p.Count),
	}
}

// TargetID returns id, falling back to productid.
func (p ProductPayload) TargetID() uint {
	return api.First(p.ID, p.ProductID)
}

// DeleteData selects the product to delete.
type DeleteData struct {
	ID        api.ID `json:"id"`
	ProductID api.ID `json:"productid"`
}

// ValidateRequest is the body of POST /products/validate.
type ValidateRequest struct {
	Field   string `json:"field" binding:"required"`
	Value   string `json:"value"`
	Profile string `json:"profile"`
}

// ProductResponse is the public representation of a product.
type ProductResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Owner     string    `json:"owner"`
	Category  string    `json:"category"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListResponse is the body of GET /products.
type ListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    *int64            `json:"total,omitempty"`
	Page     int               `json:"page,omitempty"`
	Size     int               `json:"size,omitempty"`
}

// ProductResultResponse is returned by successful add, update and register.
type ProductResultResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}

// FromEntity maps a product entity to its response form.
func FromEntity(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Owner:     p.Owner,
		Category:  p.Category,
		Count:     p.Count,
		CreatedAt: p.CreatedAt,
	}
}

// FromEntities maps a slice of products; the result is never nil.
func FromEntities(products []entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromEntity(p))
	}
	return out
}
