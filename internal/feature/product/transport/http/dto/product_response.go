package dto

import "products_api/internal/feature/product/domain/entity"

// dateLayout renders DateCreated as a bare calendar date.
const dateLayout = "2006-01-02"

// ProductResponse is the JSON projection of a product entity.
type ProductResponse struct {
	ID          uint   `json:"id"`
	DateCreated string `json:"dateCreated"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
}

// FromEntity converts a product entity into its response projection.
func FromEntity(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		DateCreated: p.DateCreated.UTC().Format(dateLayout),
		Name:        p.Name,
		Price:       p.Price,
	}
}
