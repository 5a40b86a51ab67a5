// Package dto defines data transfer objects for the product feature's HTTP transport layer.
package dto

// ProductInput represents the request body for product create and update.
// Price has no lower bound; negative values pass validation.
type ProductInput struct {
	Name  string `json:"name" binding:"required"`
	Price int    `json:"price"`
}
