// Package handler provides the HTTP handlers for the product feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"products_api/internal/feature/product/domain/entity"
	"products_api/internal/feature/product/transport/http/dto"
	"products_api/internal/feature/product/usecase"
)

// ProductUsecase defines the usecase for product operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ProductUsecase interface {
	Find(ctx context.Context, id uint) (*entity.Product, error)
	FindAll(ctx context.Context) ([]entity.Product, error)
	Create(ctx context.Context, input usecase.ProductInput) (*entity.Product, error)
	Update(ctx context.Context, id uint, input usecase.ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id uint) error
}

// ProductHandler handles HTTP requests for product operations.
type ProductHandler struct {
	products ProductUsecase
}

// NewProductHandler creates a new instance of ProductHandler.
func NewProductHandler(products ProductUsecase) *ProductHandler {
	return &ProductHandler{products: products}
}

// parseID extracts the numeric id path parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return 0, false
	}
	return uint(id), true
}

// Get handles GET /Product/:id.
// Returns 404 when the product does not exist, 500 on storage failure.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := h.products.Find(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			slog.Warn("product not found", "id", id)
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromEntity(product))
}

// List handles GET /Product. An empty store yields an empty array.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, dto.FromEntity(&products[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /Product.
// Responds 201 with the stored product and a Location header for it.
func (h *ProductHandler) Create(c *gin.Context) {
	var input dto.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	product, err := h.products.Create(c.Request.Context(), usecase.ProductInput{
		Name:  input.Name,
		Price: input.Price,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Location", fmt.Sprintf("/Product/%d", product.ID))
	c.JSON(http.StatusCreated, dto.FromEntity(product))
}

// Update handles PUT /Product/:id.
// Only name and price change; id and dateCreated are preserved.
// Returns 404 when the product does not exist.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input dto.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	product, err := h.products.Update(c.Request.Context(), id, usecase.ProductInput{
		Name:  input.Name,
		Price: input.Price,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			slog.Warn("product not found", "id", id)
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromEntity(product))
}

// Delete handles DELETE /Product/:id.
// Returns 404 when the product does not exist, 200 with an empty body on success.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			slog.Warn("product not found", "id", id)
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusOK)
}
