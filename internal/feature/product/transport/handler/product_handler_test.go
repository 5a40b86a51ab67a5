package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"products_api/internal/feature/product/domain/entity"
	"products_api/internal/feature/product/usecase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockProductUsecase is a mock implementation of the ProductUsecase interface.
type mockProductUsecase struct {
	FindFunc    func(ctx context.Context, id uint) (*entity.Product, error)
	FindAllFunc func(ctx context.Context) ([]entity.Product, error)
	CreateFunc  func(ctx context.Context, input usecase.ProductInput) (*entity.Product, error)
	UpdateFunc  func(ctx context.Context, id uint, input usecase.ProductInput) (*entity.Product, error)
	DeleteFunc  func(ctx context.Context, id uint) error
}

func (m *mockProductUsecase) Find(ctx context.Context, id uint) (*entity.Product, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, id)
	}
	return nil, usecase.ErrProductNotFound
}

func (m *mockProductUsecase) FindAll(ctx context.Context) ([]entity.Product, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []entity.Product{}, nil
}

func (m *mockProductUsecase) Create(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, input)
	}
	return &entity.Product{ID: 1, Name: input.Name, Price: input.Price}, nil
}

func (m *mockProductUsecase) Update(ctx context.Context, id uint, input usecase.ProductInput) (*entity.Product, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, input)
	}
	return nil, usecase.ErrProductNotFound
}

func (m *mockProductUsecase) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return usecase.ErrProductNotFound
}

// setupRouter registers the product routes without the auth middleware.
func setupRouter(uc ProductUsecase) *gin.Engine {
	h := NewProductHandler(uc)
	r := gin.New()
	r.GET("/Product", h.List)
	r.GET("/Product/:id", h.Get)
	r.POST("/Product", h.Create)
	r.PUT("/Product/:id", h.Update)
	r.DELETE("/Product/:id", h.Delete)
	return r
}

func performRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

var laptop = entity.Product{
	ID:          1,
	Name:        "Laptop",
	Price:       124,
	DateCreated: time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC),
}

func TestProductHandler_Get(t *testing.T) {
	t.Run("existing product returns 200 with date-only JSON", func(t *testing.T) {
		router := setupRouter(&mockProductUsecase{
			FindFunc: func(ctx context.Context, id uint) (*entity.Product, error) {
				assert.Equal(t, uint(1), id)
				p := laptop
				return &p, nil
			},
		})

		w := performRequest(router, http.MethodGet, "/Product/1", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, float64(1), resp["id"])
		assert.Equal(t, "Laptop", resp["name"])
		assert.Equal(t, float64(124), resp["price"])
		assert.Equal(t, "2024-02-27", resp["dateCreated"])
	})

	t.Run("absent product returns 404", func(t *testing.T) {
		router := setupRouter(&mockProductUsecase{})

		w := performRequest(router, http.MethodGet, "/Product/99", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		router := setupRouter(&mockProductUsecase{})

		w := performRequest(router, http.MethodGet, "/Product/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("storage failure returns 500", func(t *testing.T) {
		router := setupRouter(&mockProductUsecase{
			FindFunc: func(ctx context.Context, id uint) (*entity.Product, error) {
				return nil, errors.New("database connection failed")
			},
		})

		w := performRequest(router, http.MethodGet, "/Product/1", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestProductHandler_List(t *testing.T) {
	t.Run("empty store returns empty array", func(t *testing.T) {
		router := setupRouter(&mockProductUsecase{})

		w := performRequest(router, http.MethodGet, "/Product", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("populated store returns all rows", func(t *testing.T) {
		router := setupRouter(&mockProductUsecase{
			FindAllFunc: func(ctx context.Context) ([]entity.Product, error) {
				return []entity.Product{
					laptop,
					{ID: 2, Name: "Mouse", Price: 25, DateCreated: laptop.DateCreated},
				}, nil
			},
		})

		w := performRequest(router, http.MethodGet, "/Product", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "Laptop", resp[0]["name"])
		assert.Equal(t, "Mouse", resp[1]["name"])
	})
}

func TestProductHandler_Create(t *testing.T) {
	t.Run("valid input returns 201 with Location header", func(t *testing.T) {
		router := setupRouter(&mockProductUsecase{
			CreateFunc: func(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
				assert.Equal(t, "Laptop", input.Name)
				assert.Equal(t, 124, input.Price)
				p := laptop
				return &p, nil
			},
		})

		w := performRequest(router, http.MethodPost, "/Product", gin.H{"name": "Laptop", "price": 124})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/Product/1", w.Header().Get("Location"))

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, float64(1), resp["id"])
		assert.Equal(t, "2024-02-27", resp["dateCreated"])
	})

	t.Run("missing name fails validation with 400", func(t *testing.T) {
		called := false
		router := setupRouter(&mockProductUsecase{
			CreateFunc: func(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
				called = true
				return nil, nil
			},
		})

		w := performRequest(router, http.MethodPost, "/Product", gin.H{"price": 124})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called, "usecase must not run on invalid payload")
	})

	t.Run("zero price passes validation", func(t *testing.T) {
		router := setupRouter(&mockProductUsecase{})

		w := performRequest(router, http.MethodPost, "/Product", gin.H{"name": "Freebie", "price": 0})

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestProductHandler_Update(t *testing.T) {
	t.Run("existing product returns 200 with preserved dateCreated", func(t *testing.T) {
		router := setupRouter(&mockProductUsecase{
			UpdateFunc: func(ctx context.Context, id uint, input usecase.ProductInput) (*entity.Product, error) {
				assert.Equal(t, uint(1), id)
				p := laptop
				p.Name = input.Name
				p.Price = input.Price
				return &p, nil
			},
		})

		w := performRequest(router, http.MethodPut, "/Product/1", gin.H{"name": "Laptop", "price": 1234})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, float64(1), resp["id"])
		assert.Equal(t, float64(1234), resp["price"])
		assert.Equal(t, "2024-02-27", resp["dateCreated"])
	})

	t.Run("absent product returns 404", func(t *testing.T) {
		router := setupRouter(&mockProductUsecase{})

		w := performRequest(router, http.MethodPut, "/Product/99", gin.H{"name": "Laptop", "price": 1234})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("PUT without id is not routed", func(t *testing.T) {
		router := setupRouter(&mockProductUsecase{})

		w := performRequest(router, http.MethodPut, "/Product", gin.H{"name": "Laptop", "price": 1234})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProductHandler_Delete(t *testing.T) {
	t.Run("existing product returns 200 with empty body", func(t *testing.T) {
		router := setupRouter(&mockProductUsecase{
			DeleteFunc: func(ctx context.Context, id uint) error {
				assert.Equal(t, uint(1), id)
				return nil
			},
		})

		w := performRequest(router, http.MethodDelete, "/Product/1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, w.Body.Len(), "delete response body must be empty")
	})

	t.Run("absent product returns 404", func(t *testing.T) {
		router := setupRouter(&mockProductUsecase{})

		w := performRequest(router, http.MethodDelete, "/Product/99", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
