// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhandler "products_api/internal/feature/auth/transport/handler"
	producthandler "products_api/internal/feature/product/transport/handler"
	"products_api/internal/platform/http/handler"
	jwtmw "products_api/internal/platform/jwt"
)

func NewRouter(authH *authhandler.AuthHandler, productH *producthandler.ProductHandler, jwtSecret string) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/healthz", handler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// No auth required
	am := r.Group("/AuthManagement")
	{
		am.POST("/Register", authH.Register)
		am.POST("/Login", authH.Login)
	}

	// Routes requiring a bearer token
	product := r.Group("/Product")
	product.Use(jwtmw.AuthRequired(jwtSecret))
	{
		product.GET("", productH.List)
		product.GET("/:id", productH.Get)
		product.POST("", productH.Create)
		// PUT without an id is deliberately not registered; the id is
		// always bound from the path.
		product.PUT("/:id", productH.Update)
		product.DELETE("/:id", productH.Delete)
	}

	return r
}
