package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MikeRez0/shopx/internal/adapter/config"
	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/MikeRez0/shopx/internal/core/port"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.App,
	tokenService port.TokenService,
	cartHandler *CartHandler,
	orderHandler *OrderHandler,
	log *zap.Logger) (*Router, error) {

	if conf.Mode == config.AppModeProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := NewHandler(log)

	api := router.Group("/api")
	api.Use(auth.authCheck(tokenService))
	{
		cart := api.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("/add", cartHandler.AddToCart)
			cart.PATCH("/item/:productId", cartHandler.UpdateCartItem)
			cart.DELETE("/item/:productId", cartHandler.RemoveFromCart)
			cart.DELETE("", cartHandler.ClearCart)
		}

		orders := api.Group("/orders")
		{
			orders.POST("/create", auth.requireRole(domain.RoleCustomer), orderHandler.CreateOrderIntent)
			orders.POST("/verify", auth.requireRole(domain.RoleCustomer), orderHandler.VerifyPayment)
			orders.GET("/my", orderHandler.ListOrdersByCustomer)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.GET("", auth.requireRole(domain.RoleAdmin), orderHandler.ListOrders)
			orders.PATCH("/:id/status", auth.requireRole(domain.RoleAdmin, domain.RoleSeller),
				orderHandler.UpdateOrderStatus)
		}

		seller := api.Group("/seller")
		seller.Use(auth.requireRole(domain.RoleSeller, domain.RoleAdmin))
		{
			seller.GET("/orders", orderHandler.ListOrdersBySeller)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server and shuts it down once ctx is done.
func (r *Router) Serve(ctx context.Context, listenAddr string) error {
	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           r.Engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
