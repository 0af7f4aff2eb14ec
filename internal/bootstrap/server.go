package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rkhan0192/sapienscare/api"
	"github.com/rkhan0192/sapienscare/config"
)

// Handlers groups the route handlers the HTTP server mounts.
type Handlers struct {
	Products *api.ProductHandler
	Orders   *api.OrderHandler
	Export   *api.ExportHandler
	Upload   *api.UploadHandler
}

// Run starts the HTTP server and blocks until context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, handlers Handlers) error {
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Sapiens Care is running")
	})

	handlers.Products.Register(router.Group("/products"))
	handlers.Orders.Register(router.Group("/orders"))
	handlers.Export.Register(router.Group("/export"))
	handlers.Upload.Register(router.Group("/uploads"))

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
