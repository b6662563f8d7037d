package apphttp

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"candora.shop/api/internal/config"
	"candora.shop/api/internal/http/handlers"
	"candora.shop/api/internal/http/middleware"
	"candora.shop/api/internal/invoice"
	"candora.shop/api/internal/modules/payments"
	"candora.shop/api/internal/modules/uploads"
	"candora.shop/api/internal/storage"
)

func NewRouter(logger *slog.Logger, cfg config.Config, gw payments.Gateway, store storage.Storage) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", payments.SignatureHeader},
		AllowCredentials: true,
	}))
	r.Use(middleware.ErrorHandler(logger))

	r.GET("/", handlers.Root)
	r.GET("/health", handlers.Health)

	paymentH := handlers.NewPaymentHandler(logger, gw)
	uploadH := handlers.NewUploadHandler(logger, store, uploads.Policy{
		AllowedTypes: cfg.Upload.AllowedTypes,
		MaxFileSize:  cfg.Upload.MaxFileSize,
	})
	invoiceH := handlers.NewInvoiceHandler(logger, invoice.NewRenderer())

	api := r.Group("/api")

	pay := api.Group("/payments")
	pay.POST("/create-intent", paymentH.CreateIntent)
	pay.POST("/confirm", paymentH.Confirm)
	pay.POST("/webhook", paymentH.Webhook)

	api.POST("/uploads/product-image", uploadH.ProductImage)
	api.POST("/invoices/generate", invoiceH.Generate)

	return r
}
