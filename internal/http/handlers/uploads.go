package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"candora.shop/api/internal/http/middleware"
	"candora.shop/api/internal/modules/uploads"
	"candora.shop/api/internal/shared/apperr"
	"candora.shop/api/internal/storage"
)

type UploadHandler struct {
	Logger *slog.Logger
	Store  storage.Storage // nil when storage is unconfigured
	Policy uploads.Policy
}

func NewUploadHandler(logger *slog.Logger, store storage.Storage, policy uploads.Policy) *UploadHandler {
	return &UploadHandler{Logger: logger, Store: store, Policy: policy}
}

// POST /api/uploads/product-image
func (h *UploadHandler) ProductImage(c *gin.Context) {
	if h.Store == nil {
		middleware.Fail(c, apperr.ConfigurationErr("Storage service not configured."))
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("A file is required.", nil))
		return
	}

	contentType := fh.Header.Get("Content-Type")
	if !h.Policy.AllowsContentType(contentType) {
		middleware.Fail(c, apperr.InvalidErr("Invalid file type. Only JPEG, PNG, and WebP are allowed.", nil))
		return
	}
	if !h.Policy.WithinSizeLimit(fh.Size) {
		middleware.Fail(c, apperr.InvalidErr(
			fmt.Sprintf("File size exceeds maximum allowed size of %dMB.", h.Policy.MaxFileSize/(1024*1024)), nil))
		return
	}

	f, err := fh.Open()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	defer f.Close()

	res, err := h.Store.Put(c.Request.Context(), f, storage.PutInput{
		Filename:    fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	h.Logger.InfoContext(c.Request.Context(), "image uploaded",
		"key", res.Key, "size", fh.Size, "content_type", contentType)

	c.JSON(http.StatusOK, gin.H{
		"url":      res.URL,
		"filename": fh.Filename,
		"size":     fh.Size,
	})
}
