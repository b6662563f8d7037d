package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"candora.shop/api/internal/http/middleware"
	"candora.shop/api/internal/modules/payments"
	"candora.shop/api/internal/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRouter wires the same middleware the real router uses for error
// rendering, so handler tests observe production status codes and bodies.
func newTestRouter(register func(r *gin.Engine)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler(testLogger()))
	register(r)
	return r
}

type gatewayMock struct{ mock.Mock }

func (m *gatewayMock) Name() string { return "stripe" }

func (m *gatewayMock) CreateIntent(ctx context.Context, in payments.CreateIntentInput) (payments.Intent, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(payments.Intent), args.Error(1)
}

func (m *gatewayMock) GetIntent(ctx context.Context, paymentIntentID string) (payments.Intent, error) {
	args := m.Called(ctx, paymentIntentID)
	return args.Get(0).(payments.Intent), args.Error(1)
}

func (m *gatewayMock) VerifyAndParseWebhook(payload []byte, sigHeader string) (payments.WebhookEvent, error) {
	args := m.Called(payload, sigHeader)
	return args.Get(0).(payments.WebhookEvent), args.Error(1)
}

type storeMock struct{ mock.Mock }

func (m *storeMock) Put(ctx context.Context, r io.Reader, in storage.PutInput) (storage.PutResult, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(storage.PutResult), args.Error(1)
}

func (m *storeMock) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func multipartFile(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	hdr.Set("Content-Type", contentType)

	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}
