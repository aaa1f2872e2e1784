package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordersapp/internal/pkg/errs"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func Test_statusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found is 404", errs.NewObjectNotFoundError("orderId", int64(7)), http.StatusNotFound},
		{"version conflict is 409", errs.NewConcurrentModificationError("orderId", int64(7)), http.StatusConflict},
		{"invalid value is 400", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"required value is 400", errs.NewValueIsRequiredError("orderItems"), http.StatusBadRequest},
		{"out of range is 400", errs.NewValueIsOutOfRangeError("quantity", 0, 1, 100), http.StatusBadRequest},
		{"invalid version is 400", errs.NewVersionIsInvalidError("version"), http.StatusBadRequest},
		{"anything else is 500", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func Test_respondError(t *testing.T) {
	t.Run("should expose domain error message to the client", func(t *testing.T) {
		ctx, rec := newTestContext(t)

		err := respondError(ctx, errs.NewObjectNotFoundError("customerId", int64(42)))

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, http.StatusNotFound, body.Code)
		assert.Equal(t, "object not found: 42", body.Message)
	})

	t.Run("should hide internal error details", func(t *testing.T) {
		ctx, rec := newTestContext(t)

		err := respondError(ctx, errors.New("pq: password authentication failed"))

		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "internal server error", body.Message)
		assert.NotContains(t, rec.Body.String(), "password")
	})
}
