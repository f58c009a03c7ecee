package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"

	"ecommerce/internal/domain"
)

func TestRespondError(t *testing.T) {
	for _, tc := range []struct {
		name string
		err  error
		code int
		body string
	}{
		{"not found", errors.Wrap(domain.ErrNotFound, "user \"bob\""), http.StatusNotFound, ""},
		{"bad request", errors.Wrap(domain.ErrBadRequest, "quantity"), http.StatusBadRequest, ""},
		{"other", errors.New("connection refused"), http.StatusInternalServerError, "connection refused"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, tc.err, "test")

			assert.Equal(t, tc.code, w.Code)
			assert.Equal(t, tc.body, w.Body.String())
			assert.True(t, c.IsAborted())
		})
	}
}
