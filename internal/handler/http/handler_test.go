package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testAuthToken is the shared secret used by handler tests; requests carry
// "Bearer " + testAuthToken to pass the auth gate.
const testAuthToken = "test-secret-token"

// newTestHandler builds a Handler around the given UserService with a
// nop logger and the test credential.
func newTestHandler(t *testing.T, svc service.UserService) *Handler {
	t.Helper()
	return NewHandler(
		&service.Services{UserService: svc},
		config.App{AuthToken: testAuthToken},
		logger.Nop(),
	)
}

// injectNopLogger puts a nop logger into the request context so that
// handlers calling logger.FromRequest do not fall back to the global
// logger and spam test output.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// ---- NewHandler ----

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	h := NewHandler(svcs, config.App{AuthToken: "abc"}, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Equal(t, "abc", h.authToken)
	assert.NotNil(t, h.logger)
}
