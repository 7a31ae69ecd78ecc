package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/service"
	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/internal/validators"
	"github.com/MKhiriev/go-user-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the full stack: real directory, real validation, real
// hashing, nop logging. Returned requests flow through the complete
// middleware chain exactly as in production.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	log := logger.Nop()
	cfg := &config.StructuredConfig{
		App: config.App{
			AuthToken: testAuthToken,
			HashKey:   "integration-hash-key",
		},
	}

	directory := store.NewUserDirectory(log)
	services := service.NewServices(directory, cfg, log)

	return NewHandler(services, cfg.App, log).Init()
}

func doJSON(t *testing.T, router http.Handler, method, target, body string, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testAuthToken)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func signUp(t *testing.T, router http.Handler, name, email, password string) models.User {
	t.Helper()

	body := jsonBody(t, models.CreateUserRequest{Name: name, Email: email, Password: password})
	rr := doJSON(t, router, http.MethodPost, "/signup", body, true)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	return created
}

// ─────────────────────────────────────────────
// Account lifecycle
// ─────────────────────────────────────────────

// TestRouter_AccountLifecycle walks one account through signup, login,
// password change, and the resulting credential rotation.
func TestRouter_AccountLifecycle(t *testing.T) {
	router := newTestRouter(t)

	// signup
	ann := signUp(t, router, "Ann", "ann@example.com", "pw1")
	assert.NotEmpty(t, ann.ID)
	assert.Equal(t, "Ann", ann.Name)
	assert.False(t, ann.CreatedAt.IsZero())

	// login with the original password
	login := jsonBody(t, models.LoginRequest{Email: "ann@example.com", Password: "pw1"})
	rr := doJSON(t, router, http.MethodPost, "/login", login, true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Welcome Ann", rr.Body.String())

	// rotate the password
	update := jsonBody(t, models.CreateUserRequest{Name: "Ann", Email: "ann@example.com", Password: "pw2"})
	rr = doJSON(t, router, http.MethodPut, "/users/"+ann.ID, update, true)
	require.Equal(t, http.StatusOK, rr.Code)

	// the old password no longer works
	rr = doJSON(t, router, http.MethodPost, "/login", login, true)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Email or password is incorrect. Please try again.", rr.Body.String())

	// the new one does
	newLogin := jsonBody(t, models.LoginRequest{Email: "ann@example.com", Password: "pw2"})
	rr = doJSON(t, router, http.MethodPost, "/login", newLogin, true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Welcome Ann", rr.Body.String())
}

// TestRouter_SignupLocationHeader verifies the Location header points at the
// freshly created resource and that the resource is fetchable through it.
func TestRouter_SignupLocationHeader(t *testing.T) {
	router := newTestRouter(t)

	body := jsonBody(t, models.CreateUserRequest{Name: "Ann", Email: "ann@example.com", Password: "pw1"})
	rr := doJSON(t, router, http.MethodPost, "/signup", body, true)
	require.Equal(t, http.StatusCreated, rr.Code)

	location := rr.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/users/"), "unexpected Location: %s", location)

	rr = doJSON(t, router, http.MethodGet, location, "", false)
	require.Equal(t, http.StatusOK, rr.Code)

	var fetched models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fetched))
	assert.Equal(t, "ann@example.com", fetched.Email)
}

// ─────────────────────────────────────────────
// Validation stops mutations
// ─────────────────────────────────────────────

// TestRouter_SignupValidationFailure_DirectoryUntouched verifies that an
// invalid signup reports every violated field and creates nothing.
func TestRouter_SignupValidationFailure_DirectoryUntouched(t *testing.T) {
	router := newTestRouter(t)

	body := jsonBody(t, models.CreateUserRequest{Name: "Ann", Password: "pw1"}) // no email
	rr := doJSON(t, router, http.MethodPost, "/signup", body, true)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var violations validators.Violations
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &violations))
	require.Len(t, violations, 1)
	assert.Equal(t, "email", violations[0].Field)

	// nothing was created
	rr = doJSON(t, router, http.MethodGet, "/users", "", false)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

// TestRouter_SignupAllViolationsReported verifies that a fully empty payload
// reports every missing field in one response.
func TestRouter_SignupAllViolationsReported(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/signup", "{}", true)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var violations validators.Violations
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &violations))
	assert.Len(t, violations, 3)

	fields := make([]string, len(violations))
	for i, v := range violations {
		fields[i] = v.Field
	}
	assert.ElementsMatch(t, []string{"name", "email", "password"}, fields)
}

// ─────────────────────────────────────────────
// Duplicate email
// ─────────────────────────────────────────────

func TestRouter_SignupDuplicateEmail(t *testing.T) {
	router := newTestRouter(t)

	signUp(t, router, "Ann", "ann@example.com", "pw1")

	body := jsonBody(t, models.CreateUserRequest{Name: "Another Ann", Email: "ann@example.com", Password: "pw9"})
	rr := doJSON(t, router, http.MethodPost, "/signup", body, true)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Email already exists.", rr.Body.String())

	// only the first account exists
	rr = doJSON(t, router, http.MethodGet, "/users", "", false)
	var users []models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
	assert.Len(t, users, 1)
}

// ─────────────────────────────────────────────
// Auth gate over the whole surface
// ─────────────────────────────────────────────

// TestRouter_MutationsRequireToken verifies that every non-GET route is
// rejected without the credential and that the rejection leaves no trace in
// the directory.
func TestRouter_MutationsRequireToken(t *testing.T) {
	router := newTestRouter(t)

	body := jsonBody(t, models.CreateUserRequest{Name: "Ann", Email: "ann@example.com", Password: "pw1"})

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/signup"},
		{http.MethodPost, "/login"},
		{http.MethodPut, "/users/some-id"},
		{http.MethodDelete, "/users/some-id"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" without token → 401", func(t *testing.T) {
			rr := doJSON(t, router, tt.method, tt.path, body, false)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Unauthorized: Invalid or missing token.", rr.Body.String())
		})
	}

	// the rejected signup created nothing
	rr := doJSON(t, router, http.MethodGet, "/users", "", false)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

// TestRouter_ReadsNeedNoToken verifies that every GET route is reachable
// without credentials.
func TestRouter_ReadsNeedNoToken(t *testing.T) {
	router := newTestRouter(t)
	signUp(t, router, "Ann", "ann@example.com", "pw1")

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/", http.StatusOK},
		{"/users", http.StatusOK},
		{"/users/search?name=ann", http.StatusOK},
		{"/users/by-email/ann@example.com", http.StatusOK},
		{"/users/unknown-id", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run("GET "+tt.path, func(t *testing.T) {
			rr := doJSON(t, router, http.MethodGet, tt.path, "", false)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// ─────────────────────────────────────────────
// Read endpoints
// ─────────────────────────────────────────────

func TestRouter_RootGreeting(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/", "", false)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Hello, I am the root.", rr.Body.String())
}

func TestRouter_SearchUsers(t *testing.T) {
	router := newTestRouter(t)
	signUp(t, router, "Ann", "ann@example.com", "pw1")
	signUp(t, router, "Joanna", "joanna@example.com", "pw2")
	signUp(t, router, "Bob", "bob@example.com", "pw3")

	t.Run("fragment matches case-insensitively", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodGet, "/users/search?name=AN", "", false)
		require.Equal(t, http.StatusOK, rr.Code)

		var users []models.User
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
		assert.Len(t, users, 2)
	})

	t.Run("no matches → 404", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodGet, "/users/search?name=zzz", "", false)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

// ─────────────────────────────────────────────
// Deletion
// ─────────────────────────────────────────────

func TestRouter_DeleteUser(t *testing.T) {
	router := newTestRouter(t)
	ann := signUp(t, router, "Ann", "ann@example.com", "pw1")

	rr := doJSON(t, router, http.MethodDelete, "/users/"+ann.ID, "", true)
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	// the account is gone
	rr = doJSON(t, router, http.MethodGet, "/users/"+ann.ID, "", false)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// deleting it again → 404
	rr = doJSON(t, router, http.MethodDelete, "/users/"+ann.ID, "", true)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ─────────────────────────────────────────────
// Routing edges
// ─────────────────────────────────────────────

// TestRouter_WrongMethodReturns404 verifies the 405→404 downgrade through
// the full chain. Non-GET probes carry the credential so they reach routing.
func TestRouter_WrongMethodReturns404(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{
			name:   "POST on /users (GET only)",
			method: http.MethodPost,
			path:   "/users",
		},
		{
			name:   "GET on /signup (POST only)",
			method: http.MethodGet,
			path:   "/signup",
		},
		{
			name:   "GET on /login (POST only)",
			method: http.MethodGet,
			path:   "/login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doJSON(t, router, tt.method, tt.path, "", true)
			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/totally/wrong", "", false)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ---- X-Trace-ID is always present in the response ----

func TestRouter_TraceIDHeader_AlwaysSet(t *testing.T) {
	router := newTestRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/users", "", false)
	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))
}

func TestRouter_TraceIDHeader_EchoedFromRequest(t *testing.T) {
	router := newTestRouter(t)
	const customTraceID = "my-custom-trace-id-12345"

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("X-Trace-ID", customTraceID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, customTraceID, rr.Header().Get("X-Trace-ID"))
}
