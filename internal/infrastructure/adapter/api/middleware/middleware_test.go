package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/referral-ledger/internal/testutil"
	coremocks "github.com/amirhossein-jamali/referral-ledger/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	r := gin.New()
	r.Use(RequestID())
	r.Use(ErrorHandler(testutil.NewLogger(t)))
	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{errs.NewInsufficientFundsError(7, "BRT", "5.00", "1.00"), http.StatusPaymentRequired},
		{errs.ErrAccountNotFound, http.StatusNotFound},
		{fmt.Errorf("challenge 3: %w", errs.ErrNotFound), http.StatusNotFound},
		{errs.ErrAccountDisabled, http.StatusForbidden},
		{errs.ErrForbidden, http.StatusForbidden},
		{errs.ErrAlreadyMember, http.StatusConflict},
		{errs.ErrAlreadyPaidOut, http.StatusConflict},
		{errs.ErrInvalidState, http.StatusConflict},
		{errs.ErrDuplicateAccount, http.StatusConflict},
		{errs.ErrDuplicateReference, http.StatusConflict},
		{errs.ErrConstraintViolation, http.StatusConflict},
		{errs.ErrConcurrentUpdate, http.StatusConflict},
		{errs.ErrDatabaseConnection, http.StatusServiceUnavailable},
		{errs.ErrInvalidAmount, http.StatusBadRequest},
		{errs.ErrUnknownProgram, http.StatusBadRequest},
		{errs.ErrInvalidReferralCode, http.StatusBadRequest},
		{errs.ErrConservationViolation, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		name := "nil"
		if tt.err != nil {
			name = tt.err.Error()
		}
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestErrorHandler_RendersLastError(t *testing.T) {
	r := newEngine(t)
	r.GET("/client", func(c *gin.Context) {
		_ = c.Error(fmt.Errorf("%w: GS-IX", errs.ErrUnknownProgram))
	})
	r.GET("/server", func(c *gin.Context) {
		_ = c.Error(errors.New("pq: relation does not exist"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/client", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.False(t, body.Success)
	assert.Equal(t, errs.CodeUnknownProgram, body.Code)
	assert.Contains(t, body.Error, "GS-IX")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/server", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body = decodeError(t, w)
	assert.Equal(t, internalErrorMessage, body.Error)
	assert.NotContains(t, w.Body.String(), "relation")
}

func TestErrorHandler_RecoversPanics(t *testing.T) {
	r := newEngine(t)
	r.GET("/panic", func(c *gin.Context) {
		panic("nil map")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, errs.CodeInternalServer, decodeError(t, w).Code)
}

func TestErrorHandler_KeepsWrittenResponse(t *testing.T) {
	r := newEngine(t)
	r.GET("/written", func(c *gin.Context) {
		c.JSON(http.StatusAccepted, dto.OK("queued"))
		_ = c.Error(errors.New("late"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/written", nil))
	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestRequestID(t *testing.T) {
	var fromCtx string
	r := newEngine(t)
	r.GET("/", func(c *gin.Context) {
		fromCtx = coreport.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	t.Run("reuses caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", fromCtx)
	})

	t.Run("generates id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, fromCtx)
	})
}

func TestRequireUser(t *testing.T) {
	r := newEngine(t)
	r.GET("/me", RequireUser(), func(c *gin.Context) {
		id, ok := UserIDFrom(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, dto.OK(id))
	})

	for _, header := range []string{"", "abc", "0", "-4"} {
		t.Run("rejects "+header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if header != "" {
				req.Header.Set(UserIDHeader, header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, errs.CodeInvalidUserID, decodeError(t, w).Code)
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(UserIDHeader, "42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":42}`, w.Body.String())
}

func TestAdminOnlyAndSelfOrAdmin(t *testing.T) {
	isAdmin := func(id uint64) bool { return id == 1 }

	r := newEngine(t)
	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }
	r.GET("/admin", RequireUser(), AdminOnly(isAdmin), ok)
	r.GET("/accounts/:userId", RequireUser(), SelfOrAdmin(isAdmin), ok)

	tests := []struct {
		name   string
		path   string
		caller string
		want   int
	}{
		{"admin route as admin", "/admin", "1", http.StatusNoContent},
		{"admin route as user", "/admin", "5", http.StatusForbidden},
		{"own account", "/accounts/5", "5", http.StatusNoContent},
		{"other account", "/accounts/6", "5", http.StatusForbidden},
		{"other account as admin", "/accounts/6", "1", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set(UserIDHeader, tt.caller)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestLogger_LogsRequest(t *testing.T) {
	clock := testutil.NewClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	log := coremocks.NewMockLogger(t)
	log.EXPECT().Info("Request processed", mock.MatchedBy(func(f map[string]any) bool {
		return f["status"] == http.StatusOK && f["route"] == "/ping" && f["method"] == http.MethodGet
	})).Once()

	r := gin.New()
	r.Use(Logger(log, clock))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
