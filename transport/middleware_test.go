package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ksagri/agroexport-api/cmd/config"
	"github.com/ksagri/agroexport-api/constant"
	userappmocks "github.com/ksagri/agroexport-api/mocks/application/user"
	redismocks "github.com/ksagri/agroexport-api/mocks/repository/redis"
	"github.com/ksagri/agroexport-api/model"
	utilsContext "github.com/ksagri/agroexport-api/utils/context"
	cerr "github.com/ksagri/agroexport-api/utils/errors"
	"github.com/stretchr/testify/mock"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		mockCall   func(userApp *userappmocks.UserApp)
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "valid token reaches the handler",
			authHeader: "Bearer good-token",
			mockCall: func(userApp *userappmocks.UserApp) {
				userApp.
					On("ValidateToken", mock.Anything, "good-token").
					Return(&model.UserEntity{ID: 1, Role: constant.RoleCustomer}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing header rejected",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non-bearer header rejected",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token rejected",
			authHeader: "Bearer bad-token",
			mockCall: func(userApp *userappmocks.UserApp) {
				userApp.
					On("ValidateToken", mock.Anything, "bad-token").
					Return(nil, cerr.SetCustomError(constant.ErrUnauthorized)).
					Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "locked account gets its own status",
			authHeader: "Bearer locked-token",
			mockCall: func(userApp *userappmocks.UserApp) {
				userApp.
					On("ValidateToken", mock.Anything, "locked-token").
					Return(nil, cerr.SetCustomError(constant.ErrAccountLocked)).
					Once()
			},
			wantStatus: http.StatusLocked,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			userApp := userappmocks.NewUserApp(t)
			if tt.mockCall != nil {
				tt.mockCall(userApp)
			}

			called := false
			handler := AuthMiddleware(userApp)(okHandler(&called))

			req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if called != tt.wantNext {
				t.Fatalf("next called = %v, want %v", called, tt.wantNext)
			}
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		mockCall   func(userApp *userappmocks.UserApp)
		wantUser   bool
	}{
		{
			name:       "anonymous request passes through",
			authHeader: "",
			wantUser:   false,
		},
		{
			name:       "bad token passes through without identity",
			authHeader: "Bearer bad-token",
			mockCall: func(userApp *userappmocks.UserApp) {
				userApp.
					On("ValidateToken", mock.Anything, "bad-token").
					Return(nil, cerr.SetCustomError(constant.ErrUnauthorized)).
					Once()
			},
			wantUser: false,
		},
		{
			name:       "valid token attaches identity",
			authHeader: "Bearer good-token",
			mockCall: func(userApp *userappmocks.UserApp) {
				userApp.
					On("ValidateToken", mock.Anything, "good-token").
					Return(&model.UserEntity{ID: 1, Role: constant.RoleAdmin}, nil).
					Once()
			},
			wantUser: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			userApp := userappmocks.NewUserApp(t)
			if tt.mockCall != nil {
				tt.mockCall(userApp)
			}

			var gotUser bool
			handler := OptionalAuthMiddleware(userApp)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, gotUser = utilsContext.GetUser(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			if gotUser != tt.wantUser {
				t.Fatalf("context user present = %v, want %v", gotUser, tt.wantUser)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		ctxUser    *model.UserEntity
		wantStatus int
	}{
		{
			name:       "matching role passes",
			ctxUser:    &model.UserEntity{ID: 1, Role: constant.RoleAdmin},
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong role forbidden",
			ctxUser:    &model.UserEntity{ID: 2, Role: constant.RoleCustomer},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing identity reads as unauthenticated",
			ctxUser:    nil,
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := RequireRole(constant.RoleAdmin)(okHandler(&called))

			req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
			if tt.ctxUser != nil {
				req = req.WithContext(utilsContext.WithUser(context.Background(), tt.ctxUser))
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if called != (tt.wantStatus == http.StatusOK) {
				t.Fatalf("next called = %v", called)
			}

			if tt.wantStatus != http.StatusOK {
				var resp Response
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("body is not a JSON envelope: %v", err)
				}
				if resp.Success {
					t.Fatal("error envelope reports success")
				}
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := &config.Config{
		RateLimit: config.RateLimitConfig{
			Window:    time.Minute,
			MaxPerWin: 5,
		},
	}

	tests := []struct {
		name       string
		mockCall   func(redisRepo *redismocks.RedisRepository)
		wantStatus int
	}{
		{
			name: "under the budget passes",
			mockCall: func(redisRepo *redismocks.RedisRepository) {
				redisRepo.
					On("IncrementRequestCount", mock.Anything, "198.51.100.4", time.Minute).
					Return(int64(3), nil).
					Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "over the budget rejected",
			mockCall: func(redisRepo *redismocks.RedisRepository) {
				redisRepo.
					On("IncrementRequestCount", mock.Anything, "198.51.100.4", time.Minute).
					Return(int64(6), nil).
					Once()
			},
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name: "counter failure fails open",
			mockCall: func(redisRepo *redismocks.RedisRepository) {
				redisRepo.
					On("IncrementRequestCount", mock.Anything, "198.51.100.4", time.Minute).
					Return(int64(0), errors.New("redis down")).
					Once()
			},
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			redisRepo := redismocks.NewRedisRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(redisRepo)
			}

			called := false
			handler := RateLimitMiddleware(cfg, redisRepo)(okHandler(&called))

			req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
			req.RemoteAddr = "198.51.100.4:39040"
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRateLimitFrontsAllRoutes(t *testing.T) {
	cfg := &config.Config{
		RateLimit: config.RateLimitConfig{
			Window:    time.Minute,
			MaxPerWin: 5,
		},
	}

	tests := []struct {
		name       string
		target     string
		count      int64
		wantStatus int
	}{
		{
			name:       "health under the budget",
			target:     "/api/health",
			count:      1,
			wantStatus: http.StatusOK,
		},
		{
			name:       "health over the budget",
			target:     "/api/health",
			count:      6,
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:       "catalog over the budget",
			target:     "/api/products/categories",
			count:      6,
			wantStatus: http.StatusTooManyRequests,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			userApp := userappmocks.NewUserApp(t)
			redisRepo := redismocks.NewRedisRepository(t)
			redisRepo.
				On("IncrementRequestCount", mock.Anything, "198.51.100.4", time.Minute).
				Return(tt.count, nil).
				Once()

			handler := NewTransport(cfg, userApp, nil, nil, redisRepo)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			req.RemoteAddr = "198.51.100.4:39040"
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestInternalMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		apiKey     string
		authHeader string
		wantStatus int
	}{
		{
			name:       "matching key passes",
			apiKey:     "internal-secret",
			authHeader: "Bearer internal-secret",
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong key forbidden",
			apiKey:     "internal-secret",
			authHeader: "Bearer wrong",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "unconfigured key always forbidden",
			apiKey:     "",
			authHeader: "Bearer ",
			wantStatus: http.StatusForbidden,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := InternalMiddleware(tt.apiKey)(okHandler(&called))

			req := httptest.NewRequest(http.MethodPost, "/internal/v1/contact/1/follow-up-due", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestClientAddress(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{
			name:       "remote addr host without port",
			remoteAddr: "198.51.100.4:39040",
			want:       "198.51.100.4",
		},
		{
			name:       "forwarded header wins",
			remoteAddr: "10.0.0.1:39040",
			forwarded:  "203.0.113.7",
			want:       "203.0.113.7",
		},
		{
			name:       "first forwarded hop is the client",
			remoteAddr: "10.0.0.1:39040",
			forwarded:  "203.0.113.7, 10.0.0.1",
			want:       "203.0.113.7",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			if got := clientAddress(req); got != tt.want {
				t.Fatalf("clientAddress() = %q, want %q", got, tt.want)
			}
		})
	}
}
