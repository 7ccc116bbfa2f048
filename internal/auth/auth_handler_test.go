package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-attendance/internal/auth"
	autherrors "go-attendance/internal/auth/errors"
	authMock "go-attendance/internal/auth/mock"
	"go-attendance/internal/shared/response"
	"go-attendance/internal/user"
	usererrors "go-attendance/internal/user/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func postJSON(r *gin.Engine, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.ApiEnvelope {
	t.Helper()
	var env response.ApiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService, false)
	router := setupAuthRouter()
	router.POST("/login", handler.Login)

	reqBody := auth.LoginRequest{Email: "test@example.com", Password: "password123"}

	t.Run("web client receives cookie", func(t *testing.T) {
		mockService.EXPECT().Login(gomock.Any(), reqBody).Return(auth.AuthResponse{
			Token: "jwt",
			User:  auth.SessionUser{ID: "u-1", Email: reqBody.Email, Role: user.RoleEmployee},
		}, nil)

		w := postJSON(router, "/login", reqBody, map[string]string{"X-Client-Type": "WEB"})

		assert.Equal(t, http.StatusOK, w.Code)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "access_token", cookies[0].Name)
		assert.Equal(t, "jwt", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("mobile client gets token in body only", func(t *testing.T) {
		mockService.EXPECT().Login(gomock.Any(), reqBody).Return(auth.AuthResponse{Token: "jwt"}, nil)

		w := postJSON(router, "/login", reqBody, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Result().Cookies())
		assert.Contains(t, w.Body.String(), `"token":"jwt"`)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		mockService.EXPECT().Login(gomock.Any(), reqBody).Return(auth.AuthResponse{}, autherrors.ErrInvalidCredentials)

		w := postJSON(router, "/login", reqBody, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, "Invalid credentials", env.Error.Message)
	})

	t.Run("missing password", func(t *testing.T) {
		w := postJSON(router, "/login", map[string]string{"email": "test@example.com"}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, "Password is required", env.Error.Message)
	})
}

func TestHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	router := setupAuthRouter()
	router.POST("/register", auth.NewHandler(mockService, false).Register)

	reqBody := auth.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"}

	t.Run("created", func(t *testing.T) {
		mockService.EXPECT().Register(gomock.Any(), reqBody).Return(auth.AuthResponse{Token: "jwt"}, nil)

		w := postJSON(router, "/register", reqBody, nil)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockService.EXPECT().Register(gomock.Any(), reqBody).Return(auth.AuthResponse{}, usererrors.ErrEmailAlreadyExists)

		w := postJSON(router, "/register", reqBody, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email already exists", decodeEnvelope(t, w).Error.Message)
	})

	t.Run("short password", func(t *testing.T) {
		w := postJSON(router, "/register", auth.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "123"}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	router := setupAuthRouter()
	router.GET("/me", func(c *gin.Context) {
		c.Set("user_id", "u-1")
		c.Next()
	}, auth.NewHandler(mockService, false).Me)

	mockService.EXPECT().GetMe(gomock.Any(), "u-1").Return(user.Response{ID: "u-1", Name: "Ann"}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Ann"`)
}

func TestHandler_Logout(t *testing.T) {
	router := setupAuthRouter()
	router.POST("/logout", auth.NewHandler(nil, false).Logout)

	w := postJSON(router, "/logout", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
