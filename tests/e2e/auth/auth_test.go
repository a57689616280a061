//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"foodshare/internal/domain/user"
	"foodshare/internal/handler/dto/request"
	resdto "foodshare/internal/handler/dto/response"
	"foodshare/internal/pkg/cookie"
	"foodshare/tests/common/authtest"
	"foodshare/tests/common/builder"
	"foodshare/tests/common/dbtest"
	"foodshare/tests/common/httptest"
	"foodshare/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	signupURL  = "/api/auth/signup"
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "test@example.com", string(user.RoleBoth))
	dbtest.CreateTestUser(s.T(), s.DB, "donor@example.com", string(user.RoleDonor))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleBoth))

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestSignup() {
	s.Run("new account can log in", func() {
		t := s.T()
		reqBody := builder.NewAuthBuilder().WithEmail("new@example.com").BuildSignupDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res resdto.SignupResponse
		httptest.DecodeResponseBody(t, w.Body, &res)
		require.NotEmpty(t, res.UserID)

		token := authtest.LoginUser(t, s.Router, "new@example.com", reqBody.Password)
		require.NotEmpty(t, token)
	})

	s.Run("duplicate email is a conflict", func() {
		t := s.T()
		reqBody := builder.NewAuthBuilder().WithEmail("test@example.com").BuildSignupDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "email already registered")
	})

	s.Run("email comparison ignores case", func() {
		t := s.T()
		reqBody := builder.NewAuthBuilder().WithEmail("TEST@Example.com").BuildSignupDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, reqBody, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "test@example.com", password: authtest.DefaultPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nonexistent@example.com", password: authtest.DefaultPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "test@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "inactive user", email: "inactive@example.com", password: authtest.DefaultPassword, expectedStatus: http.StatusUnauthorized},
		{name: "empty email", email: "", password: authtest.DefaultPassword, expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "test@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var loginRes resdto.LoginResponse
				httptest.DecodeResponseBody(t, w.Body, &loginRes)
				require.NotEmpty(t, loginRes.AccessToken)
				require.Equal(t, tt.email, loginRes.User.Email)
				require.NotNil(t, httptest.ExtractCookie(w, cookie.RefreshTokenCookieName))

				var lastLogin *string
				err := s.DB.QueryRow(t.Context(), "SELECT last_login::text FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login was not updated")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	login := func() []*http.Cookie {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "test@example.com", Password: authtest.DefaultPassword}, "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
		return httptest.ExtractCookies(w)
	}

	s.Run("refresh cookie rotates the pair", func() {
		t := s.T()
		cookies := login()

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, cookies, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res resdto.RefreshResponse
		httptest.DecodeResponseBody(t, w.Body, &res)
		require.NotEmpty(t, res.AccessToken)

		me := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, res.AccessToken)
		require.Equal(t, http.StatusOK, me.Code)
	})

	s.Run("body token works without cookies", func() {
		t := s.T()
		var refresh string
		for _, c := range login() {
			if c.Name == cookie.RefreshTokenCookieName {
				refresh = c.Value
			}
		}
		require.NotEmpty(t, refresh)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, request.RefreshRequest{RefreshToken: refresh}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("access token is not accepted as refresh token", func() {
		t := s.T()
		access := authtest.LoginUser(t, s.Router, "test@example.com", authtest.DefaultPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, request.RefreshRequest{RefreshToken: access}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("invalid and missing tokens", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, request.RefreshRequest{RefreshToken: "invalid-refresh-token"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Refresh token required")
	})
}

func (s *authSuite) TestLogout() {
	tests := []struct {
		name           string
		setupToken     func() string
		expectedStatus int
	}{
		{
			name: "valid token",
			setupToken: func() string {
				return authtest.LoginUser(s.T(), s.Router, "test@example.com", authtest.DefaultPassword)
			},
			expectedStatus: http.StatusNoContent,
		},
		{name: "invalid token", setupToken: func() string { return "invalid-token" }, expectedStatus: http.StatusUnauthorized},
		{name: "no token", setupToken: func() string { return "" }, expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, tt.setupToken())
			require.Equal(s.T(), tt.expectedStatus, w.Code)
		})
	}
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		email          string
		role           user.Role
		token          string
		expectedStatus int
	}{
		{name: "donor", email: "donor2@example.com", role: user.RoleDonor, expectedStatus: http.StatusOK},
		{name: "claimant", email: "claimant@example.com", role: user.RoleClaimant, expectedStatus: http.StatusOK},
		{name: "invalid token", token: "invalid-token", expectedStatus: http.StatusUnauthorized},
		{name: "no token", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			token := tt.token
			if tt.email != "" {
				_, token = authtest.CreateAndLogin(t, s.DB, s.Router, tt.email, string(tt.role))
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				body := w.Body.String()
				require.Contains(t, body, tt.email)
				require.Contains(t, body, string(tt.role))
				require.NotContains(t, body, "password")
			}
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("expired token is rejected", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleBoth))
		expiredToken := s.jwtHelper.CreateExpiredToken(t, userID, user.RoleBoth)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("both sessions stay valid", func() {
		t := s.T()

		token1 := authtest.LoginUser(t, s.Router, "test@example.com", authtest.DefaultPassword)
		token2 := authtest.LoginUser(t, s.Router, "test@example.com", authtest.DefaultPassword)
		require.NotEqual(t, token1, token2)

		require.Equal(t, http.StatusOK, httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token1).Code)
		require.Equal(t, http.StatusOK, httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token2).Code)
	})
}
