//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"vinyl-record-house/internal/domain/user"
	"vinyl-record-house/internal/handler/dto/request"
	"vinyl-record-house/internal/handler/dto/response"
	"vinyl-record-house/tests/common/authtest"
	"vinyl-record-house/tests/common/dbtest"
	"vinyl-record-house/tests/common/httptest"
	"vinyl-record-house/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
	profileURL  = "/api/profile"
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

	dbtest.CreateTestUser(s.T(), s.DB, "customer@example.com", string(user.RoleCustomer))
	dbtest.CreateTestUser(s.T(), s.DB, "staff@example.com", string(user.RoleStaff))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleCustomer))

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestRegister() {
	tests := []struct {
		name           string
		body           request.RegisterRequest
		expectedStatus int
		expectedError  string
	}{
		{
			name: "new customer is registered and signed in",
			body: request.RegisterRequest{
				Email: "new@example.com", Password: "password123", FirstName: "Ada", LastName: "Wong",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "email already registered",
			body: request.RegisterRequest{
				Email: "customer@example.com", Password: "password123", FirstName: "Ada", LastName: "Wong",
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "Email already registered",
		},
		{
			name: "short password is rejected",
			body: request.RegisterRequest{
				Email: "short@example.com", Password: "short", FirstName: "Ada", LastName: "Wong",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request format",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, tt.body, "")
			if tt.expectedError != "" {
				httptest.AssertErrorResponse(t, w, tt.expectedStatus, tt.expectedError)
				return
			}

			var res response.LoginResponse
			httptest.AssertSuccessResponse(t, w, tt.expectedStatus, &res)
			require.NotEmpty(t, res.AccessToken)
			require.NotNil(t, res.User)
			require.Equal(t, tt.body.Email, res.User.Email)
			require.Equal(t, string(user.RoleCustomer), res.User.Role)
			require.NotNil(t, httptest.ExtractCookie(w, "access_token"))

			// the profile row is created together with the user
			pw := httptest.PerformRequest(t, s.Router, http.MethodGet, profileURL, nil, res.AccessToken)
			var profile response.ProfileResponse
			httptest.AssertSuccessResponse(t, pw, http.StatusOK, &profile)
			require.Equal(t, "Ada", profile.FirstName)
		})
	}
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "customer@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nobody@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "customer@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "inactive account", email: "inactive@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusForbidden},
		{name: "empty email", email: "", password: dbtest.TestPassword, expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "customer@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusOK {
				return
			}

			var loginRes response.LoginResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
			require.NotEmpty(t, loginRes.AccessToken)
			require.NotEmpty(t, loginRes.RefreshToken)

			var lastLogin any
			err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
			require.NoError(t, err)
			require.NotNil(t, lastLogin, "last_login was not updated")
		})
	}
}

func (s *authSuite) TestRefresh() {
	tests := []struct {
		name              string
		setupRefreshToken func() string
		expectedStatus    int
	}{
		{
			name: "valid refresh token",
			setupRefreshToken: func() string {
				reqBody := request.LoginRequest{Email: "customer@example.com", Password: dbtest.TestPassword}
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqBody, "")
				var loginRes response.LoginResponse
				require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &loginRes))
				return loginRes.RefreshToken
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:              "malformed refresh token",
			setupRefreshToken: func() string { return "invalid-refresh-token" },
			expectedStatus:    http.StatusUnauthorized,
		},
		{
			name:              "missing refresh token",
			setupRefreshToken: func() string { return "" },
			expectedStatus:    http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.RefreshRequest{RefreshToken: tt.setupRefreshToken()}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var refreshRes response.TokenResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &refreshRes))
				require.NotEmpty(t, refreshRes.AccessToken)
				require.NotEmpty(t, refreshRes.RefreshToken)
			}
		})
	}
}

func (s *authSuite) TestLogout() {
	tests := []struct {
		name           string
		setupToken     func() string
		expectedStatus int
	}{
		{
			name: "signed in user",
			setupToken: func() string {
				return authtest.LoginUser(s.T(), s.Router, "customer@example.com", dbtest.TestPassword)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "malformed token",
			setupToken:     func() string { return "invalid-token" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "no token",
			setupToken:     func() string { return "" },
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, tt.setupToken())
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
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
		{name: "customer", email: "me-customer@example.com", role: user.RoleCustomer, expectedStatus: http.StatusOK},
		{name: "staff", email: "me-staff@example.com", role: user.RoleStaff, expectedStatus: http.StatusOK},
		{name: "malformed token", token: "invalid-token", expectedStatus: http.StatusUnauthorized},
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
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var me response.UserResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &me))
				require.Equal(t, tt.email, me.Email)
				require.Equal(t, string(tt.role), me.Role)
				require.NotContains(t, w.Body.String(), "password")
			}
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("expired token is rejected", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleCustomer))
		expiredToken := s.jwtHelper.CreateExpiredToken(t, userID, user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("token for a deactivated user is rejected", func() {
		t := s.T()

		userID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "deactivated@example.com", string(user.RoleCustomer))
		_, err := s.DB.Exec(t.Context(), "UPDATE users SET is_active = false WHERE id = $1", userID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestAuthenticationRequired() {
	s.Run("protected endpoints reject anonymous calls", func() {
		t := s.T()

		endpoints := []struct {
			method string
			path   string
		}{
			{http.MethodPost, logoutURL},
			{http.MethodGet, meURL},
			{http.MethodGet, profileURL},
			{http.MethodPost, "/api/checkout"},
			{http.MethodGet, "/api/orders"},
			{http.MethodGet, "/api/wishlist"},
		}

		for _, endpoint := range endpoints {
			w := httptest.PerformRequest(t, s.Router, endpoint.method, endpoint.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", endpoint.method, endpoint.path)
		}
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("both sessions stay valid", func() {
		t := s.T()

		token1 := authtest.LoginUser(t, s.Router, "customer@example.com", dbtest.TestPassword)
		token2 := authtest.LoginUser(t, s.Router, "customer@example.com", dbtest.TestPassword)

		w1 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token1)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token2)

		require.Equal(t, http.StatusOK, w1.Code)
		require.Equal(t, http.StatusOK, w2.Code)
	})
}
