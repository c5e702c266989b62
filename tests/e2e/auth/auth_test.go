//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"cashdrawer-api/tests/common/authtest"
	"cashdrawer-api/tests/common/dbtest"
	"cashdrawer-api/tests/common/httptest"
	"cashdrawer-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const drawersURL = "/api/cash-drawers"

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) TestRequireAuth() {
	s.Run("bearer token is accepted", func() {
		t := s.T()
		tenant := dbtest.SeedTenant(t, s.DB, "Bearer Cafe")
		token := s.jwt.GenerateToken(t, tenant.CollaboratorID, tenant.MerchantID, "manager")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, drawersURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("access token cookie is accepted", func() {
		t := s.T()
		tenant := dbtest.SeedTenant(t, s.DB, "Cookie Cafe")
		token := s.jwt.GenerateToken(t, tenant.CollaboratorID, tenant.MerchantID, "manager")

		cookies := []*http.Cookie{{Name: "access_token", Value: token}}
		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, drawersURL, nil, cookies, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	tests := []struct {
		name    string
		token   func(tenant dbtest.Tenant) string
		message string
	}{
		{
			name:    "missing token",
			token:   func(dbtest.Tenant) string { return "" },
			message: "Access token required",
		},
		{
			name: "expired token",
			token: func(tenant dbtest.Tenant) string {
				return s.jwt.CreateExpiredToken(s.T(), tenant.CollaboratorID, tenant.MerchantID, "manager")
			},
			message: "Invalid or expired token",
		},
		{
			name: "token signed with another secret",
			token: func(tenant dbtest.Tenant) string {
				cfg := s.Config.JWT
				cfg.Secret = "not-the-server-secret"
				return authtest.NewJWTHelper(cfg).GenerateToken(s.T(), tenant.CollaboratorID, tenant.MerchantID, "manager")
			},
			message: "Invalid or expired token",
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			tenant := dbtest.SeedTenant(t, s.DB, "Locked Cafe")

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, drawersURL, nil, tt.token(tenant))
			httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, tt.message)
		})
	}
}

func (s *authSuite) TestHealth() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/health", nil, "")
	require.Equal(s.T(), http.StatusOK, w.Code)
	httptest.AssertHeaderSet(s.T(), w, "X-Request-ID")
}
