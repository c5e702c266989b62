//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"cashdrawer-api/internal/pkg/config"
	"cashdrawer-api/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// GenerateToken signs an access token for the collaborator. Pass uuid.Nil as
// merchantID to get a token without merchant context.
func (h *JWTHelper) GenerateToken(t *testing.T, collaboratorID, merchantID uuid.UUID, role string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(collaboratorID, merchantID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, collaboratorID, merchantID uuid.UUID, role string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(collaboratorID, merchantID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
