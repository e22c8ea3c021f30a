package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unilab/labdash/internal/modules/session/domain"
	"golang.org/x/crypto/bcrypt"
)

func newService(t *testing.T, password string) *SessionService {
	t.Helper()
	hash := ""
	if password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.NoError(t, err)
		hash = string(h)
	}
	return NewSessionService(Config{
		AdminUser:         "encargado",
		AdminPasswordHash: hash,
		Secret:            "secret",
		Expiry:            time.Hour,
	}, nil)
}

func TestLogin_Success(t *testing.T) {
	svc := newService(t, "laboratorio123")
	fixed := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	resp, err := svc.Login(context.Background(), LoginRequest{Usuario: "encargado", Password: "laboratorio123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, fixed.Add(time.Hour), resp.ExpiresAt)
	assert.Equal(t, domain.NewOperator("encargado"), resp.Operator)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Operator.ID, claims.OperatorID)
	assert.Equal(t, "encargado", claims.Username)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := newService(t, "laboratorio123")

	_, err := svc.Login(context.Background(), LoginRequest{Usuario: "encargado", Password: "nope"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), LoginRequest{Usuario: "otro", Password: "laboratorio123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_Disabled(t *testing.T) {
	svc := newService(t, "")

	_, err := svc.Login(context.Background(), LoginRequest{Usuario: "encargado", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrLoginDisabled)
}
