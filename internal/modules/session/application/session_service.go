package application

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"github.com/unilab/labdash/internal/modules/session/domain"
	"github.com/unilab/labdash/internal/modules/session/infrastructure/jwt"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Usuario  string `json:"usuario" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Operator  domain.Operator `json:"operator"`
}

type Config struct {
	AdminUser         string
	AdminPasswordHash string
	Secret            string
	Expiry            time.Duration
}

// SessionService checks the single operator account configured through the
// environment and issues session tokens.
type SessionService struct {
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

func NewSessionService(cfg Config, logger *slog.Logger) *SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.AdminPasswordHash == "" {
		logger.Warn("ADMIN_PASSWORD_HASH is empty, operator login is disabled")
	}
	return &SessionService{cfg: cfg, logger: logger, now: time.Now}
}

// Login authenticates the operator and returns a signed token.
func (s *SessionService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if s.cfg.AdminPasswordHash == "" {
		return nil, domain.ErrLoginDisabled
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Usuario), []byte(s.cfg.AdminUser)) == 1
	// compare the password even for an unknown user to keep timing flat
	passErr := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(req.Password))
	if !userOK || passErr != nil {
		s.logger.InfoContext(ctx, "operator login rejected", "usuario", req.Usuario)
		return nil, domain.ErrInvalidCredentials
	}

	op := domain.NewOperator(s.cfg.AdminUser)
	token, err := jwt.GenerateToken(s.cfg.Secret, s.cfg.Expiry, op.ID, op.Usuario, op.Role)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "operator logged in", "usuario", op.Usuario)
	return &LoginResponse{
		Token:     token,
		ExpiresAt: s.now().Add(s.cfg.Expiry).UTC(),
		Operator:  op,
	}, nil
}

// ValidateToken returns the claims of a token issued by Login.
func (s *SessionService) ValidateToken(tokenStr string) (*jwt.CustomClaims, error) {
	return jwt.ValidateToken(tokenStr, s.cfg.Secret)
}
