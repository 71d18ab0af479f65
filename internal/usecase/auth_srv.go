package usecase

import (
	"fmt"

	"goldentouch-booking/pkg/security"
	"goldentouch-booking/pkg/utils"

	"go.uber.org/zap"
)

const adminPrincipal = "admin"

type AuthService interface {
	Login(addr, password string) (string, error)
	Logout(token string)
	ValidateSession(token string) bool
}

type authService struct {
	guard        *security.Guard
	sessions     *security.SessionStore
	passwordHash string
	log          *zap.Logger
}

func NewAuthService(
	guard *security.Guard,
	sessions *security.SessionStore,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	// The shared admin secret is hashed once at startup so the comparison
	// path never touches the plaintext config value.
	hash, err := utils.HashPassword(config.Admin.Password)
	if err != nil {
		log.Fatal("Failed to hash admin password", zap.Error(err))
	}

	return &authService{
		guard:        guard,
		sessions:     sessions,
		passwordHash: hash,
		log:          log.With(zap.String("service", "auth")),
	}
}

// Login validates the shared admin secret and records the attempt against
// the caller's address. A blocked address fails before the password is
// even looked at, correct or not.
func (s *authService) Login(addr, password string) (string, error) {
	if s.guard.IsBlocked(addr) {
		s.log.Warn("Login attempt from blocked address", zap.String("addr", addr))
		return "", fmt.Errorf("too many failed attempts, try again later")
	}

	success := utils.CheckPasswordHash(password, s.passwordHash)

	if !s.guard.RecordLoginAttempt(addr, success) {
		return "", fmt.Errorf("too many failed attempts, try again later")
	}

	if !success {
		s.log.Warn("Invalid admin password", zap.String("addr", addr))
		return "", fmt.Errorf("invalid password")
	}

	token, err := s.sessions.Create(adminPrincipal)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err))
		return "", fmt.Errorf("failed to create session")
	}

	s.log.Info("Admin logged in", zap.String("addr", addr))
	return token, nil
}

// Logout is idempotent: invalidating an unknown token succeeds.
func (s *authService) Logout(token string) {
	s.sessions.Invalidate(token)
	s.log.Info("Admin logged out")
}

func (s *authService) ValidateSession(token string) bool {
	return s.sessions.Validate(token)
}
