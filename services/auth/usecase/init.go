package usecase

import (
	"github.com/staffloop/identity/internal/pkg/models"
	"github.com/staffloop/identity/services/auth"
)

// AuthUC implements the OTP session machine over the session and user
// stores, the notifier and the secret hasher.
type AuthUC struct {
	sessionRepo auth.SessionRepo
	userRepo    auth.UserRepo
	notifier    auth.Notifier
	hasher      auth.SecretHasher
	cfg         *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	sessionRepo auth.SessionRepo,
	userRepo auth.UserRepo,
	notifier auth.Notifier,
	hasher auth.SecretHasher,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		hasher:      hasher,
		cfg:         cfg,
	}
}
