package auth

import (
	"context"

	"github.com/staffloop/identity/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/staffloop/identity/services/auth AuthUC

// AuthUC drives the dual-channel OTP session machine for registration
// and login.
type AuthUC interface {
	// StartRegister opens a REGISTER session: stages the profile draft,
	// dispatches one code per channel and persists the session.
	StartRegister(ctx context.Context, req *models.RegisterRequest) (*models.StartResponse, error)

	// StartLogin opens a LOGIN (step-up) session for an existing user.
	StartLogin(ctx context.Context, userID string) (*models.StartResponse, error)

	// SubmitCode verifies one channel code and reports the resulting
	// session status.
	SubmitCode(ctx context.Context, sessionID string, channel models.OtpChannel, code string) (models.SessionStatus, error)

	// Consume resolves a fully verified session exactly once: user
	// creation for REGISTER, token issuance for LOGIN.
	Consume(ctx context.Context, sessionID string) (*models.ConsumeOutcome, error)

	// GetUser looks up a durable user record.
	GetUser(ctx context.Context, id string) (*models.User, error)
}
