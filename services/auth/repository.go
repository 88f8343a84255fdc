package auth

import (
	"context"
	"errors"

	"github.com/staffloop/identity/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/staffloop/identity/services/auth SessionRepo,UserRepo

// ErrVersionConflict is returned by SessionRepo.UpdateSession when the
// session changed since it was read. Callers re-read and retry.
var ErrVersionConflict = errors.New("session version conflict")

// SessionRepo is the durable store of in-flight OTP sessions. Reads
// must treat expired-but-present sessions as absent; updates are
// conditional on the session version.
type SessionRepo interface {
	CreateSession(ctx context.Context, session *models.OtpSession) error
	GetSession(ctx context.Context, id string) (*models.OtpSession, error)
	UpdateSession(ctx context.Context, session *models.OtpSession) error

	// ClaimSession atomically removes and returns a fully verified
	// session so that at most one caller ever consumes it.
	ClaimSession(ctx context.Context, id string) (*models.OtpSession, error)
}

// UserRepo is the durable user store. A uniqueness constraint over
// email and mobile is the final arbiter against duplicate accounts.
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	ActiveAccountExists(ctx context.Context, email, mobile string) (bool, error)
}
