package auth

import (
	"context"

	"github.com/staffloop/identity/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/staffloop/identity/services/auth Notifier,SecretHasher

// Notifier delivers a short numeric code over a single channel.
type Notifier interface {
	Send(ctx context.Context, channel models.OtpChannel, destination, code string) error
}

// SecretHasher is the one-way hashing capability used for passwords and
// OTP codes.
type SecretHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hashed string) bool
}
