package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/staffloop/identity/internal/pkg/apperr"
	jwtpkg "github.com/staffloop/identity/internal/pkg/jwt"
	"github.com/staffloop/identity/internal/pkg/logger"
	"github.com/staffloop/identity/internal/pkg/models"
	"github.com/staffloop/identity/internal/utils"
	"github.com/staffloop/identity/services/auth"
)

// submitRetries bounds re-reads when a conditional session update loses
// a race.
const submitRetries = 3

// StartRegister opens a REGISTER session. Both notifier dispatches must
// succeed before anything is persisted, so a delivery failure leaves no
// orphaned session behind.
func (u *AuthUC) StartRegister(ctx context.Context, req *models.RegisterRequest) (*models.StartResponse, error) {
	email, err := utils.ValidateEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid register request: %w", err)
	}
	mobile, err := utils.ValidateMobile(req.Mobile)
	if err != nil {
		return nil, fmt.Errorf("invalid register request: %w", err)
	}

	exists, err := u.userRepo.ActiveAccountExists(ctx, email, mobile)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing accounts: %w", err)
	}
	if exists {
		return nil, apperr.New(apperr.CodeConflict, "email or mobile already registered")
	}

	passwordHash, err := u.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	draft := &models.RegisterDraft{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DateOfBirth:  req.DateOfBirth,
		Email:        email,
		Mobile:       mobile,
		AvatarURL:    req.AvatarURL,
		PasswordHash: passwordHash,
	}

	session, err := u.openSession(ctx, models.FlowRegister, draft, "", email, mobile)
	if err != nil {
		return nil, err
	}

	return &models.StartResponse{SessionID: session.ID, ExpiresAt: session.ExpiresAt}, nil
}

// StartLogin opens a LOGIN session for step-up re-authentication of an
// already-identified account.
func (u *AuthUC) StartLogin(ctx context.Context, userID string) (*models.StartResponse, error) {
	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperr.New(apperr.CodeNotFound, "user not found")
	}

	session, err := u.openSession(ctx, models.FlowLogin, nil, user.ID, user.Email, user.Mobile)
	if err != nil {
		return nil, err
	}

	return &models.StartResponse{SessionID: session.ID, ExpiresAt: session.ExpiresAt}, nil
}

// openSession generates both channel codes, dispatches them and only
// then persists the session.
func (u *AuthUC) openSession(ctx context.Context, flow models.OtpFlow, draft *models.RegisterDraft, userID, email, mobile string) (*models.OtpSession, error) {
	emailCode, err := utils.GenerateNumericCode(u.cfg.OTP.CodeLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate email code: %w", err)
	}
	mobileCode, err := utils.GenerateNumericCode(u.cfg.OTP.CodeLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate mobile code: %w", err)
	}

	if err := u.notifier.Send(ctx, models.ChannelEmail, email, emailCode); err != nil {
		return nil, apperr.Wrap(apperr.CodeNotifier, "code delivery failed", err)
	}
	if err := u.notifier.Send(ctx, models.ChannelMobile, mobile, mobileCode); err != nil {
		return nil, apperr.Wrap(apperr.CodeNotifier, "code delivery failed", err)
	}

	emailHash, err := u.hasher.Hash(emailCode)
	if err != nil {
		return nil, fmt.Errorf("failed to hash email code: %w", err)
	}
	mobileHash, err := u.hasher.Hash(mobileCode)
	if err != nil {
		return nil, fmt.Errorf("failed to hash mobile code: %w", err)
	}

	now := time.Now()
	session := &models.OtpSession{
		ID:             uuid.New().String(),
		Flow:           flow,
		Register:       draft,
		UserID:         userID,
		EmailCodeHash:  emailHash,
		MobileCodeHash: mobileHash,
		Verified:       models.VerifyNone,
		CreatedAt:      now,
		UpdatedAt:      now,
		ExpiresAt:      now.Add(time.Duration(u.cfg.OTP.TTLMinutes) * time.Minute),
	}

	if err := u.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	logger.Info("OTP session opened", logrus.Fields{
		"session_id": session.ID,
		"flow":       string(flow),
	})

	return session, nil
}

// SubmitCode verifies one channel code. The stored code hash is checked
// with the hasher's constant-time compare; a mismatch leaves the
// session untouched.
func (u *AuthUC) SubmitCode(ctx context.Context, sessionID string, channel models.OtpChannel, code string) (models.SessionStatus, error) {
	if channel != models.ChannelEmail && channel != models.ChannelMobile {
		return "", apperr.New(apperr.CodeInvalidCode, "invalid code")
	}

	for attempt := 0; attempt < submitRetries; attempt++ {
		session, err := u.sessionRepo.GetSession(ctx, sessionID)
		if err != nil {
			return "", err
		}

		var codeHash string
		if channel == models.ChannelEmail {
			codeHash = session.EmailCodeHash
		} else {
			codeHash = session.MobileCodeHash
		}

		if !u.hasher.Verify(code, codeHash) {
			return "", apperr.New(apperr.CodeInvalidCode, "invalid code")
		}

		if session.ChannelVerified(channel) {
			return session.Status(), nil
		}

		session.MarkVerified(channel)

		err = u.sessionRepo.UpdateSession(ctx, session)
		if errors.Is(err, auth.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to update session: %w", err)
		}

		return session.Status(), nil
	}

	return "", apperr.New(apperr.CodeStorage, "session update contention")
}

// Consume resolves a verified session exactly once. The session is
// atomically claimed before the terminal action runs, so a retry after
// success observes NotFound instead of acting twice.
func (u *AuthUC) Consume(ctx context.Context, sessionID string) (*models.ConsumeOutcome, error) {
	session, err := u.sessionRepo.ClaimSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch session.Flow {
	case models.FlowRegister:
		return u.consumeRegister(ctx, session)
	case models.FlowLogin:
		return u.consumeLogin(ctx, session)
	}

	return nil, apperr.New(apperr.CodeNotFound, "session not found or expired")
}

func (u *AuthUC) consumeRegister(ctx context.Context, session *models.OtpSession) (*models.ConsumeOutcome, error) {
	draft := session.Register
	if draft == nil {
		return nil, apperr.New(apperr.CodeNotFound, "session not found or expired")
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New().String(),
		FirstName:    draft.FirstName,
		LastName:     draft.LastName,
		DateOfBirth:  draft.DateOfBirth,
		Email:        draft.Email,
		Mobile:       draft.Mobile,
		AvatarURL:    draft.AvatarURL,
		PasswordHash: draft.PasswordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("user registered", logrus.Fields{
		"user_id":    user.ID,
		"session_id": session.ID,
	})

	return &models.ConsumeOutcome{Flow: models.FlowRegister, User: user}, nil
}

func (u *AuthUC) consumeLogin(ctx context.Context, session *models.OtpSession) (*models.ConsumeOutcome, error) {
	user, err := u.userRepo.GetUserByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("step-up login completed", logrus.Fields{
		"user_id":    user.ID,
		"session_id": session.ID,
	})

	return &models.ConsumeOutcome{
		Flow: models.FlowLogin,
		Auth: &models.AuthResponse{
			Token:     token,
			UserID:    user.ID,
			RoleID:    user.RoleID,
			ExpiresAt: expiresAt,
		},
	}, nil
}

// GetUser looks up a durable user record for the surrounding CRUD
// screens.
func (u *AuthUC) GetUser(ctx context.Context, id string) (*models.User, error) {
	return u.userRepo.GetUserByID(ctx, id)
}
