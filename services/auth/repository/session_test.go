package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffloop/identity/internal/pkg/apperr"
	"github.com/staffloop/identity/internal/pkg/database"
	"github.com/staffloop/identity/internal/pkg/models"
	"github.com/staffloop/identity/services/auth"
)

func setupSessionRepo(t *testing.T) (*AuthRepo, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	repo := NewAuthRepo(&models.Config{}, nil, &database.RedisClient{Client: client})
	return repo, mr
}

func newSession(verified models.VerifyState, ttl time.Duration) *models.OtpSession {
	now := time.Now()
	return &models.OtpSession{
		ID:             uuid.New().String(),
		Flow:           models.FlowRegister,
		Register:       &models.RegisterDraft{Email: "a@x.com", Mobile: "9990001111"},
		EmailCodeHash:  "email-hash",
		MobileCodeHash: "mobile-hash",
		Verified:       verified,
		CreatedAt:      now,
		UpdatedAt:      now,
		ExpiresAt:      now.Add(ttl),
	}
}

func TestCreateSession_RoundTrip(t *testing.T) {
	repo, mr := setupSessionRepo(t)
	ctx := context.Background()

	session := newSession(models.VerifyNone, 10*time.Minute)
	require.NoError(t, repo.CreateSession(ctx, session))

	// The key carries a TTL so abandoned sessions are collected.
	assert.Greater(t, mr.TTL(sessionKey(session.ID)), time.Duration(0))

	got, err := repo.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, models.FlowRegister, got.Flow)
	assert.Equal(t, "a@x.com", got.Register.Email)
	assert.Equal(t, models.VerifyNone, got.Verified)
}

func TestCreateSession_DuplicateID(t *testing.T) {
	repo, _ := setupSessionRepo(t)
	ctx := context.Background()

	session := newSession(models.VerifyNone, 10*time.Minute)
	require.NoError(t, repo.CreateSession(ctx, session))

	err := repo.CreateSession(ctx, session)
	assert.True(t, apperr.Is(err, apperr.CodeStorage))
}

func TestCreateSession_AlreadyExpired(t *testing.T) {
	repo, _ := setupSessionRepo(t)

	session := newSession(models.VerifyNone, -time.Minute)
	err := repo.CreateSession(context.Background(), session)
	assert.True(t, apperr.Is(err, apperr.CodeStorage))
}

func TestGetSession_Missing(t *testing.T) {
	repo, _ := setupSessionRepo(t)

	_, err := repo.GetSession(context.Background(), "nope")
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestGetSession_ExpiredButPresent(t *testing.T) {
	repo, mr := setupSessionRepo(t)
	ctx := context.Background()

	// Plant a row whose logical expiry has passed while the Redis TTL
	// has not fired yet.
	session := newSession(models.VerifyNone, -time.Minute)
	payload, err := json.Marshal(session)
	require.NoError(t, err)
	require.NoError(t, mr.Set(sessionKey(session.ID), string(payload)))

	_, err = repo.GetSession(ctx, session.ID)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
	assert.False(t, mr.Exists(sessionKey(session.ID)))
}

func TestUpdateSession_BumpsVersion(t *testing.T) {
	repo, _ := setupSessionRepo(t)
	ctx := context.Background()

	session := newSession(models.VerifyNone, 10*time.Minute)
	require.NoError(t, repo.CreateSession(ctx, session))

	session.MarkVerified(models.ChannelEmail)
	require.NoError(t, repo.UpdateSession(ctx, session))
	assert.Equal(t, int64(1), session.Version)

	got, err := repo.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VerifyEmail, got.Verified)
	assert.Equal(t, int64(1), got.Version)
}

func TestUpdateSession_StaleVersion(t *testing.T) {
	repo, _ := setupSessionRepo(t)
	ctx := context.Background()

	session := newSession(models.VerifyNone, 10*time.Minute)
	require.NoError(t, repo.CreateSession(ctx, session))

	// Writer A wins the first round.
	winner := *session
	winner.MarkVerified(models.ChannelEmail)
	require.NoError(t, repo.UpdateSession(ctx, &winner))

	// Writer B still holds version 0 and must lose.
	loser := *session
	loser.MarkVerified(models.ChannelMobile)
	err := repo.UpdateSession(ctx, &loser)
	assert.ErrorIs(t, err, auth.ErrVersionConflict)
}

func TestUpdateSession_Missing(t *testing.T) {
	repo, _ := setupSessionRepo(t)

	session := newSession(models.VerifyEmail, 10*time.Minute)
	err := repo.UpdateSession(context.Background(), session)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestClaimSession_ConsumesOnce(t *testing.T) {
	repo, mr := setupSessionRepo(t)
	ctx := context.Background()

	session := newSession(models.VerifyBoth, 10*time.Minute)
	require.NoError(t, repo.CreateSession(ctx, session))

	claimed, err := repo.ClaimSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, claimed.ID)
	assert.False(t, mr.Exists(sessionKey(session.ID)))

	// A second claim of the same session observes it gone.
	_, err = repo.ClaimSession(ctx, session.ID)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestClaimSession_NotFullyVerified(t *testing.T) {
	repo, mr := setupSessionRepo(t)
	ctx := context.Background()

	session := newSession(models.VerifyEmail, 10*time.Minute)
	require.NoError(t, repo.CreateSession(ctx, session))

	_, err := repo.ClaimSession(ctx, session.ID)
	assert.True(t, apperr.Is(err, apperr.CodeNotReady))

	// The refusal must not consume the session.
	assert.True(t, mr.Exists(sessionKey(session.ID)))
}

func TestClaimSession_Expired(t *testing.T) {
	repo, mr := setupSessionRepo(t)
	ctx := context.Background()

	session := newSession(models.VerifyBoth, -time.Minute)
	payload, err := json.Marshal(session)
	require.NoError(t, err)
	require.NoError(t, mr.Set(sessionKey(session.ID), string(payload)))

	_, err = repo.ClaimSession(ctx, session.ID)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}
