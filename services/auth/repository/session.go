package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/staffloop/identity/internal/pkg/apperr"
	"github.com/staffloop/identity/internal/pkg/constants"
	"github.com/staffloop/identity/internal/pkg/models"
	"github.com/staffloop/identity/services/auth"
)

// claimRetries bounds WATCH retries when a claim races another writer.
const claimRetries = 3

func sessionKey(id string) string {
	return fmt.Sprintf(constants.KeyOtpSession, id)
}

// CreateSession persists a new OTP session. The Redis TTL doubles as
// the garbage collector for abandoned sessions; correctness never
// depends on it because every read re-checks ExpiresAt.
func (r *AuthRepo) CreateSession(ctx context.Context, session *models.OtpSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return apperr.Wrap(apperr.CodeStorage, "failed to store session", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return apperr.New(apperr.CodeStorage, "session already expired")
	}

	ok, err := r.redisClient.Client.SetNX(ctx, sessionKey(session.ID), payload, ttl).Result()
	if err != nil {
		return apperr.Wrap(apperr.CodeStorage, "failed to store session", err)
	}
	if !ok {
		return apperr.New(apperr.CodeStorage, "session id already in use")
	}

	return nil
}

// GetSession fetches a session by id. Expired-but-present sessions are
// reported as not found.
func (r *AuthRepo) GetSession(ctx context.Context, id string) (*models.OtpSession, error) {
	val, err := r.redisClient.Client.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, apperr.New(apperr.CodeNotFound, "session not found or expired")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeStorage, "failed to load session", err)
	}

	var session models.OtpSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, apperr.Wrap(apperr.CodeStorage, "failed to decode session", err)
	}

	if session.Expired(time.Now()) {
		r.redisClient.Client.Del(ctx, sessionKey(id))
		return nil, apperr.New(apperr.CodeNotFound, "session not found or expired")
	}

	return &session, nil
}

// UpdateSession writes a session back conditionally on its version.
// Losing the race returns auth.ErrVersionConflict so the caller can
// re-read and retry.
func (r *AuthRepo) UpdateSession(ctx context.Context, session *models.OtpSession) error {
	key := sessionKey(session.ID)

	err := r.redisClient.Client.Watch(ctx, func(tx *redis.Tx) error {
		val, err := tx.Get(ctx, key).Result()
		if err == redis.Nil {
			return apperr.New(apperr.CodeNotFound, "session not found or expired")
		}
		if err != nil {
			return apperr.Wrap(apperr.CodeStorage, "failed to load session", err)
		}

		var current models.OtpSession
		if err := json.Unmarshal([]byte(val), &current); err != nil {
			return apperr.Wrap(apperr.CodeStorage, "failed to decode session", err)
		}
		if current.Expired(time.Now()) {
			return apperr.New(apperr.CodeNotFound, "session not found or expired")
		}
		if current.Version != session.Version {
			return auth.ErrVersionConflict
		}

		session.Version++
		session.UpdatedAt = time.Now()

		payload, err := json.Marshal(session)
		if err != nil {
			return apperr.Wrap(apperr.CodeStorage, "failed to store session", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, redis.KeepTTL)
			return nil
		})
		return err
	}, key)

	if err == redis.TxFailedErr {
		return auth.ErrVersionConflict
	}
	return err
}

// ClaimSession atomically removes and returns a fully verified session.
// Concurrent claims race on the WATCH: exactly one deletes the key, the
// rest observe it gone and report not found.
func (r *AuthRepo) ClaimSession(ctx context.Context, id string) (*models.OtpSession, error) {
	key := sessionKey(id)

	for attempt := 0; attempt < claimRetries; attempt++ {
		var claimed *models.OtpSession

		err := r.redisClient.Client.Watch(ctx, func(tx *redis.Tx) error {
			val, err := tx.Get(ctx, key).Result()
			if err == redis.Nil {
				return apperr.New(apperr.CodeNotFound, "session not found or expired")
			}
			if err != nil {
				return apperr.Wrap(apperr.CodeStorage, "failed to load session", err)
			}

			var session models.OtpSession
			if err := json.Unmarshal([]byte(val), &session); err != nil {
				return apperr.Wrap(apperr.CodeStorage, "failed to decode session", err)
			}
			if session.Expired(time.Now()) {
				return apperr.New(apperr.CodeNotFound, "session not found or expired")
			}
			if !session.FullyVerified() {
				return apperr.New(apperr.CodeNotReady, "session not fully verified")
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Del(ctx, key)
				return nil
			})
			if err != nil {
				return err
			}

			claimed = &session
			return nil
		}, key)

		if err == redis.TxFailedErr {
			continue
		}
		if err != nil {
			return nil, err
		}

		return claimed, nil
	}

	return nil, apperr.New(apperr.CodeNotFound, "session not found or expired")
}
