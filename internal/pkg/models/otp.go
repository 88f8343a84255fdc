package models

import (
	"time"
)

// OtpFlow identifies which authentication flow an OTP session drives.
type OtpFlow string

const (
	FlowRegister OtpFlow = "register"
	FlowLogin    OtpFlow = "login"
)

// OtpChannel identifies the delivery channel of a one-time code.
type OtpChannel string

const (
	ChannelEmail  OtpChannel = "email"
	ChannelMobile OtpChannel = "mobile"
)

// VerifyState tracks which channels of a session have been confirmed.
// It is a single tagged value rather than two booleans so that no
// unreachable combination can be represented.
type VerifyState string

const (
	VerifyNone   VerifyState = "none"
	VerifyEmail  VerifyState = "email"
	VerifyMobile VerifyState = "mobile"
	VerifyBoth   VerifyState = "both"
)

// SessionStatus is the externally visible state of an OTP session.
type SessionStatus string

const (
	StatusStarted           SessionStatus = "started"
	StatusPartiallyVerified SessionStatus = "partially_verified"
	StatusVerified          SessionStatus = "verified"
)

// RegisterDraft holds candidate profile fields staged during a REGISTER
// flow. The password is pre-hashed before it ever enters the draft; the
// draft is only written to the user store after both channels verify.
type RegisterDraft struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	DateOfBirth  string `json:"date_of_birth,omitempty"`
	Email        string `json:"email"`
	Mobile       string `json:"mobile"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	PasswordHash string `json:"password_hash"`
}

// OtpSession is an in-flight dual-channel OTP session. Codes are stored
// as salted hashes, never in comparable plaintext. Version is the
// optimistic concurrency token guarding read-modify-write cycles.
type OtpSession struct {
	ID             string         `json:"id"`
	Flow           OtpFlow        `json:"flow"`
	Register       *RegisterDraft `json:"register,omitempty"`
	UserID         string         `json:"user_id,omitempty"`
	EmailCodeHash  string         `json:"email_code_hash"`
	MobileCodeHash string         `json:"mobile_code_hash"`
	Verified       VerifyState    `json:"verified"`
	Version        int64          `json:"version"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	ExpiresAt      time.Time      `json:"expires_at"`
}

// Expired reports whether the session is logically dead at the given instant.
func (s *OtpSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// FullyVerified reports whether both channel codes have been confirmed.
func (s *OtpSession) FullyVerified() bool {
	return s.Verified == VerifyBoth
}

// ChannelVerified reports whether the given channel has been confirmed.
func (s *OtpSession) ChannelVerified(ch OtpChannel) bool {
	switch ch {
	case ChannelEmail:
		return s.Verified == VerifyEmail || s.Verified == VerifyBoth
	case ChannelMobile:
		return s.Verified == VerifyMobile || s.Verified == VerifyBoth
	}
	return false
}

// MarkVerified advances the verify state for the given channel.
func (s *OtpSession) MarkVerified(ch OtpChannel) {
	switch ch {
	case ChannelEmail:
		if s.Verified == VerifyMobile {
			s.Verified = VerifyBoth
		} else if s.Verified == VerifyNone {
			s.Verified = VerifyEmail
		}
	case ChannelMobile:
		if s.Verified == VerifyEmail {
			s.Verified = VerifyBoth
		} else if s.Verified == VerifyNone {
			s.Verified = VerifyMobile
		}
	}
}

// Status derives the externally visible session status.
func (s *OtpSession) Status() SessionStatus {
	switch s.Verified {
	case VerifyBoth:
		return StatusVerified
	case VerifyEmail, VerifyMobile:
		return StatusPartiallyVerified
	}
	return StatusStarted
}

// NotificationEvent is the delivery job handed to the outbound
// notification workers over NSQ.
type NotificationEvent struct {
	Channel     OtpChannel `json:"channel"`
	Destination string     `json:"destination"`
	Code        string     `json:"code"`
	IssuedAt    time.Time  `json:"issued_at"`
}

// RegisterRequest is the payload to start a REGISTER session.
type RegisterRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	Email       string `json:"email" validate:"required"`
	Mobile      string `json:"mobile" validate:"required"`
	AvatarURL   string `json:"avatar_url"`
	Password    string `json:"password" validate:"required"`
}

// LoginRequest is the payload to start a LOGIN (step-up) session.
type LoginRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// SubmitCodeRequest is the payload to verify one channel code.
type SubmitCodeRequest struct {
	SessionID string     `json:"session_id" validate:"required"`
	Channel   OtpChannel `json:"channel" validate:"required"`
	Code      string     `json:"code" validate:"required"`
}

// ConsumeRequest is the payload to consume a fully verified session.
type ConsumeRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

// StartResponse is returned when an OTP session has been opened.
type StartResponse struct {
	SessionID string    `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SubmitCodeResponse reports the session status after a code submission.
type SubmitCodeResponse struct {
	SessionID string        `json:"session_id"`
	Status    SessionStatus `json:"status"`
}

// AuthResponse is returned after a LOGIN session has been consumed.
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	RoleID    string `json:"role_id,omitempty"`
	ExpiresAt int64  `json:"expires_at"`
}

// ConsumeOutcome is the terminal result of consuming a session: a newly
// created user for REGISTER, an issued token for LOGIN.
type ConsumeOutcome struct {
	Flow OtpFlow       `json:"flow"`
	User *User         `json:"user,omitempty"`
	Auth *AuthResponse `json:"auth,omitempty"`
}
