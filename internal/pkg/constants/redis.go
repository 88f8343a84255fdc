package constants

// Redis key formats
const (
	KeyOtpSession = "otp:session:%s" // Format: otp:session:{session_id}
)
