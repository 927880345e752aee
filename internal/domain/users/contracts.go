package users

import "context"

// AuthService defines the OTP login flow.
type AuthService interface {
	// Login issues a one-time code for the phone number and dispatches it
	// through the configured SMS channel. The returned code is non-empty
	// only when OTP exposure is enabled for development setups.
	Login(ctx context.Context, name, phone string) (string, error)

	// Verify redeems a one-time code, upserting the user record and minting
	// a session on success.
	Verify(ctx context.Context, phone, code string) (*Session, error)
}

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// GetByPhone retrieves a user by phone number
	GetByPhone(ctx context.Context, phone string) (*User, error)
	// Upsert creates the user if missing, otherwise refreshes name and last login
	Upsert(ctx context.Context, user *User) (*User, error)
}

// SmsSender dispatches one-time codes to phone numbers.
type SmsSender interface {
	Send(ctx context.Context, phone, message string) error
}

// OtpStore holds pending login challenges until redeemed or expired.
type OtpStore interface {
	// Put stores the challenge, replacing any pending one for the phone.
	Put(challenge *LoginChallenge)
	// Take removes and returns the pending challenge for the phone.
	Take(phone string) (*LoginChallenge, bool)
}
