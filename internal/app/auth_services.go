package app

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/domain/users"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/config"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/logger"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/session"
	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/validators"
)

// authService implements the AuthService interface for the OTP login flow
type authService struct {
	userRepo  users.UserRepository
	otpStore  users.OtpStore
	smsSender users.SmsSender
	sessions  *session.Manager
	otpTTL    time.Duration
	exposeOtp bool
	logger    logger.Logger
	now       func() time.Time
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(
	userRepo users.UserRepository,
	otpStore users.OtpStore,
	smsSender users.SmsSender,
	sessions *session.Manager,
	settings *config.AuthSettings,
	logger logger.Logger,
) (users.AuthService, error) {
	return &authService{
		userRepo:  userRepo,
		otpStore:  otpStore,
		smsSender: smsSender,
		sessions:  sessions,
		otpTTL:    time.Duration(settings.OtpTTLSeconds) * time.Second,
		exposeOtp: settings.ExposeOtp,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// Login issues a one-time code for the phone number and dispatches it via SMS.
func (s *authService) Login(ctx context.Context, name, phone string) (string, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return "", fmt.Errorf("name is required")
	}
	if !validators.ValidPhone(phone) {
		return "", fmt.Errorf("phone number %q is not valid", phone)
	}

	code, err := generateOtpCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate one-time code: %w", err)
	}

	s.otpStore.Put(&users.LoginChallenge{
		Phone:     phone,
		Name:      name,
		Code:      code,
		ExpiresAt: s.now().Add(s.otpTTL),
	})

	message := fmt.Sprintf("Your ClaimGuard verification code is %s. It expires in %d minutes.",
		code, int(s.otpTTL.Minutes()))
	if err := s.smsSender.Send(ctx, phone, message); err != nil {
		return "", fmt.Errorf("failed to send one-time code: %w", err)
	}

	s.logger.Info("Issued login challenge for phone ", phone)

	if s.exposeOtp {
		return code, nil
	}
	return "", nil
}

// Verify redeems a one-time code and mints a session for the user.
func (s *authService) Verify(ctx context.Context, phone, code string) (*users.Session, error) {
	phone = strings.TrimSpace(phone)
	code = strings.TrimSpace(code)

	challenge, ok := s.otpStore.Take(phone)
	if !ok {
		return nil, fmt.Errorf("no pending verification for this phone number")
	}
	if challenge.Expired(s.now()) {
		return nil, fmt.Errorf("verification code has expired")
	}
	if challenge.Code != code {
		return nil, fmt.Errorf("verification code is incorrect")
	}

	now := s.now()
	user, err := s.userRepo.Upsert(ctx, &users.User{
		ID:        uuid.New().String(),
		Name:      challenge.Name,
		Phone:     phone,
		CreatedAt: now,
		LastLogin: now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	token, expiresAt, err := s.sessions.Mint(user.ID, user.Name, user.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to mint session: %w", err)
	}

	s.logger.Info("Verified login for user ", user.ID)

	return &users.Session{
		Token:     token,
		UserID:    user.ID,
		Name:      user.Name,
		Phone:     user.Phone,
		ExpiresAt: expiresAt,
	}, nil
}

// generateOtpCode returns a 6-digit zero-padded code from crypto/rand.
func generateOtpCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// memoryOtpStore is a mutex-guarded in-process OtpStore.
type memoryOtpStore struct {
	mu         sync.Mutex
	challenges map[string]*users.LoginChallenge
}

// NewMemoryOtpStore creates an in-memory OtpStore
func NewMemoryOtpStore() users.OtpStore {
	return &memoryOtpStore{challenges: make(map[string]*users.LoginChallenge)}
}

func (s *memoryOtpStore) Put(challenge *users.LoginChallenge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[challenge.Phone] = challenge
}

func (s *memoryOtpStore) Take(phone string) (*users.LoginChallenge, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	challenge, ok := s.challenges[phone]
	if ok {
		delete(s.challenges, phone)
	}
	return challenge, ok
}

// logSmsSender writes codes to the application log instead of a real gateway.
type logSmsSender struct {
	logger logger.Logger
}

// NewLogSmsSender creates an SmsSender that logs messages locally
func NewLogSmsSender(logger logger.Logger) users.SmsSender {
	return &logSmsSender{logger: logger}
}

func (s *logSmsSender) Send(_ context.Context, phone, message string) error {
	s.logger.Info("SMS to ", phone, ": ", message)
	return nil
}
