package verification

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"
)

const codeLength = 6

// DefaultTTL is how long a sent code stays valid.
const DefaultTTL = 5 * time.Minute

// DefaultVerificationService issues and checks phone verification codes.
type DefaultVerificationService struct {
	Store  CodeStore
	Sender SMSSender
	TTL    time.Duration
}

// generateCode returns a secure random numeric code of the given length.
func generateCode(length int) (string, error) {
	const digits = "0123456789"
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = digits[int(b)%len(digits)]
	}
	return string(buf), nil
}

func codeKey(phone string) string {
	return fmt.Sprintf("otp:%s", phone)
}

// SendCode generates a code, stores it under the phone number with a TTL
// and delivers it through the configured sender.
func (s *DefaultVerificationService) SendCode(ctx context.Context, phone string) error {
	code, err := generateCode(codeLength)
	if err != nil {
		return err
	}

	ttl := s.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	if err := s.Store.Set(ctx, codeKey(phone), code, ttl); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	message := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, int(ttl.Minutes()))
	if err := s.Sender.Send(ctx, phone, message); err != nil {
		return fmt.Errorf("failed to send verification code: %w", err)
	}
	return nil
}

// VerifyCode compares the supplied code against the stored one and
// deletes it on success, so a code can be used only once.
func (s *DefaultVerificationService) VerifyCode(ctx context.Context, phone, code string) error {
	stored, err := s.Store.Get(ctx, codeKey(phone))
	if err != nil {
		return err
	}
	if stored != code {
		return ErrCodeMismatch
	}
	return s.Store.Del(ctx, codeKey(phone))
}
