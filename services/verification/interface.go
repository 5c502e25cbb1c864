package verification

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var (
	// ErrCodeNotFound indicates no code is pending for the phone number,
	// or the code has expired.
	ErrCodeNotFound = errors.New("verification code not found or expired")
	// ErrCodeMismatch indicates the supplied code does not match.
	ErrCodeMismatch = errors.New("verification code does not match")
)

// VerificationService verifies phone numbers with short-lived codes.
type VerificationService interface {
	SendCode(ctx context.Context, phone string) error
	VerifyCode(ctx context.Context, phone, code string) error
}

// CodeStore persists pending codes with a TTL.
type CodeStore interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
}

// SMSSender delivers a message to a phone number.
type SMSSender interface {
	Send(ctx context.Context, phone, message string) error
}

// RedisCodeStore is the production CodeStore.
type RedisCodeStore struct {
	Client *redis.Client
}

func (s *RedisCodeStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.Client.Set(ctx, key, value, ttl).Err()
}

func (s *RedisCodeStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrCodeNotFound
	}
	return val, err
}

func (s *RedisCodeStore) Del(ctx context.Context, key string) error {
	return s.Client.Del(ctx, key).Err()
}

// LogSender is a stand-in SMS gateway that logs the outgoing message.
// Swap in a real gateway implementation for production delivery.
type LogSender struct {
	Logger *zap.Logger
}

func (l *LogSender) Send(ctx context.Context, phone, message string) error {
	l.Logger.Sugar().Infof("Sending SMS to %s: %s", phone, message)
	return nil
}
