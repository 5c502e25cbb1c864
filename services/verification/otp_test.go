package verification

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapStore struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func newMapStore() *mapStore {
	return &mapStore{values: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (m *mapStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.values[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *mapStore) Get(ctx context.Context, key string) (string, error) {
	val, ok := m.values[key]
	if !ok {
		return "", ErrCodeNotFound
	}
	return val, nil
}

func (m *mapStore) Del(ctx context.Context, key string) error {
	delete(m.values, key)
	return nil
}

type recordingSender struct {
	phone   string
	message string
}

func (r *recordingSender) Send(ctx context.Context, phone, message string) error {
	r.phone = phone
	r.message = message
	return nil
}

func TestSendCodeStoresAndDelivers(t *testing.T) {
	store := newMapStore()
	sender := &recordingSender{}
	svc := &DefaultVerificationService{Store: store, Sender: sender, TTL: DefaultTTL}

	err := svc.SendCode(context.Background(), "+4915112345678")
	require.NoError(t, err)

	code, ok := store.values["otp:+4915112345678"]
	require.True(t, ok)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), code)
	assert.Equal(t, DefaultTTL, store.ttls["otp:+4915112345678"])

	assert.Equal(t, "+4915112345678", sender.phone)
	assert.Contains(t, sender.message, code)
}

func TestVerifyCodeConsumesCode(t *testing.T) {
	store := newMapStore()
	svc := &DefaultVerificationService{Store: store, Sender: &recordingSender{}}

	require.NoError(t, svc.SendCode(context.Background(), "+1555000"))
	code := store.values["otp:+1555000"]

	require.NoError(t, svc.VerifyCode(context.Background(), "+1555000", code))

	// A code is single-use.
	err := svc.VerifyCode(context.Background(), "+1555000", code)
	require.ErrorIs(t, err, ErrCodeNotFound)
}

func TestVerifyCodeMismatch(t *testing.T) {
	store := newMapStore()
	svc := &DefaultVerificationService{Store: store, Sender: &recordingSender{}}

	require.NoError(t, svc.SendCode(context.Background(), "+1555000"))

	err := svc.VerifyCode(context.Background(), "+1555000", "000000x")
	require.ErrorIs(t, err, ErrCodeMismatch)

	// The stored code survives a failed attempt.
	assert.Contains(t, store.values, "otp:+1555000")
}

func TestVerifyCodeUnknownPhone(t *testing.T) {
	svc := &DefaultVerificationService{Store: newMapStore(), Sender: &recordingSender{}}

	err := svc.VerifyCode(context.Background(), "+49000", "123456")
	require.ErrorIs(t, err, ErrCodeNotFound)
}
