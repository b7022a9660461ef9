package webhook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_test_secret"

var testPayload = []byte(`{
	"id": "evt_1",
	"type": "checkout.session.completed",
	"created": 1710000000,
	"data": {"object": {"id": "cs_test_1", "payment_intent": "pi_1"}}
}`)

func TestConstructEvent_ValidSignature(t *testing.T) {
	now := time.Now().Unix()
	header := SignatureHeader(testPayload, testSecret, now)

	event, err := ConstructEvent(testPayload, header, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, "checkout.session.completed", event.Type)
	assert.Contains(t, string(event.Data.Raw), "cs_test_1")
}

func TestConstructEvent_WrongSecret(t *testing.T) {
	header := SignatureHeader(testPayload, "whsec_other", time.Now().Unix())

	_, err := ConstructEvent(testPayload, header, testSecret)
	require.ErrorIs(t, err, ErrNoValidSignature)
}

func TestConstructEvent_TamperedPayload(t *testing.T) {
	header := SignatureHeader(testPayload, testSecret, time.Now().Unix())
	tampered := append([]byte(nil), testPayload...)
	tampered[len(tampered)-2] = ' '

	_, err := ConstructEvent(tampered, header, testSecret)
	require.ErrorIs(t, err, ErrNoValidSignature)
}

func TestConstructEvent_OldTimestamp(t *testing.T) {
	stale := time.Now().Add(-time.Hour).Unix()
	header := SignatureHeader(testPayload, testSecret, stale)

	_, err := ConstructEvent(testPayload, header, testSecret)
	require.ErrorIs(t, err, ErrTimestampTooOld)
}

func TestConstructEventWithTolerance_AllowsOlder(t *testing.T) {
	stale := time.Now().Add(-time.Hour).Unix()
	header := SignatureHeader(testPayload, testSecret, stale)

	_, err := ConstructEventWithTolerance(testPayload, header, testSecret, 2*time.Hour)
	require.NoError(t, err)
}

func TestConstructEvent_MalformedHeaders(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"empty", ""},
		{"missing signature", "t=1710000000"},
		{"missing timestamp", "v1=deadbeef"},
		{"garbage timestamp", "t=abc,v1=deadbeef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConstructEvent(testPayload, tt.header, testSecret)
			assert.ErrorIs(t, err, ErrInvalidHeader)
		})
	}
}

func TestConstructEvent_MultipleSignatures(t *testing.T) {
	now := time.Now().Unix()
	good := SignatureHeader(testPayload, testSecret, now)
	// A rotated-secret header carries several v1 entries; one valid
	// signature is enough.
	header := good + ",v1=0000000000000000000000000000000000000000000000000000000000000000"

	_, err := ConstructEvent(testPayload, header, testSecret)
	require.NoError(t, err)
}
