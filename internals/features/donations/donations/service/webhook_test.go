package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signedBody(t *testing.T, orderID, statusCode, grossAmount, serverKey string) map[string]interface{} {
	t.Helper()
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return map[string]interface{}{
		"order_id":      orderID,
		"status_code":   statusCode,
		"gross_amount":  grossAmount,
		"signature_key": hex.EncodeToString(sum[:]),
	}
}

func TestVerifySignature(t *testing.T) {
	t.Setenv("MIDTRANS_SERVER_KEY", "sk-test")

	body := signedBody(t, "don-abc", "200", "150000.00", "sk-test")
	assert.True(t, verifySignature(body))

	// wrong server key
	assert.False(t, verifySignature(signedBody(t, "don-abc", "200", "150000.00", "sk-other")))

	// tampered amount
	tampered := signedBody(t, "don-abc", "200", "150000.00", "sk-test")
	tampered["gross_amount"] = "999999.00"
	assert.False(t, verifySignature(tampered))

	// missing signature
	assert.False(t, verifySignature(map[string]interface{}{"order_id": "don-abc"}))
}

func TestVerifySignature_NoServerKeyConfigured(t *testing.T) {
	t.Setenv("MIDTRANS_SERVER_KEY", "")
	assert.False(t, verifySignature(signedBody(t, "don-abc", "200", "1.00", "")))
}
