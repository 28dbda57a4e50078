package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// PaymentSignature is hex(HMAC-SHA256(secret, orderID + "|" + paymentID)),
// the value Razorpay's checkout hands back to the browser.
func PaymentSignature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func VerifyPaymentSignature(orderID, paymentID, signature, secret string) bool {
	if secret == "" || signature == "" {
		return false
	}
	expected := PaymentSignature(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
