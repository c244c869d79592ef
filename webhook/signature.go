package webhook

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
)

// SignatureHeader carries the signature Trello computes for each callback.
const SignatureHeader = "X-Trello-Webhook"

// Sign returns the base64 HMAC-SHA1 of body followed by callbackURL, keyed
// with the application secret.
func Sign(secret string, body []byte, callbackURL string) string {
	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write(body)
	mac.Write([]byte(callbackURL))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature matches body for callbackURL.
func Verify(secret string, body []byte, callbackURL, signature string) bool {
	expected := Sign(secret, body, callbackURL)
	return hmac.Equal([]byte(expected), []byte(signature))
}
