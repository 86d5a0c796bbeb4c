package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
)

const sessionCookieName = "emlak_admin_session"
const minSecretLen = 32

// ErrSessionExpired is returned for tokens whose embedded expiry has passed.
var ErrSessionExpired = errors.New("session expired")

// CreateSessionToken builds a signed session token for an admin account id,
// valid for ttl. Format: base64url(adminID|expiryUnix) + "." + hex(HMAC-SHA256).
// The expiry is inside the signed payload, so a client cannot extend it.
func CreateSessionToken(adminID string, secret []byte, ttl time.Duration) string {
	payload := adminID + "|" + strconv.FormatInt(time.Now().Add(ttl).Unix(), 10)
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	sig := hex.EncodeToString(mac.Sum(nil))
	return base64.URLEncoding.EncodeToString([]byte(payload)) + "." + sig
}

// VerifySessionToken checks the token signature and expiry and returns the
// admin id.
func VerifySessionToken(token string, secret []byte) (string, error) {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return "", errors.New("invalid token format")
	}
	payload, err := base64.URLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return "", errors.New("invalid signature")
	}

	idx := strings.LastIndex(string(payload), "|")
	if idx < 0 {
		return "", errors.New("invalid token payload")
	}
	adminID, expStr := string(payload[:idx]), string(payload[idx+1:])
	exp, err := strconv.ParseInt(expStr, 10, 64)
	if err != nil {
		return "", errors.New("invalid token payload")
	}
	if time.Now().Unix() >= exp {
		return "", ErrSessionExpired
	}
	return adminID, nil
}

// SessionCookieName returns the admin session cookie name.
func SessionCookieName() string {
	return sessionCookieName
}

// SessionSecretBytes derives the signing key from the configured secret,
// zero-padding to a 32-byte minimum.
func SessionSecretBytes(s string) []byte {
	b := []byte(s)
	if len(b) < minSecretLen {
		out := make([]byte, minSecretLen)
		copy(out, b)
		return out
	}
	return b
}
