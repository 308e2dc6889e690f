package id

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"strings"
)

var (
	reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)
	reUUID  = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-[1-5][a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}$`)
)

// New returns 128 random bits as 32 lowercase hex characters. Issued tokens
// carry it as their jti.
func New() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// IsHex32 reports whether s has the shape New produces.
func IsHex32(s string) bool { return reHex32.MatchString(s) }

// IsClientKey accepts the client-generated key formats: 32 lowercase hex
// or a lowercase RFC 4122 UUID (versions 1-5).
func IsClientKey(s string) bool {
	s = strings.TrimSpace(s)
	return reHex32.MatchString(s) || reUUID.MatchString(s)
}
