// Package identity holds the id, password and escaping helpers shared by the
// auth and board flows. The password hash here is a checksum kept for
// compatibility with previously stored accounts, not a cryptographic hash.
package identity

import (
	"fmt"
	"html"
	"math/rand"
	"strconv"
	"time"
	"unicode/utf16"
)

const idSuffixLen = 9

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID returns a "<unix-millis>-<random base36 suffix>" identifier.
// Collisions are possible in principle, negligible at this scale.
func NewID() string {
	suffix := make([]byte, idSuffixLen)
	for i := range suffix {
		suffix[i] = base36Alphabet[rand.Intn(len(base36Alphabet))]
	}

	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}

// HashPassword computes the 32-bit rolling checksum stored alongside user
// records: h = h*31 + codeunit over UTF-16 code units, wrapped to signed
// 32 bits, absolute value, base-36 encoded. Stored hashes are only
// verifiable if this stays bit-identical, wraparound included.
func HashPassword(password string) string {
	var h int32
	for _, u := range utf16.Encode([]rune(password)) {
		h = h*31 + int32(u)
	}

	// abs in int64 so MinInt32 does not overflow
	v := int64(h)
	if v < 0 {
		v = -v
	}

	return strconv.FormatInt(v, 36)
}

// VerifyPassword reports whether password matches the stored checksum.
func VerifyPassword(password, hash string) bool {
	return HashPassword(password) == hash
}

// SanitizeHTML returns text with HTML metacharacters entity-escaped so it is
// inert when embedded in rendered markup.
func SanitizeHTML(text string) string {
	return html.EscapeString(text)
}
