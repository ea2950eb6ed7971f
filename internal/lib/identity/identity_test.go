package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDFormat(t *testing.T) {
	t.Parallel()

	id := NewID()

	parts := strings.SplitN(id, "-", 2)
	require.Len(t, parts, 2)
	assert.NotEmpty(t, parts[0])
	assert.Len(t, parts[1], 9)

	for _, c := range parts[1] {
		assert.Contains(t, base36Alphabet, string(c))
	}
}

func TestNewIDUniqueness(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestHashPasswordKnownValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		password string
		expected string
	}{
		{"", "0"},
		{"a", "2p"},
		{"ab", "2e9"},
		{"abc", "22ci"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.password, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, HashPassword(tc.password))
		})
	}
}

func TestHashPasswordDeterministic(t *testing.T) {
	t.Parallel()

	for _, p := range []string{"secret", "correct horse battery staple", "pässwörd", "日本語"} {
		assert.Equal(t, HashPassword(p), HashPassword(p))
	}
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	passwords := []string{"secret", "Secret", "secret ", "123456", "hunter2", ""}

	for _, p := range passwords {
		assert.True(t, VerifyPassword(p, HashPassword(p)), "round-trip failed for %q", p)
	}

	// distinct inputs from the sample must not cross-verify
	for i, p1 := range passwords {
		for j, p2 := range passwords {
			if i == j {
				continue
			}
			assert.False(t, VerifyPassword(p1, HashPassword(p2)), "%q verified against hash of %q", p1, p2)
		}
	}
}

func TestSanitizeHTML(t *testing.T) {
	t.Parallel()

	out := SanitizeHTML("<script>alert(1)</script>")

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")

	assert.Equal(t, "plain text", SanitizeHTML("plain text"))
}
