package fingerprint_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/fingerprint"
)

func newRequest(ip, userAgent string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = ip + ":12345"
	if userAgent != "" {
		r.Header.Set("User-Agent", userAgent)
	}
	return r
}

func TestGenerate_Format(t *testing.T) {
	t.Parallel()

	fp := fingerprint.Generate(newRequest("192.0.2.1", "Mozilla/5.0"))

	assert.True(t, strings.HasPrefix(fp, "v1:"))
	assert.Len(t, fp, 35)
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	a := fingerprint.Generate(newRequest("192.0.2.1", "Mozilla/5.0"))
	b := fingerprint.Generate(newRequest("192.0.2.1", "Mozilla/5.0"))

	assert.Equal(t, a, b)
}

func TestGenerate_DiffersByIP(t *testing.T) {
	t.Parallel()

	a := fingerprint.Generate(newRequest("192.0.2.1", "Mozilla/5.0"))
	b := fingerprint.Generate(newRequest("192.0.2.2", "Mozilla/5.0"))

	assert.NotEqual(t, a, b)
}

func TestGenerate_UserAgentIgnoredByDefault(t *testing.T) {
	t.Parallel()

	a := fingerprint.Generate(newRequest("192.0.2.1", "Mozilla/5.0"))
	b := fingerprint.Generate(newRequest("192.0.2.1", "curl/8.0"))

	assert.Equal(t, a, b)
}

func TestGenerate_WithUserAgent(t *testing.T) {
	t.Parallel()

	a := fingerprint.Generate(newRequest("192.0.2.1", "Mozilla/5.0"), fingerprint.WithUserAgent())
	b := fingerprint.Generate(newRequest("192.0.2.1", "curl/8.0"), fingerprint.WithUserAgent())

	assert.NotEqual(t, a, b)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("match", func(t *testing.T) {
		t.Parallel()

		stored := fingerprint.Generate(newRequest("192.0.2.1", ""))
		require.NoError(t, fingerprint.Validate(newRequest("192.0.2.1", ""), stored))
	})

	t.Run("mismatch on changed origin", func(t *testing.T) {
		t.Parallel()

		stored := fingerprint.Generate(newRequest("192.0.2.1", ""))
		err := fingerprint.Validate(newRequest("198.51.100.7", ""), stored)
		assert.ErrorIs(t, err, fingerprint.ErrMismatch)
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()

		tests := []string{"", "v1:short", "v2:" + strings.Repeat("a", 32), strings.Repeat("a", 35)}
		for _, stored := range tests {
			err := fingerprint.Validate(newRequest("192.0.2.1", ""), stored)
			assert.ErrorIs(t, err, fingerprint.ErrInvalidFingerprint, "stored=%q", stored)
		}
	})
}
