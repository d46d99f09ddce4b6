package otp_test

import (
	"regexp"
	"testing"

	"github.com/gvbank/teller/pkg/otp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssue(t *testing.T) {
	t.Parallel()

	sixDigits := regexp.MustCompile(`^\d{6}$`)
	for i := 0; i < 50; i++ {
		c, err := otp.Issue(1001)
		require.NoError(t, err)
		assert.Regexp(t, sixDigits, c.Code())
		assert.Equal(t, int64(1001), c.Account)
		assert.False(t, c.IssuedAt.IsZero())
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	t.Run("exact match verifies", func(t *testing.T) {
		c, err := otp.Issue(1001)
		require.NoError(t, err)
		assert.Equal(t, otp.Verified, c.Check(c.Code()))
	})

	t.Run("mismatch denies", func(t *testing.T) {
		c, err := otp.Issue(1001)
		require.NoError(t, err)
		assert.Equal(t, otp.Denied, c.Check("not-the-code"))
	})

	t.Run("single attempt only", func(t *testing.T) {
		c, err := otp.Issue(1001)
		require.NoError(t, err)
		code := c.Code()
		assert.Equal(t, otp.Denied, c.Check("wrong"))
		assert.Equal(t, otp.Denied, c.Check(code), "correct code after a failed attempt is still denied")
	})

	t.Run("consumed on success too", func(t *testing.T) {
		c, err := otp.Issue(1001)
		require.NoError(t, err)
		code := c.Code()
		assert.Equal(t, otp.Verified, c.Check(code))
		assert.Equal(t, otp.Denied, c.Check(code))
	})
}
