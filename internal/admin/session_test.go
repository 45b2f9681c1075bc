package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionToken(t *testing.T) {
	// The token is the hex SHA-256 of the secret: deterministic and stable
	// across processes, since deployed clients hold long-lived copies of it.
	token := SessionToken("nathmaker")
	assert.Equal(t, SessionToken("nathmaker"), token)
	assert.Len(t, token, 64)
	assert.NotEqual(t, SessionToken("other"), token)

	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		SessionToken("hello"))
}

func TestSplitImageURLs(t *testing.T) {
	assert.Equal(t, []string{}, splitImageURLs(""))
	assert.Equal(t,
		[]string{"https://a.example/1.jpg", "https://a.example/2.jpg"},
		splitImageURLs("https://a.example/1.jpg\r\n\n  https://a.example/2.jpg  \n"))
}
