package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGravatarURL(t *testing.T) {
	// md5("alice@example.com") = c160f8cc69a4f0bf2b0362752353d060
	got := GravatarURL("alice@example.com", 100)
	assert.Equal(t,
		"https://www.gravatar.com/avatar/c160f8cc69a4f0bf2b0362752353d060?s=100&d=retro&r=g",
		got)
}

func TestGravatarURLNormalizesEmail(t *testing.T) {
	assert.Equal(t,
		GravatarURL("alice@example.com", 100),
		GravatarURL("  Alice@Example.COM ", 100))
}
