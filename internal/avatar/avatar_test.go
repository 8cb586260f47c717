package avatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL_NormalizesEmail(t *testing.T) {
	// Trim and lowercase must not change the resulting hash.
	a := URL("  Alice@Example.COM ")
	b := URL("alice@example.com")
	assert.Equal(t, a, b)
}

func TestURL_KnownHash(t *testing.T) {
	// md5("alice@example.com") = c160f8cc69a4f0bf2b0362752353d060
	got := URL("alice@example.com")
	assert.Equal(t,
		"https://www.gravatar.com/avatar/c160f8cc69a4f0bf2b0362752353d060?d=identicon&r=pg&s=200",
		got)
}

func TestURLWithOptions_OmitsEmptyParams(t *testing.T) {
	got := URLWithOptions("alice@example.com", Options{})
	assert.Equal(t, "https://www.gravatar.com/avatar/c160f8cc69a4f0bf2b0362752353d060", got)
}

func TestURL_DistinctEmailsDistinctURLs(t *testing.T) {
	assert.NotEqual(t, URL("alice@example.com"), URL("bob@example.com"))
}
