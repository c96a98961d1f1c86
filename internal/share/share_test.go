package share_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qualipharm/qualipharm/internal/share"
)

func TestMessage(t *testing.T) {
	msg := share.Message("Rapport de Dysfonctionnement", "Pharmacie Centrale",
		"https://files.example.com/object/public/docs/pcv/documents/1_doc.pdf")

	assert.Contains(t, msg, "Rapport de Dysfonctionnement")
	assert.Contains(t, msg, "Pharmacie Centrale")
	assert.True(t, strings.HasSuffix(msg, "1_doc.pdf"))
}

func TestLinkEncodesMessage(t *testing.T) {
	link := share.Link("", "Document qualité : Rapport\n\nhttps://example.com/a b")

	require.True(t, strings.HasPrefix(link, "https://api.whatsapp.com/send?"))

	parsed, err := url.Parse(link)
	require.NoError(t, err)

	q := parsed.Query()
	assert.Equal(t, "Document qualité : Rapport\n\nhttps://example.com/a b", q.Get("text"))
	assert.Empty(t, q.Get("phone"))
}

func TestLinkWithPhone(t *testing.T) {
	link := share.Link("33612345678", "bonjour")

	parsed, err := url.Parse(link)
	require.NoError(t, err)

	assert.Equal(t, "33612345678", parsed.Query().Get("phone"))
	assert.Equal(t, "bonjour", parsed.Query().Get("text"))
}
