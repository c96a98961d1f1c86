// Package share builds the prefilled WhatsApp deep link used to send a
// document's public URL. Opening the link is the client's job; this side
// only formats the message.
package share

import (
	"fmt"
	"net/url"
)

const whatsappEndpoint = "https://api.whatsapp.com/send"

// Message formats the prefilled share text for a document.
func Message(documentTitle, pharmacyName, publicURL string) string {
	return fmt.Sprintf("Document qualité : %s\nPharmacie : %s\n\n%s",
		documentTitle, pharmacyName, publicURL)
}

// Link builds the URL-encoded WhatsApp deep link carrying the message.
// Phone may be empty, which lets the sender pick a recipient.
func Link(phone, message string) string {
	q := url.Values{}
	if phone != "" {
		q.Set("phone", phone)
	}
	q.Set("text", message)
	return whatsappEndpoint + "?" + q.Encode()
}
