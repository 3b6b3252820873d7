package normalize

import (
	"net/url"
	"strings"
)

// WhatsAppLink builds the wa.me deep link for a phone number. The message, if
// any, is attached url-encoded as the preset text. The phone cell is used as
// stored in the sheet, only trimmed; numbers are maintained without the
// country prefix.
func WhatsAppLink(countryCode, phone, message string) string {
	link := "https://wa.me/" + countryCode + strings.TrimSpace(phone)
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link
}
