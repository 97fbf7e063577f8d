package notify

import (
	"net/url"
	"strings"
)

// WhatsAppLink builds a wa.me deep link that opens a chat with the given
// number and the message text pre-filled. The link is returned to the
// client, which opens it; delivery is never awaited.
func WhatsAppLink(number, text string) string {
	// wa.me does not decode '+' as a space, so use percent encoding.
	encoded := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return "https://wa.me/" + number + "?text=" + encoded
}
