package notify

import (
	"strings"
	"testing"
)

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("553221040257", "linha um\nlinha *dois*")

	if !strings.HasPrefix(link, "https://wa.me/553221040257?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}
	if strings.Contains(link, "+") {
		t.Error("spaces must be percent-encoded, not '+'")
	}
	if !strings.Contains(link, "linha%20um%0Alinha%20%2Adois%2A") {
		t.Errorf("unexpected encoding: %s", link)
	}
}
