package whatsapp

import (
	"net/url"
	"strings"
)

// BuildLink returns a wa.me deep link opening a chat with the given phone
// number and a prefilled message. Phone may contain spaces, dashes or a
// leading plus; only digits end up in the link. Returns "" when no phone
// is configured.
func BuildLink(phone, text string) string {
	digits := digitsOnly(phone)
	if digits == "" {
		return ""
	}

	link := "https://wa.me/" + digits
	if text != "" {
		link += "?text=" + url.QueryEscape(text)
	}
	return link
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
