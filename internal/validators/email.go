package validators

import (
	"net/mail"
	"strings"
)

// IsEmailValid checks the address is well-formed and carries a domain.
// No DNS lookup: the console must behave the same offline.
func IsEmailValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	return at > 0 && at < len(email)-1
}
