package common

import "strings"

// NameFromEmail returns the local part of an email address, or the whole
// address when the local part is empty.
func NameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return email
	}
	return local
}

// BoolString renders b the way preference flags are stored.
func BoolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
