package utils

import (
	"strings"
)

// EmailLocalPart returns the part of an email address before the '@'.
// An empty local part yields the fallback.
func EmailLocalPart(email, fallback string) string {
	local := strings.SplitN(email, "@", 2)[0]
	if local == "" {
		return fallback
	}
	return local
}

// SyntheticEmail derives a placeholder address from a person's name for
// sources that do not carry one. Only the first space becomes a dot;
// downstream consumers match on that exact shape.
func SyntheticEmail(name, domain string) string {
	return strings.Replace(strings.ToLower(name), " ", ".", 1) + "@" + domain
}
