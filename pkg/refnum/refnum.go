// Package refnum generates the human-readable folio printed on every case
// screen. ULIDs keep folios sortable by creation time without a DB sequence.
package refnum

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

const prefix = "CT-"

// New returns a 16-char folio: the ULID's 10-char timestamp half plus the
// last 6 chars of its random half. Short enough for the folio column on the
// tracking screens, still time-ordered.
func New() string {
	u := ulid.Make().String() // 26 chars, Crockford base32
	return prefix + u[:10] + u[20:]
}

// Valid reports whether s looks like a folio produced by New.
func Valid(s string) bool {
	if !strings.HasPrefix(s, prefix) {
		return false
	}
	rest := s[len(prefix):]
	if len(rest) != 16 {
		return false
	}
	for _, r := range rest {
		if !strings.ContainsRune(ulid.Encoding, r) {
			return false
		}
	}
	return true
}
