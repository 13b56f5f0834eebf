package account

import (
	"strconv"
	"unicode/utf16"
)

// Checksum derives the stored credential from a password: a 32-bit rolling
// hash over the UTF-16 code units, rendered as a signed decimal string.
// NOT cryptographically secure; it only has to reproduce the historical
// stored values so existing accounts keep working.
func Checksum(password string) string {
	var h int32
	for _, c := range utf16.Encode([]rune(password)) {
		h = h<<5 - h + int32(c)
	}
	return strconv.FormatInt(int64(h), 10)
}
