package constants

import "strings"

// AllowedExtensions holds the file extensions accepted for registration.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// DefaultCurrency is assumed when an adapter yields no currency.
const DefaultCurrency = "USD"

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
