package constants

import "strings"

// Method identifies an extraction strategy. The set is closed: adding a
// method is a code change plus a registry entry at process start.
type Method string

const (
	MethodTextDirect    Method = "text_direct"
	MethodOCRTable      Method = "ocr_table"
	MethodOCRPlain      Method = "ocr_plain"
	MethodOCRAggressive Method = "ocr_aggressive"
	MethodClaudeVision  Method = "claude_vision"
	MethodHybrid        Method = "hybrid"
)

var allMethods = []Method{
	MethodTextDirect,
	MethodOCRTable,
	MethodOCRPlain,
	MethodOCRAggressive,
	MethodClaudeVision,
	MethodHybrid,
}

// Methods returns the known method names for schema validation.
func Methods() []string {
	result := make([]string, len(allMethods))
	for i, m := range allMethods {
		result[i] = string(m)
	}
	return result
}

// ParseMethod canonicalizes a method name.
func ParseMethod(input string) (Method, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, m := range allMethods {
		if normalized == string(m) {
			return m, true
		}
	}
	return "", false
}
