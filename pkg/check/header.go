package check

import "strings"

// NormalizeNewlines converts CRLF and bare CR line endings to LF so
// comparisons behave the same on files written on any platform.
func NormalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// ExpandHeader substitutes the {owner} and {year} placeholders in a
// license header template. A placeholder is only replaced when its
// value is non-empty, so a template without values survives verbatim.
func ExpandHeader(header, owner, year string) string {
	if owner != "" {
		header = strings.ReplaceAll(header, "{owner}", owner)
	}
	if year != "" {
		header = strings.ReplaceAll(header, "{year}", year)
	}
	return header
}

// HasLicenseHeader reports whether content begins with the given
// header text. Both sides are newline-normalized and the header's
// trailing newlines are ignored, so a file whose first bytes are the
// header counts regardless of the blank lines that follow. Empty
// content never has a header.
func HasLicenseHeader(content, header string) bool {
	header = strings.TrimRight(NormalizeNewlines(header), "\n")
	if header == "" {
		return false
	}
	content = NormalizeNewlines(content)
	if content == "" {
		return false
	}
	return strings.HasPrefix(content, header)
}
