package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// EmailPattern matches an ordinary email address
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// AmountPattern matches a monetary amount with up to two decimal places
	AmountPattern = `^\d{1,10}(\.\d{1,2})?$`

	// PasswordMinLength is the minimum accepted password length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email  *regexp.Regexp
	Amount *regexp.Regexp
}{
	Email:  regexp.MustCompile(EmailPattern),
	Amount: regexp.MustCompile(AmountPattern),
}

// ValidEmail reports whether the value looks like an email address
func ValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(strings.TrimSpace(value))
}

// ValidAmount reports whether the value is a positive monetary amount
func ValidAmount(value string) bool {
	value = strings.TrimSpace(value)
	if !CompiledPatterns.Amount.MatchString(value) {
		return false
	}
	// reject all-zero amounts like "0" or "0.00"
	return strings.Trim(strings.Replace(value, ".", "", 1), "0") != ""
}

// Slugify derives a URL slug from a title
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = regexp.MustCompile(`\s+`).ReplaceAllString(slug, "-")
	return regexp.MustCompile(`[^a-z0-9\-]`).ReplaceAllString(slug, "")
}
