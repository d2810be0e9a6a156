package steam

import (
	"fmt"
	"regexp"
	"strings"
)

// Valve's VDF/ACF files are line-oriented `"key"  "value"` pairs nested in
// braces. Only a couple of keys matter here, so they are scraped with
// regular expressions instead of a full parser; values escape backslashes.

func patternFor(key string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`"%s"\s+"(.+?)"`, regexp.QuoteMeta(key)))
}

// extractValue returns the first value stored under key, unescaped.
func extractValue(content, key string) (string, bool) {
	match := patternFor(key).FindStringSubmatch(content)
	if match == nil {
		return "", false
	}
	return unescape(match[1]), true
}

// extractValues returns every value stored under key, unescaped.
func extractValues(content, key string) []string {
	matches := patternFor(key).FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}
	values := make([]string, 0, len(matches))
	for _, m := range matches {
		values = append(values, unescape(m[1]))
	}
	return values
}

func unescape(value string) string {
	return strings.ReplaceAll(value, `\\`, `\`)
}
