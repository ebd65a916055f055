package util

import (
	"bytes"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

var (
	RgxEmail = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

	rgxHTMLTag      = regexp.MustCompile(`<[^>]*>`)
	rgxWhitespace   = regexp.MustCompile(`\s+`)
	rgxURLScheme    = regexp.MustCompile(`^https?://`)
	rgxNonAlphaNum  = regexp.MustCompile(`[^a-zA-Z0-9]`)
	rgxTitleSuffix  = regexp.MustCompile(` - .*$`)
	rgxTitleSuffix2 = regexp.MustCompile(` \| .*$`)
)

func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

func IsEmail(value string) bool {
	if len(value) > 254 {
		return false
	}

	return RgxEmail.MatchString(value)
}

func IsURL(value string) bool {
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}

	return u.Scheme != "" && u.Host != ""
}

// CleanDescription strips HTML tags, collapses whitespace and caps the
// text at max runes. Scraped descriptions come through here before
// persistence.
func CleanDescription(s string, max int) string {
	cleaned := rgxHTMLTag.ReplaceAllString(s, "")
	cleaned = rgxWhitespace.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	runes := []rune(cleaned)
	if len(runes) > max {
		return string(runes[:max])
	}
	return cleaned
}

// CleanTitle drops the " - Site Name" / " | Site Name" tail that search
// result titles usually carry.
func CleanTitle(s string) string {
	s = rgxTitleSuffix.ReplaceAllString(s, "")
	s = rgxTitleSuffix2.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// IDFromURL derives a stable identifier from a URL, for providers whose
// results carry no native ID.
func IDFromURL(rawURL string) string {
	id := rgxURLScheme.ReplaceAllString(rawURL, "")
	id = rgxNonAlphaNum.ReplaceAllString(id, "_")
	if len(id) > 50 {
		id = id[:50]
	}
	return id
}

// GenerateSlug builds the sport-borough browse slug, e.g.
// ("padel", "westminster") -> "padel-westminster".
func GenerateSlug(sport, borough string) string {
	return fmt.Sprintf("%s-%s", Slugify(sport), Slugify(borough))
}

func Slugify(s string) string {
	var buf bytes.Buffer

	for _, r := range s {
		switch {
		case r > unicode.MaxASCII:
			continue
		case unicode.IsLetter(r):
			buf.WriteRune(unicode.ToLower(r))
		case unicode.IsDigit(r), r == '_', r == '-':
			buf.WriteRune(r)
		case unicode.IsSpace(r):
			buf.WriteRune('-')
		}
	}

	return buf.String()
}
