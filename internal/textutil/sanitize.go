package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	bracketTagPattern = regexp.MustCompile(`\[[^\]]*\]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	slugStripPattern  = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugDashPattern   = regexp.MustCompile(`-+`)
)

// accentStripper decomposes text and removes combining marks, so "Héctor"
// compares equal to "Hector".
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripAccents removes diacritical marks from text. Returns the input
// unchanged if the transform fails.
func StripAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

// StripEmoji removes characters outside the Basic Multilingual Plane along
// with the miscellaneous-symbol ranges TTS scripts decorate dialogue with.
// Styled subtitle renderers commonly mishandle these glyphs.
func StripEmoji(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r > 0xFFFF {
			continue
		}
		if r >= 0x2600 && r <= 0x27BF {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StripMeta removes bracketed stage directions, emoji, and markdown bold
// markers, then collapses runs of whitespace.
func StripMeta(s string) string {
	s = bracketTagPattern.ReplaceAllString(s, "")
	s = StripEmoji(s)
	s = strings.ReplaceAll(s, "**", "")
	return CollapseWhitespace(s)
}

// CollapseWhitespace squeezes whitespace runs to single spaces and trims
// leading/trailing space plus stray leading punctuation.
func CollapseWhitespace(s string) string {
	s = whitespacePattern.ReplaceAllString(s, " ")
	s = strings.Trim(s, " ")
	return strings.TrimLeft(s, ",;: ")
}

// Slugify converts free text into a lowercase hyphenated slug suitable for
// output directory names.
func Slugify(s string) string {
	s = strings.ToLower(StripAccents(s))
	s = slugStripPattern.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = slugDashPattern.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "podcast"
	}
	return s
}

// NormalizeKey lowercases, strips accents, and trims a raw label for
// case/accent-insensitive comparisons.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(StripAccents(s)))
}
