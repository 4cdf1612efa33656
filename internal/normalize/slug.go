package normalize

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonWordRe matches runs of anything that is not a letter, digit,
	// underscore or period.
	nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}_.]+`)
	// separatorRe matches what cannot appear in a slug once transliterated.
	separatorRe = regexp.MustCompile(`[^a-z0-9]+`)
)

// contractions is checked in order so "won't" wins over "n't". Suffix forms
// attach to the preceding word; the others must start a word. A bare "'s" is
// left alone since it is usually possessive.
var contractions = []struct {
	from, to string
	suffix   bool
}{
	{"won't", "will not", false},
	{"can't", "cannot", false},
	{"shan't", "shall not", false},
	{"ain't", "is not", false},
	{"let's", "let us", false},
	{"it's", "it is", false},
	{"that's", "that is", false},
	{"what's", "what is", false},
	{"there's", "there is", false},
	{"here's", "here is", false},
	{"he's", "he is", false},
	{"she's", "she is", false},
	{"i'm", "i am", false},
	{"n't", " not", true},
	{"'re", " are", true},
	{"'ve", " have", true},
	{"'ll", " will", true},
	{"'d", " would", true},
}

// Slug derives a URL-safe identifier from a human readable name. Names with
// nothing that transliterates to a letter or digit get a short hash instead,
// so the identifier is never empty for a non-blank name.
func Slug(name string) string {
	s := ExpandContractions(name)
	s = nonWordRe.ReplaceAllString(s, " ")
	s = strings.ToLower(transliterate(s))
	s = separatorRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" && strings.TrimSpace(name) != "" {
		sum := sha256.Sum256([]byte(name))
		s = "p-" + hex.EncodeToString(sum[:4])
	}
	return s
}

// ExpandContractions rewrites English contractions ("I'm" → "I am") so the
// apostrophe does not split a word in two.
func ExpandContractions(s string) string {
	s = strings.ReplaceAll(s, "’", "'")
	if !strings.Contains(s, "'") {
		return s
	}
	lower := asciiLower(s)
	var b strings.Builder
	for i := 0; i < len(s); {
		matched := false
		for _, c := range contractions {
			if !strings.HasPrefix(lower[i:], c.from) || !atWordEnd(lower, i+len(c.from)) {
				continue
			}
			if !c.suffix && !atWordStart(lower, i) {
				continue
			}
			b.WriteString(matchCase(s[i:i+len(c.from)], c.to))
			i += len(c.from)
			matched = true
			break
		}
		if !matched {
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}

// asciiLower lowercases A-Z only, so byte offsets line up with the input.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

func atWordStart(s string, i int) bool {
	return i == 0 || !isWordByte(s[i-1])
}

func atWordEnd(s string, i int) bool {
	return i == len(s) || !isWordByte(s[i])
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c >= 0x80
}

// matchCase keeps a leading capital ("I'm" → "I am", "Won't" → "Will not").
func matchCase(orig, repl string) string {
	if orig == "" || repl == "" || !unicode.IsUpper(rune(orig[0])) {
		return repl
	}
	return strings.ToUpper(repl[:1]) + repl[1:]
}

func transliterate(s string) string {
	return unidecode.Unidecode(norm.NFKC.String(s))
}
