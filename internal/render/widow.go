package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// nbsp joins the last two words so they always wrap together.
const nbsp = "\u00a0"

// Unwidow replaces the whitespace between the last two words of s with a
// non-breaking space. Text with fewer than two words is returned unchanged.
func Unwidow(s string) string {
	start, end, ok := widowGap(s)
	if !ok {
		return s
	}
	return s[:start] + nbsp + s[end:]
}

// widowGap locates the whitespace run between the last two words of s as the
// byte range [start, end).
func widowGap(s string) (start, end int, ok bool) {
	body := strings.TrimRightFunc(s, unicode.IsSpace)
	last := strings.LastIndexFunc(body, unicode.IsSpace)
	if last < 0 {
		return 0, 0, false
	}
	head := strings.TrimRightFunc(body[:last], unicode.IsSpace)
	if strings.TrimSpace(head) == "" {
		return 0, 0, false
	}
	_, size := utf8.DecodeRuneInString(body[last:])
	return len(head), last + size, true
}

// UnwidowHTML applies Unwidow to the text of an HTML fragment, leaving tags
// and attributes untouched. The gap between the last two words may sit
// across element boundaries ("with <a>Go</a>").
func UnwidowHTML(s string) string {
	type segment struct {
		raw  string
		text bool
		off  int
	}
	var (
		segs []segment
		text strings.Builder
	)
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		seg := segment{raw: string(z.Raw()), text: tt == html.TextToken}
		if seg.text {
			seg.off = text.Len()
			text.WriteString(seg.raw)
		}
		segs = append(segs, seg)
	}

	start, end, ok := widowGap(text.String())
	if !ok {
		return s
	}
	var b strings.Builder
	for _, seg := range segs {
		if !seg.text {
			b.WriteString(seg.raw)
			continue
		}
		for i := 0; i < len(seg.raw); i++ {
			pos := seg.off + i
			if pos == start {
				b.WriteString(nbsp)
			}
			if pos >= start && pos < end {
				continue
			}
			b.WriteByte(seg.raw[i])
		}
	}
	return b.String()
}
