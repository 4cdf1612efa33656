package render

import "testing"

func TestUnwidow(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Testing the thing now", "Testing the thing\u00a0now"},
		{"two words", "two\u00a0words"},
		{"spaced   out  ", "spaced\u00a0out  "},
		{"line\nbreak", "line\u00a0break"},
		{"single", "single"},
		{"  padded", "  padded"},
		{"", ""},
		{"   ", "   "},
		{"already\u00a0joined", "already\u00a0joined"},
		{"ünïcode wörds", "ünïcode\u00a0wörds"},
	}
	for _, tc := range cases {
		if got := Unwidow(tc.in); got != tc.want {
			t.Errorf("Unwidow(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUnwidow_Idempotent(t *testing.T) {
	once := Unwidow("one two three")
	if twice := Unwidow(once); twice != once {
		t.Errorf("Unwidow twice = %q, want %q", twice, once)
	}
}

func TestUnwidowHTML(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain two words", "plain two\u00a0words"},
		{`Built with <a href="https://go.dev">Go</a>`, "Built with\u00a0<a href=\"https://go.dev\">Go</a>"},
		{`<em>Very</em> <strong>bold</strong>`, "<em>Very</em>\u00a0<strong>bold</strong>"},
		{`made <em>by hand</em>`, "made <em>by\u00a0hand</em>"},
		{`Fish &amp; chips`, "Fish &amp;\u00a0chips"},
		{`<a href="x y">single</a>`, `<a href="x y">single</a>`},
		{"", ""},
	}
	for _, tc := range cases {
		if got := UnwidowHTML(tc.in); got != tc.want {
			t.Errorf("UnwidowHTML(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
