package normalize

import (
	"strings"
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "lowercases", input: "Bank Norwegian", want: "bank-norwegian"},
		{name: "norwegian letters", input: "Sbanken Visa Sølv", want: "sbanken-visa-solv"},
		{name: "ae and aa", input: "Kredittkort for Ærlige Bankkunder på Åsen", want: "kredittkort-for-arlige-bankkunder-pa-asen"},
		{name: "strips punctuation", input: "re:member kredittkort", want: "remember-kredittkort"},
		{name: "strips slash and percent", input: "Mastercard m/fordel 0%", want: "mastercard-mfordel-0"},
		{name: "accents folded", input: "Café Visa", want: "cafe-visa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugifyNeverEmitsStrippedCharacters(t *testing.T) {
	inputs := []string{
		"A+B%C,D:E&F(G)H/I.J",
		"Visa & Mastercard (2024)",
		"100% cashback, alltid.",
	}

	for _, input := range inputs {
		got := Slugify(input)
		if strings.ContainsAny(got, slugStripSet) {
			t.Errorf("Slugify(%q) = %q contains characters from the strip set", input, got)
		}
		if got != strings.ToLower(got) {
			t.Errorf("Slugify(%q) = %q contains uppercase letters", input, got)
		}
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "collapse newlines and spaces", input: "a\n\nb   c", want: "a b c"},
		{name: "tabs", input: "foo\t\tbar", want: "foo bar"},
		{name: "trims ends", input: "  hei verden  ", want: "hei verden"},
		{name: "single word", input: "rentefritt", want: "rentefritt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "millions", input: "1234567", want: "1 234 567"},
		{name: "thousands", input: "30000", want: "30 000"},
		{name: "short number untouched", input: "500", want: "500"},
		{name: "decimals truncated", input: "99999.99", want: "99 999"},
		{name: "negative", input: "-1234567", want: "-1 234 567"},
		{name: "surrounding whitespace", input: " 1000 ", want: "1 000"},
		{name: "non-numeric fallback", input: "abc", want: "abc"},
		{name: "empty fallback", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatThousands(tt.input); got != tt.want {
				t.Errorf("FormatThousands(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatUpdateDate(t *testing.T) {
	now := time.Date(2024, time.July, 15, 9, 30, 0, 0, time.UTC)
	want := "Oppdatert 14. juli 2024 - 23:59"
	if got := FormatUpdateDate(now); got != want {
		t.Errorf("FormatUpdateDate() = %q, want %q", got, want)
	}
}

func TestFormatUpdateDateMonthBoundary(t *testing.T) {
	now := time.Date(2024, time.March, 1, 0, 5, 0, 0, time.UTC)
	want := "Oppdatert 29. februar 2024 - 23:59"
	if got := FormatUpdateDate(now); got != want {
		t.Errorf("FormatUpdateDate() = %q, want %q", got, want)
	}
}
