// Package normalize holds the pure text and number helpers applied to
// raw feed values before they are written to the CMS.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const slugStripSet = "+%,:&()/."

var (
	nordicReplacer = strings.NewReplacer("æ", "a", "ø", "o", "å", "a")
	whitespaceRe   = regexp.MustCompile(`\s+`)

	norwegianMonths = [12]string{
		"januar", "februar", "mars", "april", "mai", "juni",
		"juli", "august", "september", "oktober", "november", "desember",
	}
)

// Slugify turns arbitrary text into a slug-safe form: lowercase, the
// Norwegian letters æ/ø/å mapped to their base letters, accents folded
// away, spaces hyphenated and the punctuation set +%,:&()/. removed.
// Never fails; empty input yields an empty string.
func Slugify(text string) string {
	s := nordicReplacer.Replace(strings.ToLower(text))

	// NFKD decomposition followed by combining mark removal folds
	// accented letters down to their ASCII base.
	folder := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	if folded, _, err := transform.String(folder, s); err == nil {
		s = folded
	}

	s = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)

	s = strings.ReplaceAll(s, " ", "-")

	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(slugStripSet, r) {
			return -1
		}
		return r
	}, s)

	return strings.TrimSpace(s)
}

// Sanitize collapses any whitespace run, line breaks included, into a
// single space and trims the ends.
func Sanitize(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// FormatThousands renders a numeric string with a space as thousands
// separator, truncating any decimals ("1234567" -> "1 234 567"). Input
// that does not parse as a number is returned unchanged.
func FormatThousands(value string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return value
	}

	n := int64(f)
	digits := strconv.FormatInt(n, 10)

	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + strings.Join(groups, " ")
}

// FormatUpdateDate renders the Norwegian update stamp for the calendar
// day before now; the feed reflects the prior day's close.
func FormatUpdateDate(now time.Time) string {
	yesterday := now.AddDate(0, 0, -1)
	return fmt.Sprintf("Oppdatert %d. %s %d - 23:59",
		yesterday.Day(), norwegianMonths[yesterday.Month()-1], yesterday.Year())
}

// UpdateDate is FormatUpdateDate for the current run.
func UpdateDate() string {
	return FormatUpdateDate(time.Now())
}
