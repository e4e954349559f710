package reconcile

import "strings"

// benefitsField is the free-text feed attribute the flags derive from.
const benefitsField = "kredittkort_andre_fordeler_beskrivelse"

var (
	priorityKeywords = []string{"priority pass", "lounge"}
	cashbackKeywords = []string{"cashback", "cash back", "penger tilbake"}
)

// ExtractFeatures derives the four boolean CMS flags from the benefits
// description by keyword matching. The flags are independent; absent
// input yields all false.
func ExtractFeatures(description string) map[string]bool {
	text := strings.ToLower(description)

	return map[string]bool{
		"priority-pass": containsAny(text, priorityKeywords),
		"cashback":      containsAny(text, cashbackKeywords),
		"rabatter":      strings.Contains(text, "rabatt"),
		"bonuser":       strings.Contains(text, "bonus"),
	}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
