package feed

// Entry is one product offer from the external feed, normalized for
// reconciliation. Entries are built fresh per run and never mutated.
type Entry struct {
	// Title is the offer display name.
	Title string

	// Provider is the organization identifier text (leverandor_tekst),
	// used as the secondary key for the bank reference lookup.
	Provider string

	// Fields maps feed attribute names (local tag, without namespace)
	// to their raw text values.
	Fields map[string]string

	// ExternalID is the stable identifier extracted from the entry's
	// canonical id URI. It is the sole join key against the CMS.
	ExternalID string
}

const providerField = "leverandor_tekst"
