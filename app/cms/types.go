package cms

// FieldData holds a CMS item's field values keyed by CMS field name.
type FieldData map[string]any

// String returns the field's value when it is a string, "" otherwise.
func (fd FieldData) String(key string) string {
	if v, ok := fd[key].(string); ok {
		return v
	}
	return ""
}

// Item is one record in a CMS collection.
type Item struct {
	ID        string    `json:"id"`
	FieldData FieldData `json:"fieldData"`
}

// ItemPayload is the write body for create and update calls. Synced
// items are always published live, so both flags stay false.
type ItemPayload struct {
	IsArchived bool      `json:"isArchived"`
	IsDraft    bool      `json:"isDraft"`
	FieldData  FieldData `json:"fieldData"`
}

type itemListResponse struct {
	Items []Item `json:"items"`
}
