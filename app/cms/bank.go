package cms

import (
	"context"
	"log/slog"
)

// BankResolver looks up a provider's bank item by exact name match in
// the bank reference collection. No caching: every call re-scans.
type BankResolver struct {
	client       *Client
	collectionID string
	pageSize     int
	maxPages     int
}

func NewBankResolver(client *Client, collectionID string, pageSize, maxPages int) *BankResolver {
	return &BankResolver{
		client:       client,
		collectionID: collectionID,
		pageSize:     pageSize,
		maxPages:     maxPages,
	}
}

// Resolve returns the CMS id of the first item whose name equals the
// given provider text. A failed page is logged and the scan moves on to
// the next one.
func (r *BankResolver) Resolve(ctx context.Context, name string) (string, bool) {
	for page := 0; page < r.maxPages; page++ {
		offset := page * r.pageSize

		items, err := r.client.ListItems(ctx, r.collectionID, r.pageSize, offset)
		if err != nil {
			slog.Warn("Bank lookup page failed", "offset", offset, "error", err)
			continue
		}

		for _, item := range items {
			if item.FieldData.String("name") == name {
				slog.Debug("Bank reference resolved", "bank_id", item.ID, "provider", name)
				return item.ID, true
			}
		}

		if len(items) < r.pageSize {
			break
		}
	}

	slog.Debug("No bank reference found", "provider", name)

	return "", false
}
