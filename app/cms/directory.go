package cms

import (
	"context"
	"log/slog"
	"time"
)

// DirectoryFetcher builds the slug -> item index for a collection by
// paginating through all of its items.
type DirectoryFetcher struct {
	client       *Client
	collectionID string
	pageSize     int
	delay        time.Duration
}

func NewDirectoryFetcher(client *Client, collectionID string, pageSize int, delay time.Duration) *DirectoryFetcher {
	return &DirectoryFetcher{
		client:       client,
		collectionID: collectionID,
		pageSize:     pageSize,
		delay:        delay,
	}
}

// Run fetches pages until one comes back short. A failed page stops the
// fetch; whatever was accumulated so far is returned as the index. The
// index is a snapshot: it is not refreshed while the run creates items.
func (f *DirectoryFetcher) Run(ctx context.Context) map[string]Item {
	index := make(map[string]Item)
	offset := 0

	for {
		items, err := f.client.ListItems(ctx, f.collectionID, f.pageSize, offset)
		if err != nil {
			slog.Warn("Directory page fetch failed, keeping partial index",
				"offset", offset, "error", err)
			break
		}

		for _, item := range items {
			// Items without a slug collapse onto the "" key, last one
			// wins. Known quirk, kept as-is.
			index[item.FieldData.String("slug")] = item
		}

		if len(items) < f.pageSize {
			break
		}

		offset += f.pageSize
		time.Sleep(f.delay)
	}

	slog.Info("Directory index built", "items", len(index))

	return index
}
