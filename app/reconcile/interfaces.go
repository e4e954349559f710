package reconcile

import (
	"context"

	"github.com/oyvindh/kortsync/app/cms"
)

// ItemWriter is the slice of the CMS client the reconciler dispatches
// through. The returned int is the HTTP status code, reported per item.
type ItemWriter interface {
	UpdateItemLive(ctx context.Context, collectionID, itemID string, payload cms.ItemPayload) (int, error)
	CreateItemLive(ctx context.Context, collectionID string, payload cms.ItemPayload) (int, error)
}

// BankLookup resolves a provider's bank reference item by name.
type BankLookup interface {
	Resolve(ctx context.Context, name string) (string, bool)
}
