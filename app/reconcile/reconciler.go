// Package reconcile applies the feed state onto the CMS collection:
// one create or update call per feed entry, derived fields included.
package reconcile

import (
	"context"
	"log/slog"
	"time"

	"github.com/oyvindh/kortsync/app/cms"
	"github.com/oyvindh/kortsync/app/feed"
	"github.com/oyvindh/kortsync/app/mapping"
	"github.com/oyvindh/kortsync/app/normalize"
)

// CMS field names written outside the mapping table.
const (
	nameCMSField          = "name"
	providerCMSField      = "leverandor-tekst"
	updatedCMSField       = "sist-oppdatert"
	bankCMSField          = "bank"
	slugCMSField          = "slug"
	effectiveRateCMSField = "effektiv-rente-4"
	exampleCMSField       = "eksempel-rente"
)

// Status is the terminal state of one reconciled entry.
type Status string

const (
	StatusUpdated Status = "updated"
	StatusCreated Status = "created"
	StatusFailed  Status = "failed"
)

// Outcome is the tagged result of reconciling a single entry.
type Outcome struct {
	ExternalID string
	Status     Status
	StatusCode int
	Err        error
}

// Report aggregates a full run.
type Report struct {
	Total   int
	Updated int
	Created int
	Failed  int
}

type Reconciler struct {
	writer       ItemWriter
	banks        BankLookup
	table        *mapping.Table
	collectionID string
	delay        time.Duration
}

func NewReconciler(writer ItemWriter, banks BankLookup, table *mapping.Table, collectionID string, delay time.Duration) *Reconciler {
	return &Reconciler{
		writer:       writer,
		banks:        banks,
		table:        table,
		collectionID: collectionID,
		delay:        delay,
	}
}

// Run reconciles every entry in feed order against the directory
// snapshot. The snapshot is never refreshed mid-run: an item created
// here is not visible to later lookups, which is fine because each
// entry appears once per run. A failed entry never stops the batch.
func (r *Reconciler) Run(ctx context.Context, entries []feed.Entry, directory map[string]cms.Item) *Report {
	report := &Report{Total: len(entries)}

	for _, entry := range entries {
		outcome := r.reconcileEntry(ctx, entry, directory)

		switch outcome.Status {
		case StatusUpdated:
			report.Updated++
			slog.Info("Item updated", "id", outcome.ExternalID, "status", outcome.StatusCode)
		case StatusCreated:
			report.Created++
			slog.Info("Item created", "id", outcome.ExternalID, "status", outcome.StatusCode)
		case StatusFailed:
			report.Failed++
			slog.Error("Entry failed", "id", outcome.ExternalID, "status", outcome.StatusCode, "error", outcome.Err)
		}

		// Fixed delay after every entry, success or not, to stay under
		// the CMS rate limit.
		time.Sleep(r.delay)
	}

	slog.Info("Sync run completed",
		"total", report.Total,
		"updated", report.Updated,
		"created", report.Created,
		"failed", report.Failed)

	return report
}

func (r *Reconciler) reconcileEntry(ctx context.Context, entry feed.Entry, directory map[string]cms.Item) Outcome {
	payload := r.buildPayload(ctx, entry)

	if existing, ok := directory[entry.ExternalID]; ok {
		status, err := r.writer.UpdateItemLive(ctx, r.collectionID, existing.ID, payload)
		if err != nil {
			return Outcome{ExternalID: entry.ExternalID, Status: StatusFailed, StatusCode: status, Err: err}
		}
		return Outcome{ExternalID: entry.ExternalID, Status: StatusUpdated, StatusCode: status}
	}

	// New records take the external id as their slug; existing records
	// keep whatever slug the CMS assigned them.
	payload.FieldData[slugCMSField] = entry.ExternalID

	status, err := r.writer.CreateItemLive(ctx, r.collectionID, payload)
	if err != nil {
		return Outcome{ExternalID: entry.ExternalID, Status: StatusFailed, StatusCode: status, Err: err}
	}
	return Outcome{ExternalID: entry.ExternalID, Status: StatusCreated, StatusCode: status}
}

// buildPayload assembles the target field set: base fields, whitelisted
// mapped attributes, feature flags, cost fields and the bank reference.
// Feed attributes outside the mapping table are dropped.
func (r *Reconciler) buildPayload(ctx context.Context, entry feed.Entry) cms.ItemPayload {
	fieldData := cms.FieldData{
		nameCMSField:     entry.Title,
		providerCMSField: entry.Provider,
		updatedCMSField:  normalize.UpdateDate(),
	}

	for feedField, cmsField := range r.table.Fields {
		value, ok := entry.Fields[feedField]
		if !ok {
			continue
		}

		switch {
		case r.table.IsSanitized(cmsField):
			fieldData[cmsField] = normalize.Sanitize(value)
		case r.table.IsThousands(cmsField):
			fieldData[cmsField] = normalize.FormatThousands(value)
		default:
			fieldData[cmsField] = value
		}
	}

	for field, enabled := range ExtractFeatures(entry.Fields[benefitsField]) {
		fieldData[field] = enabled
	}

	if cost, err := CalculateCost(entry.Fields); err != nil {
		// The entry still syncs, just without cost fields.
		slog.Debug("Cost calculation skipped", "id", entry.ExternalID, "error", err)
	} else {
		fieldData[effectiveRateCMSField] = cost.EffectiveRate
		fieldData[exampleCMSField] = cost.Example
	}

	if bankID, found := r.banks.Resolve(ctx, entry.Provider); found {
		fieldData[bankCMSField] = bankID
	}

	return cms.ItemPayload{FieldData: fieldData}
}
