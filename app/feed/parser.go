package feed

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
)

// Parser turns the raw Atom document into normalized entries.
type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

// Run parses the feed document. A missing entry id is a parse error for
// the whole run: the id is the only join key against the CMS, so an
// entry without one cannot be reconciled.
func (p *Parser) Run(data []byte) ([]Entry, error) {
	parsed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	entries := make([]Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		entry, err := p.normalizeItem(item)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (p *Parser) normalizeItem(item *gofeed.Item) (Entry, error) {
	entry := Entry{
		Title:  strings.TrimSpace(item.Title),
		Fields: p.extractFields(item),
	}

	entry.Provider = entry.Fields[providerField]

	externalID, err := extractID(item)
	if err != nil {
		return Entry{}, err
	}
	entry.ExternalID = externalID

	return entry, nil
}

// extractFields flattens every namespaced extension element into a map
// keyed by local tag name. Elements without text map to "".
func (p *Parser) extractFields(item *gofeed.Item) map[string]string {
	fields := make(map[string]string)
	for _, elements := range item.Extensions {
		for name, values := range elements {
			if len(values) == 0 {
				fields[name] = ""
				continue
			}
			fields[name] = strings.TrimSpace(values[0].Value)
		}
	}
	return fields
}

// extractID takes the last path segment of the entry's canonical id
// URI. The feed contract guarantees one per entry.
func extractID(item *gofeed.Item) (string, error) {
	guid := strings.TrimSpace(item.GUID)
	if guid == "" {
		return "", fmt.Errorf("entry %q has no id", item.Title)
	}

	segments := strings.Split(guid, "/")
	id := segments[len(segments)-1]
	if id == "" {
		return "", fmt.Errorf("entry %q has an empty id segment in %q", item.Title, guid)
	}

	return id, nil
}
