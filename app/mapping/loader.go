package mapping

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed mapping.yml
var embedded []byte

// Table is the static feed attribute -> CMS field configuration.
// Loaded once at startup and never mutated afterwards.
type Table struct {
	Fields    map[string]string `yaml:"fields"`
	Sanitize  []string          `yaml:"sanitize"`
	Thousands []string          `yaml:"thousands"`

	sanitize  map[string]bool
	thousands map[string]bool
}

// Load parses the embedded mapping table, or the given file when path
// is non-empty.
func Load(path string) (*Table, error) {
	data := embedded
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read mapping file: %w", err)
		}
		data = fileData
	}

	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	if err := table.validate(); err != nil {
		return nil, fmt.Errorf("invalid mapping table: %w", err)
	}

	table.sanitize = toSet(table.Sanitize)
	table.thousands = toSet(table.Thousands)

	return &table, nil
}

func (t *Table) validate() error {
	if len(t.Fields) == 0 {
		return fmt.Errorf("at least one field mapping is required")
	}

	cmsFields := make(map[string]bool, len(t.Fields))
	for feedField, cmsField := range t.Fields {
		if feedField == "" || cmsField == "" {
			return fmt.Errorf("empty field name in mapping %q: %q", feedField, cmsField)
		}
		cmsFields[cmsField] = true
	}

	for _, field := range t.Sanitize {
		if !cmsFields[field] {
			return fmt.Errorf("sanitize field %q is not a mapped CMS field", field)
		}
	}
	for _, field := range t.Thousands {
		if !cmsFields[field] {
			return fmt.Errorf("thousands field %q is not a mapped CMS field", field)
		}
	}

	return nil
}

// IsSanitized reports whether the CMS field gets whitespace collapsed.
func (t *Table) IsSanitized(cmsField string) bool {
	return t.sanitize[cmsField]
}

// IsThousands reports whether the CMS field gets a thousands separator.
func (t *Table) IsThousands(cmsField string) bool {
	return t.thousands[cmsField]
}

func toSet(fields []string) map[string]bool {
	set := make(map[string]bool, len(fields))
	for _, field := range fields {
		set[field] = true
	}
	return set
}
