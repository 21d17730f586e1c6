// Package profile holds per-institution column mapping configuration. Bank
// export layouts vary widely, so the mapping is an explicit configuration
// object enumerated per institution, never inferred at the call site.
package profile

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Column locates one canonical field in a statement export. Header wins over
// Index when both are set; Index is 0-based.
type Column struct {
	Header string `yaml:"header,omitempty" json:"header,omitempty"`
	Index  *int   `yaml:"index,omitempty" json:"index,omitempty"`
}

// IsSet reports whether the column is mapped at all.
func (c Column) IsSet() bool {
	return c.Header != "" || c.Index != nil
}

// Columns maps canonical transaction fields to source columns.
type Columns struct {
	SourceAccount    Column `yaml:"source_account,omitempty" json:"source_account,omitempty"`
	RecipientAccount Column `yaml:"recipient_account,omitempty" json:"recipient_account,omitempty"`
	RecipientName    Column `yaml:"recipient_name,omitempty" json:"recipient_name,omitempty"`
	Amount           Column `yaml:"amount" json:"amount"`
	Currency         Column `yaml:"currency,omitempty" json:"currency,omitempty"`
	Description      Column `yaml:"description,omitempty" json:"description,omitempty"`
	Date             Column `yaml:"date" json:"date"`
}

// Profile describes how one institution's export maps onto canonical
// transactions and which locale conventions its values follow.
type Profile struct {
	Name            string  `yaml:"name" json:"name"`
	Institution     string  `yaml:"institution,omitempty" json:"institution,omitempty"`
	HasHeader       bool    `yaml:"has_header" json:"has_header"`
	DateOrder       string  `yaml:"date_order" json:"date_order"` // dmy | mdy | ymd
	DecimalComma    bool    `yaml:"decimal_comma" json:"decimal_comma"`
	DefaultCurrency string  `yaml:"default_currency,omitempty" json:"default_currency,omitempty"`
	Columns         Columns `yaml:"columns" json:"columns"`
}

// Validate checks the invariants the schema cannot express structurally.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile: name is required")
	}
	switch p.DateOrder {
	case "dmy", "mdy", "ymd":
	default:
		return fmt.Errorf("profile %s: date_order must be one of dmy, mdy, ymd", p.Name)
	}
	if !p.Columns.Amount.IsSet() {
		return fmt.Errorf("profile %s: columns.amount is required", p.Name)
	}
	if !p.Columns.Date.IsSet() {
		return fmt.Errorf("profile %s: columns.date is required", p.Name)
	}
	return nil
}

// schemaJSON validates ad-hoc profiles submitted as JSON through the API
// before they ever reach the extractor.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "date_order", "columns"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "institution": {"type": "string"},
    "has_header": {"type": "boolean"},
    "date_order": {"enum": ["dmy", "mdy", "ymd"]},
    "decimal_comma": {"type": "boolean"},
    "default_currency": {"type": "string", "maxLength": 3},
    "columns": {
      "type": "object",
      "required": ["amount", "date"],
      "additionalProperties": {
        "type": "object",
        "properties": {
          "header": {"type": "string"},
          "index": {"type": "integer", "minimum": 0}
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

var compiledSchema = jsonschema.MustCompileString("profile.schema.json", schemaJSON)

// ParseJSON validates raw JSON against the profile schema and decodes it.
func ParseJSON(raw []byte) (*Profile, error) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("profile json: %w", err)
	}
	if err := compiledSchema.Validate(v); err != nil {
		return nil, fmt.Errorf("profile schema: %w", err)
	}
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("profile json: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// ResolveIndex returns the 0-based column index for c given the header row,
// or -1 when the column cannot be resolved. Header matching is
// case-insensitive and trims whitespace.
func ResolveIndex(c Column, header []string) int {
	if c.Header != "" {
		want := strings.ToLower(strings.TrimSpace(c.Header))
		for i, h := range header {
			if strings.ToLower(strings.TrimSpace(h)) == want {
				return i
			}
		}
		// fuzzy contains, the way mixed-locale exports name columns
		for i, h := range header {
			if strings.Contains(strings.ToLower(h), want) {
				return i
			}
		}
		return -1
	}
	if c.Index != nil {
		return *c.Index
	}
	return -1
}
