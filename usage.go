package phytocure

import "context"

// Field keys used when displaying a Usage.
const (
	FieldCommonName = "Common Name"
	FieldUses       = "Uses"
)

// MaxFieldLength is the number of characters of a usage field shown
// in a report.
const MaxFieldLength = 500

// Usage holds traditional-use information about a plant.
// Either field may be empty when the source does not provide it.
type Usage struct {
	CommonName string `json:"commonName,omitempty"`
	Uses       string `json:"uses,omitempty"`
}

// UsageField is a single labeled usage value.
type UsageField struct {
	Key   string
	Value string
}

// Fields returns the non-empty fields in display order.
func (u *Usage) Fields() []UsageField {
	if u == nil {
		return nil
	}
	var fields []UsageField
	if u.CommonName != "" {
		fields = append(fields, UsageField{Key: FieldCommonName, Value: u.CommonName})
	}
	if u.Uses != "" {
		fields = append(fields, UsageField{Key: FieldUses, Value: u.Uses})
	}
	return fields
}

// IsEmpty reports whether the usage carries no information.
func (u *Usage) IsEmpty() bool {
	return len(u.Fields()) == 0
}

// UsageSource looks up traditional-use information for a plant.
type UsageSource interface {
	// FetchUsage returns usage information for plantName.
	// Missing elements leave the corresponding field empty.
	FetchUsage(ctx context.Context, plantName string) (*Usage, error)
}

// LookupUsage fetches usage information on a best-effort basis.
// Errors from src are discarded and an empty Usage is returned instead;
// usage data only enriches a report and its absence is shown as
// "no additional information".
func LookupUsage(ctx context.Context, src UsageSource, plantName string) *Usage {
	usage, err := src.FetchUsage(ctx, plantName)
	if err != nil || usage == nil {
		return &Usage{}
	}
	return usage
}

// Truncate returns at most n characters of s. It counts runes so
// multi-byte text is never split mid-character.
func Truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
