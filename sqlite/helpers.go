package sqlite

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/phytocure"
)

// timeFormat is a fixed-width UTC timestamp so stored values sort
// lexically in chronological order.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// parseTime parses a timestamp stored with timeFormat.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseTime(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(timeFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		if limit <= 0 {
			// SQLite requires LIMIT before OFFSET.
			query.WriteString(" LIMIT -1")
		}
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// hashCompounds computes xxHash over the compound rows and returns a hex string.
func hashCompounds(compounds []*phytocure.Compound) string {
	var b strings.Builder
	for _, c := range compounds {
		b.WriteString(c.Name)
		b.WriteByte('\t')
		b.WriteString(c.PercentageRange)
		b.WriteByte('\n')
	}
	h := xxhash.Sum64String(b.String())
	buf := make([]byte, 8)
	buf[0] = byte(h >> 56)
	buf[1] = byte(h >> 48)
	buf[2] = byte(h >> 40)
	buf[3] = byte(h >> 32)
	buf[4] = byte(h >> 24)
	buf[5] = byte(h >> 16)
	buf[6] = byte(h >> 8)
	buf[7] = byte(h)
	return hex.EncodeToString(buf)
}
