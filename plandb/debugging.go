package plandb

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// TableCounts returns row counts for every plandb table, for import
// verification and debugging.
func (c *Client) TableCounts() (map[string]int, error) {
	counts := make(map[string]int)
	for _, table := range []string{"airports", "utc_offset_records", "flight_requirements"} {
		var count int
		err := c.DB.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		counts[table] = count
	}
	return counts, nil
}

// DumpRequirement renders a stored requirement as a readable tree for
// debugging malformed documents.
func (c *Client) DumpRequirement(ctx context.Context, id string) (string, error) {
	req, err := c.GetRequirement(ctx, id)
	if err != nil {
		return "", err
	}
	return spew.Sdump(req), nil
}
