// Package directory reconstructs partner-shop records from the reading-order
// text lines of the source PDF table. The table has no structural column
// markers after text extraction, so fields are recovered with token-position
// heuristics; every fallback favors emitting a usable partial record over
// dropping data.
package directory

import "sort"

// ShopRecord is one row of the partner-shop table.
// All string fields use "" as the canonical absent value.
type ShopRecord struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	County   string `json:"county"`
	District string `json:"district"`
	Address  string `json:"address"`
	Offer    string `json:"offer"`
}

// SortByID stably sorts records by ascending ID. IDs are expected to be
// unique, but a stable sort keeps assembly order for any duplicates.
func SortByID(records []ShopRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})
}
