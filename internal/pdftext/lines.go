// Package pdftext turns positioned PDF text fragments into reading-order
// lines. The upstream extraction layer reports atomic fragments with 2D
// positions; rows are recovered by grouping fragments on identical rounded
// vertical positions.
package pdftext

import (
	"math"
	"sort"
	"strings"
)

// TextFragment is one positioned string token reported by the extraction
// layer. Fragments are produced once per page and never shared across pages.
type TextFragment struct {
	Text string
	X    float64
	Y    float64
}

// Line is the fragments of one page sharing a rounded vertical coordinate,
// joined left-to-right.
type Line struct {
	Page int
	Y    int
	Text string
}

// BuildLines groups a page's fragments into top-to-bottom lines.
// Fragments join the same line only when their Y positions round to the
// identical integer; there is no tolerance band, so producers with sub-pixel
// jitter within a row split that row. Accepted limitation.
// Fragment input order does not matter: lines are re-sorted by descending Y
// and fragments within a line by ascending X. Lines with empty text are
// dropped.
func BuildLines(page int, frags []TextFragment) []Line {
	rows := make(map[int][]TextFragment)
	for _, f := range frags {
		y := int(math.Round(f.Y))
		rows[y] = append(rows[y], f)
	}

	ys := make([]int, 0, len(rows))
	for y := range rows {
		ys = append(ys, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ys)))

	lines := make([]Line, 0, len(ys))
	for _, y := range ys {
		row := rows[y]
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })

		parts := make([]string, 0, len(row))
		for _, f := range row {
			parts = append(parts, f.Text)
		}
		text := strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
		if text == "" {
			continue
		}
		lines = append(lines, Line{Page: page, Y: y, Text: text})
	}
	return lines
}
