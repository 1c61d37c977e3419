package directory

import "strings"

// Assembler folds classified lines into a sequence of complete records.
// It is an explicit two-state machine: either no record is open, or one
// record is open with a pending buffer of continuation text that flushes
// into that record's offer at the next record boundary.
type Assembler struct {
	records []ShopRecord
	open    bool
	pending []string
}

// NewAssembler returns an empty assembler.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// Feed consumes one line in document order.
func (a *Assembler) Feed(line string) {
	switch Classify(line) {
	case LineHeader:
		// Boilerplate never contributes to any record.
	case LineEntryStart:
		rec, ok := ParseEntry(line)
		if !ok {
			a.continuation(line)
			return
		}
		a.flush()
		a.records = append(a.records, rec)
		a.open = true
	case LineContinuation:
		a.continuation(line)
	}
}

// continuation buffers the line for the open record's offer.
// With no open record the line is dropped silently; the document is assumed
// to start with a table boundary before any continuation text.
func (a *Assembler) continuation(line string) {
	if !a.open {
		return
	}
	a.pending = append(a.pending, line)
}

// flush joins the pending buffer and appends it to the newest record's
// offer. Empty segments are dropped.
func (a *Assembler) flush() {
	if !a.open {
		return
	}
	var parts []string
	for _, p := range a.pending {
		if t := strings.TrimSpace(p); t != "" {
			parts = append(parts, t)
		}
	}
	a.pending = a.pending[:0]
	if len(parts) == 0 {
		return
	}
	last := &a.records[len(a.records)-1]
	joined := strings.Join(parts, " ")
	if last.Offer == "" {
		last.Offer = joined
	} else {
		last.Offer += " " + joined
	}
}

// Finish flushes the trailing buffer and returns all records sorted by
// ascending ID. IDs are assigned from row numerals, so parse order and ID
// order can differ when rows split across pages.
func (a *Assembler) Finish() []ShopRecord {
	a.flush()
	a.open = false
	SortByID(a.records)
	return a.records
}

// Assemble runs the full line sequence of a document through a fresh
// assembler. It is a pure function of its input.
func Assemble(lines []string) []ShopRecord {
	asm := NewAssembler()
	for _, line := range lines {
		asm.Feed(line)
	}
	return asm.Finish()
}
