package directory

import (
	"regexp"
	"strings"
)

// LineKind is the classification of one extracted text line.
type LineKind int

const (
	// LineHeader is page boilerplate (title, page counter, column headers,
	// footnote). Header lines are discarded unconditionally.
	LineHeader LineKind = iota
	// LineEntryStart begins a new shop record.
	LineEntryStart
	// LineContinuation extends the offer text of the open record.
	LineContinuation
)

func (k LineKind) String() string {
	switch k {
	case LineHeader:
		return "header"
	case LineEntryStart:
		return "entry_start"
	case LineContinuation:
		return "continuation"
	default:
		return "unknown"
	}
}

const (
	docTitle = "桃園市政府員工卡特約商店名單及優惠措施一覽表"
	footnote = "備註：詳細優惠內容請洽各特約商店"
)

// Column headers appear in two spacings depending on how the producer
// fragmented the header row.
var columnHeaderPrefixes = []string{
	"編 號 分 類",
	"編號 分類",
}

var (
	pagePattern = regexp.MustCompile(`第\s*\d+\s*頁，共\s*\d+\s*頁`)

	// entryStartPattern: row number, then the two-token category code
	// (major + minor classification), then the rest of the row. Category
	// labels are assumed to never exceed 4 Han characters.
	entryStartPattern = regexp.MustCompile(`^(\d{1,3})\s+(\p{Han}{1,4})\s+(\p{Han}{1,4})\s+(.+)$`)
)

// Classify decides what role a line plays in the table.
// Anything that is neither boilerplate nor a record start is a continuation;
// continuations are only meaningful while a record is open.
func Classify(text string) LineKind {
	if isHeader(text) {
		return LineHeader
	}
	if entryStartPattern.MatchString(text) {
		return LineEntryStart
	}
	return LineContinuation
}

func isHeader(text string) bool {
	if strings.HasPrefix(text, docTitle) || strings.HasPrefix(text, footnote) {
		return true
	}
	if pagePattern.MatchString(text) {
		return true
	}
	for _, prefix := range columnHeaderPrefixes {
		if strings.HasPrefix(text, prefix) {
			return true
		}
	}
	return false
}
