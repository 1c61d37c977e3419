package pdftext

import (
	"reflect"
	"testing"
)

func TestBuildLinesReadingOrder(t *testing.T) {
	// Fragments arrive unordered; output must be top-to-bottom then
	// left-to-right.
	frags := []TextFragment{
		{Text: "中山路100號", X: 300, Y: 700.2},
		{Text: "12", X: 10, Y: 700.4},
		{Text: "麥味登", X: 100, Y: 699.8},
		{Text: "第二列", X: 10, Y: 650},
	}

	lines := BuildLines(1, frags)
	want := []Line{
		{Page: 1, Y: 700, Text: "12 麥味登 中山路100號"},
		{Page: 1, Y: 650, Text: "第二列"},
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("BuildLines = %+v, want %+v", lines, want)
	}
}

func TestBuildLinesExactRounding(t *testing.T) {
	// No tolerance band: 700.4 and 700.6 round to different integers and
	// split the row.
	frags := []TextFragment{
		{Text: "左", X: 10, Y: 700.6},
		{Text: "右", X: 20, Y: 700.4},
	}

	lines := BuildLines(1, frags)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 (jitter across rounding boundary splits)", len(lines))
	}
	if lines[0].Text != "左" || lines[1].Text != "右" {
		t.Errorf("lines = %+v", lines)
	}
}

func TestBuildLinesCollapsesWhitespace(t *testing.T) {
	frags := []TextFragment{
		{Text: "  12 ", X: 10, Y: 100},
		{Text: " 餐  飲 ", X: 50, Y: 100},
	}

	lines := BuildLines(2, frags)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if want := "12 餐 飲"; lines[0].Text != want {
		t.Errorf("text = %q, want %q", lines[0].Text, want)
	}
}

func TestBuildLinesDropsEmpty(t *testing.T) {
	frags := []TextFragment{
		{Text: "   ", X: 10, Y: 100},
		{Text: "", X: 20, Y: 100},
		{Text: "內容", X: 10, Y: 90},
	}

	lines := BuildLines(1, frags)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].Text != "內容" {
		t.Errorf("text = %q, want 內容", lines[0].Text)
	}
}

func TestBuildLinesEmptyPage(t *testing.T) {
	if lines := BuildLines(1, nil); len(lines) != 0 {
		t.Errorf("BuildLines(nil) = %+v, want empty", lines)
	}
}
