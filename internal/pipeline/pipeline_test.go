package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/taoshops/shopdex/internal/cache"
	"github.com/taoshops/shopdex/internal/pdftext"
)

// stubSource serves canned fragments per page.
type stubSource struct {
	pages   [][]pdftext.TextFragment
	pageErr map[int]error
	closed  bool
}

func (s *stubSource) NumPages() int { return len(s.pages) }

func (s *stubSource) PageFragments(_ context.Context, pageNum int) ([]pdftext.TextFragment, error) {
	if err := s.pageErr[pageNum]; err != nil {
		return nil, err
	}
	return s.pages[pageNum-1], nil
}

func (s *stubSource) Close() error {
	s.closed = true
	return nil
}

func row(y float64, texts ...string) []pdftext.TextFragment {
	frags := make([]pdftext.TextFragment, len(texts))
	for i, txt := range texts {
		frags[i] = pdftext.TextFragment{Text: txt, X: float64(i * 50), Y: y}
	}
	return frags
}

func newStubPipeline(store cache.Store, src *stubSource) *Pipeline {
	p := New(store)
	p.OpenDocument = func(string) (pdftext.Source, error) { return src, nil }
	return p
}

func twoPageSource() *stubSource {
	page1 := append(
		row(760, "桃園市政府員工卡特約商店名單及優惠措施一覽表"),
		append(
			row(740, "編號", "分類", "店家名稱", "聯絡電話", "縣市", "區域", "地址", "提供之優惠"),
			append(
				row(720, "2", "購", "物", "全聯福利中心", "桃園市", "平鎮區", "延平路99號", "全館95折"),
				row(700, "1", "餐", "飲", "麥味登", "03-1234567", "桃園市", "中壇區", "中山路100號", "消費滿百折20元")...,
			)...,
		)...,
	)
	page2 := append(
		row(760, "第 2 頁，共 2 頁"),
		row(740, "另贈紅茶一杯")...,
	)
	return &stubSource{pages: [][]pdftext.TextFragment{page1, page2}}
}

func TestLoadFullDocument(t *testing.T) {
	src := twoPageSource()
	store := cache.NewMemoryStore(cache.DefaultTTL)
	p := newStubPipeline(store, src)

	res, err := p.Load(t.Context(), Request{PDFPath: "shops.pdf"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if res.FromCache {
		t.Error("first load must not come from cache")
	}
	if res.Pages != 2 {
		t.Errorf("Pages = %d, want 2", res.Pages)
	}
	if res.RunID == "" {
		t.Error("RunID must be set")
	}
	if !src.closed {
		t.Error("source must be closed after load")
	}

	if len(res.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(res.Records))
	}
	// Sorted by ID even though record 2 appears higher on the page.
	if res.Records[0].ID != 1 || res.Records[1].ID != 2 {
		t.Errorf("records out of ID order: %+v", res.Records)
	}
	// The page-2 continuation line merges into the last open record,
	// which is record 1 (it is lower on page 1).
	if want := "消費滿百折20元 另贈紅茶一杯"; res.Records[0].Offer != want {
		t.Errorf("record 1 offer = %q, want %q", res.Records[0].Offer, want)
	}

	if store.Puts() != 1 {
		t.Errorf("cache Puts = %d, want 1", store.Puts())
	}
}

func TestLoadServesFromCache(t *testing.T) {
	src := twoPageSource()
	store := cache.NewMemoryStore(cache.DefaultTTL)
	p := newStubPipeline(store, src)

	if _, err := p.Load(t.Context(), Request{PDFPath: "shops.pdf"}); err != nil {
		t.Fatalf("first Load: %v", err)
	}

	// Poison the source: a cache hit must not touch it.
	p.OpenDocument = func(string) (pdftext.Source, error) {
		t.Error("cache hit must not open the document")
		return nil, errors.New("unreachable")
	}

	res, err := p.Load(t.Context(), Request{PDFPath: "shops.pdf"})
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if !res.FromCache {
		t.Error("second load should come from cache")
	}
	if len(res.Records) != 2 {
		t.Errorf("got %d cached records, want 2", len(res.Records))
	}
}

func TestLoadSkipCache(t *testing.T) {
	store := cache.NewMemoryStore(cache.DefaultTTL)
	p := newStubPipeline(store, twoPageSource())

	if _, err := p.Load(t.Context(), Request{PDFPath: "shops.pdf"}); err != nil {
		t.Fatalf("first Load: %v", err)
	}

	p.OpenDocument = func(string) (pdftext.Source, error) { return twoPageSource(), nil }
	res, err := p.Load(t.Context(), Request{PDFPath: "shops.pdf", SkipCache: true})
	if err != nil {
		t.Fatalf("Load with SkipCache: %v", err)
	}
	if res.FromCache {
		t.Error("SkipCache load must re-parse")
	}
	if store.Puts() != 2 {
		t.Errorf("cache Puts = %d, want 2 (skip still writes back)", store.Puts())
	}
}

func TestLoadExtractionFailureIsTerminal(t *testing.T) {
	src := twoPageSource()
	src.pageErr = map[int]error{2: errors.New("page torn")}
	p := newStubPipeline(cache.NewMemoryStore(cache.DefaultTTL), src)

	res, err := p.Load(t.Context(), Request{PDFPath: "shops.pdf"})
	if err == nil {
		t.Fatal("expected terminal error")
	}
	if res != nil {
		t.Errorf("no partial result allowed, got %+v", res)
	}
}

func TestLoadProgressCallback(t *testing.T) {
	t.Run("invoked_in_order", func(t *testing.T) {
		p := newStubPipeline(nil, twoPageSource())
		var stages []string
		_, err := p.Load(t.Context(), Request{
			PDFPath:  "shops.pdf",
			Progress: func(stage string) { stages = append(stages, stage) },
		})
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(stages) != 2 || stages[0] != StageExtract || stages[1] != StageParse {
			t.Errorf("stages = %v, want [extract parse]", stages)
		}
	})

	t.Run("panic_does_not_fail_load", func(t *testing.T) {
		p := newStubPipeline(nil, twoPageSource())
		res, err := p.Load(t.Context(), Request{
			PDFPath:  "shops.pdf",
			Progress: func(string) { panic("feedback exploded") },
		})
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(res.Records) != 2 {
			t.Errorf("got %d records, want 2", len(res.Records))
		}
	})
}

func TestLoadCacheWriteFailureIsNotFatal(t *testing.T) {
	store := cache.NewMemoryStore(cache.DefaultTTL)
	store.PutErr = errors.New("disk full")
	p := newStubPipeline(store, twoPageSource())

	res, err := p.Load(t.Context(), Request{PDFPath: "shops.pdf"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(res.Records) != 2 {
		t.Errorf("got %d records, want 2", len(res.Records))
	}
}

func TestLoadStaleCacheReparses(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := cache.NewMemoryStore(cache.DefaultTTL)
	store.Clock = func() time.Time { return now }
	p := newStubPipeline(store, twoPageSource())

	if _, err := p.Load(t.Context(), Request{PDFPath: "shops.pdf"}); err != nil {
		t.Fatalf("first Load: %v", err)
	}

	store.Clock = func() time.Time { return now.Add(25 * time.Hour) }
	p.OpenDocument = func(string) (pdftext.Source, error) { return twoPageSource(), nil }

	res, err := p.Load(t.Context(), Request{PDFPath: "shops.pdf"})
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if res.FromCache {
		t.Error("stale cache must force a re-parse")
	}
}
