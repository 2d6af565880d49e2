package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"manganovelsfeed/internal/dates"
	"manganovelsfeed/internal/domain"
	"manganovelsfeed/internal/fetch"
)

const storiaPage = `<!DOCTYPE html>
<html>
<head>
  <title>テスト作品 | ストーリアダッシュ</title>
  <meta name="description" content="作品のあらすじ">
</head>
<body>
<ul class="episode_list">
  <li><a href="/manga/test/103/">第3話</a><dl><dt>公開日</dt><dd>01月01日</dd></dl></li>
  <li class="locked"><a href="/manga/test/102/">第2.5話</a><dl><dt>公開日</dt><dd>12月31日</dd></dl></li>
  <li><a href="/manga/test/101/">第2話</a><dl><dt>公開日</dt><dd>12月25日</dd></dl></li>
  <li><a href="/manga/test/100/">お知らせ</a><dl><dt>作者</dt><dd>だれか</dd></dl></li>
</ul>
</body>
</html>`

func newStoriaForTest(t *testing.T, page string) (*Storia, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	t.Cleanup(server.Close)

	s := NewStoria(fetch.NewClient(server.Client(), ""), nil)
	s.base = server.URL
	s.now = func() time.Time {
		return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	}
	return s, server
}

func TestStoriaRSS(t *testing.T) {
	t.Parallel()

	s, server := newStoriaForTest(t, storiaPage)

	outcome, err := s.RSS(context.Background(), "test")
	if err != nil {
		t.Fatalf("RSS returned error: %v", err)
	}

	fo, ok := outcome.(domain.FeedOutcome)
	if !ok {
		t.Fatalf("unexpected outcome %T", outcome)
	}

	f := fo.Feed
	if f.Title != "テスト作品 | ストーリアダッシュ" {
		t.Fatalf("unexpected channel title: %q", f.Title)
	}
	if f.Description != "作品のあらすじ" {
		t.Fatalf("unexpected channel description: %q", f.Description)
	}

	// Locked and dateless entries are excluded; year-less dates resolve
	// across the year boundary.
	if len(f.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(f.Items))
	}
	if f.Items[0].Title != "第3話" || f.Items[1].Title != "第2話" {
		t.Fatalf("unexpected items: %q, %q", f.Items[0].Title, f.Items[1].Title)
	}
	if want := time.Date(2024, time.January, 1, 0, 0, 0, 0, dates.JST); !f.Items[0].PublishedAt.Equal(want) {
		t.Fatalf("unexpected first publish date: %v", f.Items[0].PublishedAt)
	}
	if want := time.Date(2023, time.December, 25, 0, 0, 0, 0, dates.JST); !f.Items[1].PublishedAt.Equal(want) {
		t.Fatalf("year rollover not applied: %v", f.Items[1].PublishedAt)
	}
	if want := server.URL + "/manga/test/103/"; f.Items[0].Link != want || f.Items[0].GUID != want {
		t.Fatalf("unexpected item link: %s", f.Items[0].Link)
	}
}

func TestStoriaRSSRejectsChangedLayout(t *testing.T) {
	t.Parallel()

	page := `<html><head><title>t</title></head><body>
	<ul class="episode_list">
	  <li>
	    <a href="/manga/test/1/">第1話</a><a href="/manga/test/1/extra/">おまけ</a>
	    <dl><dt>公開日</dt><dd>06月01日</dd></dl>
	  </li>
	</ul>
	</body></html>`

	s, _ := newStoriaForTest(t, page)

	_, err := s.RSS(context.Background(), "test")
	var structureErr *domain.StructureError
	if !errors.As(err, &structureErr) {
		t.Fatalf("expected StructureError, got %v", err)
	}
}
