package provider

import (
	"context"
	"testing"

	"manganovelsfeed/internal/domain"
)

func TestWebAceRedirects(t *testing.T) {
	t.Parallel()

	outcome, err := NewWebAce().RSS(context.Background(), "youngaceup:contents")
	if err != nil {
		t.Fatalf("RSS returned error: %v", err)
	}

	redirect, ok := outcome.(domain.RedirectOutcome)
	if !ok {
		t.Fatalf("unexpected outcome %T", outcome)
	}
	if redirect.Target != "https://web-ace.jp/youngaceup/feed/rss/contents/" {
		t.Fatalf("unexpected redirect target: %s", redirect.Target)
	}
}

func TestWebAceRedirectsWithoutSubNamespace(t *testing.T) {
	t.Parallel()

	outcome, err := NewWebAce().RSS(context.Background(), "youngaceup")
	if err != nil {
		t.Fatalf("RSS returned error: %v", err)
	}

	redirect, ok := outcome.(domain.RedirectOutcome)
	if !ok {
		t.Fatalf("unexpected outcome %T", outcome)
	}
	if redirect.Target != "https://web-ace.jp/youngaceup/feed/rss//" {
		t.Fatalf("unexpected redirect target: %s", redirect.Target)
	}
}

func TestUraSundayIsGone(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"", "anything", "123"} {
		outcome, err := NewUraSunday().RSS(context.Background(), id)
		if err != nil {
			t.Fatalf("RSS(%q) returned error: %v", id, err)
		}
		if _, ok := outcome.(domain.GoneOutcome); !ok {
			t.Fatalf("RSS(%q) = %T, want GoneOutcome", id, outcome)
		}
	}
}
