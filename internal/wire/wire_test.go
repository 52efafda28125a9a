package wire

import (
	"testing"

	"github.com/example/storefinder/internal/adapters/source"
)

func TestNewResolver_HTTPSourceHasTimeout(t *testing.T) {
	src, err := newResolver().Resolve("https://example.test/stores.json")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	httpSrc, ok := src.(*source.HTTPSource)
	if !ok {
		t.Fatalf("expected *source.HTTPSource, got %T", src)
	}
	if got := httpSrc.Timeout(); got <= 0 || got > source.DefaultHTTPTimeout {
		t.Errorf("Timeout() = %v, want (0, %v]", got, source.DefaultHTTPTimeout)
	}
}

func TestNewResolver_EmptyLocationUsesCache(t *testing.T) {
	src, err := newResolver().Resolve("")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if src.Describe() != source.CacheScheme {
		t.Errorf("Describe() = %q, want %q", src.Describe(), source.CacheScheme)
	}
}
