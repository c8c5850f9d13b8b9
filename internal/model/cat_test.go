package model

import (
	"errors"
	"testing"
)

func TestCatRecord_LoadTransitions(t *testing.T) {
	rec := NewCatRecord("abc", "https://cataas.com/cat/abc")

	if rec.Settled() {
		t.Fatal("new record should be pending")
	}

	rec.MarkLoaded([]byte("img"))
	if rec.LoadState != LoadStateLoaded || !rec.Settled() {
		t.Errorf("expected loaded, got %s", rec.LoadState)
	}

	rec.MarkFailed(errors.New("decode: bad header"))
	if rec.LoadState != LoadStateFailed {
		t.Errorf("expected failed, got %s", rec.LoadState)
	}
	if rec.Image != nil {
		t.Error("failed record should not keep image bytes")
	}
	if rec.LoadError != "decode: bad header" {
		t.Errorf("unexpected LoadError %q", rec.LoadError)
	}
}

func TestCatRecord_SettledNil(t *testing.T) {
	var rec *CatRecord
	if rec.Settled() {
		t.Error("nil record must not be settled")
	}
}

func TestCatRecord_ResourceName(t *testing.T) {
	tests := []struct {
		id       string
		mime     string
		url      string
		expected string
	}{
		{"a1", "image/jpeg", "https://cataas.com/cat/a1", "a1.jpg"},
		{"b2", "image/png", "", "b2.png"},
		{"c3", "image/gif", "", "c3.gif"},
		{"d4", "image/webp", "", "d4.webp"},
		{"e5", "", "https://example.com/e5.png", "e5.png"},
		{"", "", "https://example.com/cat", "cat"},
	}

	for _, test := range tests {
		rec := &CatRecord{ID: test.id, MimeType: test.mime, URL: test.url}
		if got := rec.ResourceName(); got != test.expected {
			t.Errorf("ResourceName() id=%q mime=%q = %q, expected %q", test.id, test.mime, got, test.expected)
		}
	}
}
