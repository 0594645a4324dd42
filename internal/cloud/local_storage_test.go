package cloud

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
)

func TestLocalDocumentStoreRoundTrip(t *testing.T) {
	store, err := NewLocalDocumentStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalDocumentStore() unexpected error: %v", err)
	}

	body := []byte("%PDF-1.4 content")
	if err := store.Put(context.Background(), "abc123.pdf", "application/pdf", bytes.NewReader(body), int64(len(body))); err != nil {
		t.Fatalf("Put() unexpected error: %v", err)
	}

	reader, err := store.Open(context.Background(), "abc123.pdf")
	if err != nil {
		t.Fatalf("Open() unexpected error: %v", err)
	}
	defer reader.Close()

	stored, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("reading stored document: %v", err)
	}
	if !bytes.Equal(stored, body) {
		t.Fatalf("stored body mismatch: %q", stored)
	}
}

func TestLocalDocumentStoreRejectsTraversalKeys(t *testing.T) {
	store, err := NewLocalDocumentStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalDocumentStore() unexpected error: %v", err)
	}

	for _, key := range []string{"", "../escape.pdf", "nested/key.pdf", `back\slash.pdf`, "..", "a..b.pdf"} {
		if err := store.Put(context.Background(), key, "application/pdf", strings.NewReader("x"), 1); err == nil {
			t.Errorf("Put(%q): expected an error", key)
		}
		if _, err := store.Open(context.Background(), key); err == nil {
			t.Errorf("Open(%q): expected an error", key)
		}
	}
}
