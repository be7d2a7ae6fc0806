// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package store_test

import (
	"path/filepath"
	"testing"

	"github.com/playbymail/paleoparse/internal/store"
)

func TestPutGetTable_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	db, err := store.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	if err := db.PutTable("abc123", "sample.txt", []byte(`{"columns":["a"]}`)); err != nil {
		t.Fatalf("PutTable: %v", err)
	}
	got, ok, err := db.GetTable("abc123")
	if err != nil {
		t.Fatalf("GetTable: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(got) != `{"columns":["a"]}` {
		t.Errorf("payload = %s", got)
	}
}

func TestGetTable_MissReturnsFalse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	db, err := store.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	_, ok, err := db.GetTable("does-not-exist")
	if err != nil {
		t.Fatalf("GetTable: %v", err)
	}
	if ok {
		t.Error("expected cache miss")
	}
}

func TestPutSearchResult_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	db, err := store.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	if err := db.PutSearchResult("req-1", "uranium dates", []byte(`[]`)); err != nil {
		t.Fatalf("PutSearchResult: %v", err)
	}
	got, ok, err := db.GetSearchResult("req-1")
	if err != nil {
		t.Fatalf("GetSearchResult: %v", err)
	}
	if !ok || string(got) != "[]" {
		t.Errorf("got %s, %v", got, ok)
	}
}
