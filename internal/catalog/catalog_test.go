package catalog

import (
	"errors"
	"testing"
)

func TestLookupKnownStrategies(t *testing.T) {
	c := New()
	for _, tag := range []string{StrategyCash, StrategySubjectTo, StrategyLeaseOption, StrategySellerFinancing, StrategyHybrid} {
		info, err := c.Lookup(tag)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", tag, err)
		}
		if info.Name == "" || info.Description == "" {
			t.Fatalf("Lookup(%q): incomplete entry %+v", tag, info)
		}
		if len(info.Pros) == 0 || len(info.Cons) == 0 {
			t.Fatalf("Lookup(%q): missing pros/cons", tag)
		}
	}
}

func TestLookupUnknownStrategy(t *testing.T) {
	c := New()
	_, err := c.Lookup("wholesale")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	c := New()
	entries := c.Entries()
	if len(entries) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(entries))
	}
	delete(entries, StrategyCash)
	if !c.Has(StrategyCash) {
		t.Fatal("mutating the returned map changed the catalog")
	}
}

func TestCashStrategyName(t *testing.T) {
	c := New()
	info, err := c.Lookup(StrategyCash)
	if err != nil {
		t.Fatal(err)
	}
	if info.Name != "All Cash" {
		t.Fatalf("unexpected cash strategy name %q", info.Name)
	}
}
