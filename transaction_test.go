package secdiff

import (
	"errors"
	"strings"
	"testing"
)

func TestApplyTransaction(t *testing.T) {
	originalText := "This is the original text."
	newText := "This is the updated text."
	patches := CreatePatches(originalText, newText)

	section := NewSection("test_section", originalText)
	txn := NewTransaction(patches)

	updated, err := ApplyTransaction(section, txn)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if updated.Text != newText {
		t.Errorf("text: got %q, want %q", updated.Text, newText)
	}
	if updated.SectionType != "test_section" {
		t.Errorf("section type: got %q, want %q", updated.SectionType, "test_section")
	}
}

func TestApplyTransactionPreservesSectionType(t *testing.T) {
	for _, tt := range roundTripTests {
		t.Run(tt.name, func(t *testing.T) {
			sec := NewSection(tt.name, tt.old)
			txn := NewTransaction(CreatePatches(tt.old, tt.new))
			updated, err := ApplyTransaction(sec, txn)
			if err != nil {
				t.Fatalf("apply failed: %v", err)
			}
			if updated.SectionType != sec.SectionType {
				t.Errorf("section type changed: got %q, want %q", updated.SectionType, sec.SectionType)
			}
			if updated.Text != tt.new {
				t.Errorf("text: got %q, want %q", updated.Text, tt.new)
			}
		})
	}
}

func TestApplyTransactionNonMutation(t *testing.T) {
	sec := NewSection("Body", "before")
	txn := NewTransaction(CreatePatches("before", "after"))
	updated, err := ApplyTransaction(sec, txn)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if sec.Text != "before" {
		t.Errorf("input section mutated: %q", sec.Text)
	}
	if updated.Text != "after" {
		t.Errorf("got %q, want %q", updated.Text, "after")
	}
}

func TestApplyTransactionMalformed(t *testing.T) {
	sec := NewSection("Body", "text")
	_, err := ApplyTransaction(sec, NewTransaction("@@ garbage"))
	if !errors.Is(err, ErrBadPatch) {
		t.Errorf("got %v, want ErrBadPatch", err)
	}
}

func TestMergeTransaction(t *testing.T) {
	sec := NewSection("config", `{"title":"Intro","draft":true}`)
	txn := NewMergeTransaction(`{"draft":false,"author":"pat"}`)
	updated, err := ApplyTransaction(sec, txn)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if updated.SectionType != "config" {
		t.Errorf("section type changed: %q", updated.SectionType)
	}
	for _, want := range []string{`"title":"Intro"`, `"draft":false`, `"author":"pat"`} {
		if !strings.Contains(updated.Text, want) {
			t.Errorf("result %q missing %s", updated.Text, want)
		}
	}
}

func TestMergeTransactionMalformed(t *testing.T) {
	sec := NewSection("config", `{"title":"Intro"}`)
	if _, err := ApplyTransaction(sec, NewMergeTransaction("not json")); err == nil {
		t.Error("expected error for malformed merge patch")
	}
	sec = NewSection("config", "not json")
	if _, err := ApplyTransaction(sec, NewMergeTransaction(`{"a":1}`)); err == nil {
		t.Error("expected error for non-JSON section text")
	}
}

func TestUnknownKind(t *testing.T) {
	sec := NewSection("Body", "text")
	if _, err := ApplyTransaction(sec, Transaction{Patches: "", Kind: Kind(42)}); err == nil {
		t.Error("expected error for unknown kind")
	}
}
