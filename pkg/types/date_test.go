package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSON(t *testing.T) {
	type payload struct {
		Due Date `json:"due"`
	}

	var got payload
	if err := json.Unmarshal([]byte(`{"due": "2023-10-21"}`), &got); err != nil {
		t.Fatalf("unmarshal value: %v", err)
	}
	if got.Due.String() != "2023-10-21" {
		t.Fatalf("unexpected date %s", got.Due)
	}

	out, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"due":"2023-10-21"}` {
		t.Fatalf("unexpected json %s", out)
	}

	got = payload{}
	if err := json.Unmarshal([]byte(`{"due": null}`), &got); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !got.Due.IsZero() {
		t.Fatalf("expected zero date, got %s", got.Due)
	}

	if err := json.Unmarshal([]byte(`{"due": "21/10/2023"}`), &got); err == nil {
		t.Fatal("expected layout error")
	}
}

func TestDateAddDaysCrossesMonth(t *testing.T) {
	created := NewDate(time.Date(2023, time.October, 21, 17, 45, 0, 0, time.UTC))
	due := created.AddDays(30)
	if due.String() != "2023-11-20" {
		t.Fatalf("expected 2023-11-20, got %s", due)
	}
	if !created.Before(due) {
		t.Fatal("expected created before due")
	}
	if !created.SameDay(MustParseDate("2023-10-21")) {
		t.Fatal("expected time of day to be truncated")
	}
}
