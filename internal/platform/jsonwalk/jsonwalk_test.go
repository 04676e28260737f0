package jsonwalk

import (
	"encoding/json"
	"reflect"
	"testing"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return value
}

func TestFindFirstCaseInsensitive(t *testing.T) {
	payload := decode(t, `{"data":{"ORDERSTATUS":"DONE"}}`)
	got, ok := FindFirst(payload, NewKeySet("orderStatus"))
	if !ok || got != "DONE" {
		t.Fatalf("FindFirst = %v, %v", got, ok)
	}
}

func TestFindFirstNested(t *testing.T) {
	payload := decode(t, `{"result":{"order":{"payment":{"amount":550}}}}`)
	got, ok := FindFirst(payload, NewKeySet("amount"))
	if !ok {
		t.Fatalf("expected a match")
	}
	if got.(float64) != 550 {
		t.Fatalf("FindFirst = %v", got)
	}
}

func TestFindFirstDepthBound(t *testing.T) {
	// Eight levels deep is beyond the walker's reach.
	payload := decode(t, `{"a":{"b":{"c":{"d":{"e":{"f":{"g":{"status":"DONE"}}}}}}}}`)
	if _, ok := FindFirst(payload, NewKeySet("status")); ok {
		t.Fatalf("value beyond MaxDepth should not be found")
	}
}

func TestFindFirstSkipsNull(t *testing.T) {
	payload := decode(t, `{"status":null,"inner":{"status":"PAID"}}`)
	got, ok := FindFirst(payload, NewKeySet("status"))
	if !ok || got != "PAID" {
		t.Fatalf("FindFirst = %v, %v", got, ok)
	}
}

func TestCollectGathersAllMatches(t *testing.T) {
	payload := decode(t, `{"status":"PENDING","order":{"state":"DONE"},"items":[{"purchaseStatus":"PAID"}]}`)
	got := Collect(payload, NewKeySet("status", "state", "purchaseStatus"))
	if len(got) != 3 {
		t.Fatalf("Collect = %v, want 3 values", got)
	}
}

func TestCollectDeterministicOrder(t *testing.T) {
	payload := decode(t, `{"b":{"status":"SECOND"},"a":{"status":"FIRST"}}`)
	got := Collect(payload, NewKeySet("status"))
	want := []any{"FIRST", "SECOND"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Collect = %v, want %v", got, want)
	}
}

func TestCollectDescendsArrays(t *testing.T) {
	payload := decode(t, `[{"code":"SUCCESS"},{"nested":[{"code":"0"}]}]`)
	got := Collect(payload, NewKeySet("code"))
	if len(got) != 2 {
		t.Fatalf("Collect = %v, want 2 values", got)
	}
}

func TestFindFirstNoMatch(t *testing.T) {
	payload := decode(t, `{"foo":"bar"}`)
	if _, ok := FindFirst(payload, NewKeySet("status")); ok {
		t.Fatalf("expected no match")
	}
}
