package namedb

import "testing"

func TestHanjaEntriesAreWellFormed(t *testing.T) {
	elements := map[string]struct{}{
		ElementWood:  {},
		ElementFire:  {},
		ElementEarth: {},
		ElementMetal: {},
		ElementWater: {},
	}

	seen := make(map[string]struct{}, len(HanjaEntries))
	for i, entry := range HanjaEntries {
		if entry.Character == "" || entry.Reading == "" || entry.Meaning == "" {
			t.Fatalf("entry %d has empty fields: %+v", i, entry)
		}
		if entry.Strokes <= 0 {
			t.Fatalf("entry %q has non-positive strokes %d", entry.Character, entry.Strokes)
		}
		if _, ok := elements[entry.Element]; !ok {
			t.Fatalf("entry %q has unknown element %q", entry.Character, entry.Element)
		}
		if _, dup := seen[entry.Character]; dup {
			t.Fatalf("duplicate character %q at index %d", entry.Character, i)
		}
		seen[entry.Character] = struct{}{}
	}
}

func TestLookupHanja(t *testing.T) {
	entry, ok := LookupHanja('德')
	if !ok {
		t.Fatalf("expected 德 to be present")
	}
	if entry.Strokes != 15 {
		t.Fatalf("德 strokes = %d, want 15", entry.Strokes)
	}
	if entry.Reading != "덕" {
		t.Fatalf("德 reading = %q, want 덕", entry.Reading)
	}

	if _, ok := LookupHanja('가'); ok {
		t.Fatalf("hangul syllable must not resolve to a hanja entry")
	}
}

func TestLookupSurnameStrokes(t *testing.T) {
	strokes, ok := LookupSurnameStrokes("김")
	if !ok || strokes != 8 {
		t.Fatalf("김 = (%d, %v), want (8, true)", strokes, ok)
	}

	if _, ok := LookupSurnameStrokes("없는성"); ok {
		t.Fatalf("unknown surname must miss")
	}

	strokes, ok = LookupSurnameStrokes(" 이 ")
	if !ok || strokes != 7 {
		t.Fatalf("surname lookup must trim whitespace, got (%d, %v)", strokes, ok)
	}
}
