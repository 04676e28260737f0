package namedb

import "testing"

func TestNativeNamesAreWellFormed(t *testing.T) {
	known := map[string]struct{}{
		TagBright: {}, TagCalm: {}, TagWarm: {}, TagStrong: {}, TagWise: {},
		TagRefined: {}, TagNature: {}, TagHopeful: {}, TagClear: {}, TagLively: {},
	}

	seen := make(map[string]struct{}, len(NativeNames))
	for i, entry := range NativeNames {
		if entry.Name == "" || entry.Meaning == "" {
			t.Fatalf("entry %d has empty fields: %+v", i, entry)
		}
		if len(entry.Tags) == 0 {
			t.Fatalf("entry %q has no tags", entry.Name)
		}
		for _, tag := range entry.Tags {
			if _, ok := known[tag]; !ok {
				t.Fatalf("entry %q has unknown tag %q", entry.Name, tag)
			}
		}
		if _, dup := seen[entry.Name]; dup {
			t.Fatalf("duplicate native name %q at index %d", entry.Name, i)
		}
		seen[entry.Name] = struct{}{}
	}
}

func TestIsFemaleLeaning(t *testing.T) {
	if !IsFemaleLeaning("다솜") {
		t.Fatalf("다솜 should be female leaning")
	}
	if IsFemaleLeaning("한솔") {
		t.Fatalf("한솔 should not be female leaning")
	}
}
