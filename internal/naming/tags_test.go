package naming

import (
	"reflect"
	"testing"

	"github.com/jakmyungso/api/internal/namedb"
)

func TestPreferredTagsKeywordMatch(t *testing.T) {
	got := PreferredTags("강인한 아이로 자랐으면 해요")
	want := []string{namedb.TagStrong, namedb.TagLively}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("PreferredTags = %v, want %v", got, want)
	}
}

func TestPreferredTagsUnionAcrossTexts(t *testing.T) {
	got := PreferredTags("강인한", "맑고 깨끗한 기운")
	for _, want := range []string{namedb.TagStrong, namedb.TagLively, namedb.TagClear, namedb.TagNature} {
		found := false
		for _, tag := range got {
			if tag == want {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("tag %q missing from union %v", want, got)
		}
	}
}

func TestPreferredTagsFirstRuleWinsPerText(t *testing.T) {
	// 강인 appears before 지혜 in the rule order; only the first matching
	// rule contributes for a given text.
	got := PreferredTags("강인하고 지혜로운")
	want := []string{namedb.TagStrong, namedb.TagLively}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("PreferredTags = %v, want only the first rule's tags %v", got, want)
	}
}

func TestPreferredTagsDefault(t *testing.T) {
	got := PreferredTags("", "평범한 문장")
	want := []string{namedb.TagWarm, namedb.TagBright}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("PreferredTags = %v, want default %v", got, want)
	}
}
