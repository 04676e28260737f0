package naming

import (
	"reflect"
	"testing"

	"github.com/jakmyungso/api/internal/domain"
)

func sampleResult() domain.NamingResult {
	return domain.NamingResult{
		Names: []domain.NameCandidate{
			validRawCandidate("김현우", "賢", "宇", 95),
			validRawCandidate("김서준", "瑞", "俊", 90),
			validRawCandidate("김도현", "道", "賢", 88),
		},
		Philosophy: "철학",
		Avoidance:  "주의",
	}
}

func TestMaskLockedNamesKeepsFirstCandidate(t *testing.T) {
	result := sampleResult()

	got := MaskLockedNames(result, true)
	if !reflect.DeepEqual(got.Names[0], result.Names[0]) {
		t.Fatalf("first candidate must stay intact")
	}
	for i := 1; i < len(got.Names); i++ {
		cand := got.Names[i]
		if cand.KoreanName != lockedNameText || cand.HanjaName != lockedNameText {
			t.Fatalf("candidate %d names not masked: %+v", i, cand)
		}
		if len(cand.HanjaChars) != 0 {
			t.Fatalf("candidate %d hanja breakdown not cleared", i)
		}
		if cand.FiveElements != lockedNarrativeText || cand.EnergyInterpretation != lockedNarrativeText {
			t.Fatalf("candidate %d narratives not masked: %+v", i, cand)
		}
		if cand.Score != 0 {
			t.Fatalf("candidate %d score not zeroed", i)
		}
	}
	if got.Philosophy != result.Philosophy {
		t.Fatalf("philosophy must survive masking")
	}
}

func TestMaskLockedNamesIdempotent(t *testing.T) {
	once := MaskLockedNames(sampleResult(), true)
	twice := MaskLockedNames(once, true)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("masking must be idempotent")
	}
}

func TestMaskLockedNamesNoOpWhenUnlocked(t *testing.T) {
	result := sampleResult()
	got := MaskLockedNames(result, false)
	if !reflect.DeepEqual(got, result) {
		t.Fatalf("unlocked result must pass through unchanged")
	}
}
