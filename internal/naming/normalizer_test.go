package naming

import (
	"testing"

	"github.com/jakmyungso/api/internal/domain"
)

func hanjaChars(chars ...string) []domain.HanjaChar {
	out := make([]domain.HanjaChar, 0, len(chars))
	for _, c := range chars {
		out = append(out, domain.HanjaChar{Character: c})
	}
	return out
}

func TestNormalizeHanjaNameJoinsDeclaredNative(t *testing.T) {
	cand := domain.NameCandidate{
		KoreanName: "김현우",
		HanjaName:  SentinelPureNative,
		HanjaChars: hanjaChars("賢", "宇"),
	}

	got := NormalizeHanjaName(cand)
	if got.HanjaName != "賢宇" {
		t.Fatalf("HanjaName = %q, want 賢宇", got.HanjaName)
	}
}

func TestNormalizeHanjaNameJoinsBlank(t *testing.T) {
	cand := domain.NameCandidate{
		HanjaName:  "  ",
		HanjaChars: hanjaChars("德", "宇"),
	}

	got := NormalizeHanjaName(cand)
	if got.HanjaName != "德宇" {
		t.Fatalf("HanjaName = %q, want 德宇", got.HanjaName)
	}
}

func TestNormalizeHanjaNameSetsUnavailableSentinel(t *testing.T) {
	cand := domain.NameCandidate{
		HanjaName:  "",
		HanjaChars: hanjaChars("하", "늘"),
	}

	got := NormalizeHanjaName(cand)
	if got.HanjaName != SentinelHanjaUnavailable {
		t.Fatalf("HanjaName = %q, want %q", got.HanjaName, SentinelHanjaUnavailable)
	}
}

func TestNormalizeHanjaNameKeepsDeclaredValue(t *testing.T) {
	cand := domain.NameCandidate{
		HanjaName:  "金賢宇",
		HanjaChars: hanjaChars("賢", "宇"),
	}

	got := NormalizeHanjaName(cand)
	if got.HanjaName != "金賢宇" {
		t.Fatalf("HanjaName = %q, want unchanged", got.HanjaName)
	}
}

func TestCorrectStrokesOverridesKnownCharacters(t *testing.T) {
	cand := domain.NameCandidate{
		HanjaChars: []domain.HanjaChar{
			{Character: "賢", Strokes: 3, Element: "화(火)"},
			{Character: "𫠠", Strokes: 99, Element: "수(水)"},
		},
	}

	got := CorrectStrokes(cand)
	if got.HanjaChars[0].Strokes != 15 {
		t.Fatalf("賢 strokes = %d, want db value 15", got.HanjaChars[0].Strokes)
	}
	if got.HanjaChars[0].Element == "화(火)" {
		t.Fatalf("賢 element should be replaced by the db value")
	}
	if got.HanjaChars[1].Strokes != 99 {
		t.Fatalf("unknown character must keep its claimed strokes, got %d", got.HanjaChars[1].Strokes)
	}
}

func TestIsValidHanjaCandidate(t *testing.T) {
	cases := []struct {
		name string
		cand domain.NameCandidate
		want bool
	}{
		{
			name: "two real hanja",
			cand: domain.NameCandidate{HanjaName: "賢宇", HanjaChars: hanjaChars("賢", "宇")},
			want: true,
		},
		{
			name: "single hanja",
			cand: domain.NameCandidate{HanjaName: "賢", HanjaChars: hanjaChars("賢")},
			want: false,
		},
		{
			name: "hangul masquerading as hanja",
			cand: domain.NameCandidate{HanjaName: "현우", HanjaChars: hanjaChars("현", "우")},
			want: false,
		},
		{
			name: "unavailable sentinel",
			cand: domain.NameCandidate{HanjaName: SentinelHanjaUnavailable, HanjaChars: hanjaChars("賢", "宇")},
			want: false,
		},
	}

	for _, tc := range cases {
		if got := IsValidHanjaCandidate(tc.cand); got != tc.want {
			t.Fatalf("%s: IsValidHanjaCandidate = %v, want %v", tc.name, got, tc.want)
		}
	}
}
