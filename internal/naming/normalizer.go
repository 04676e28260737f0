package naming

import (
	"strings"

	"github.com/jakmyungso/api/internal/domain"
	"github.com/jakmyungso/api/internal/namedb"
)

// CorrectStrokes replaces per-character strokes and element with the
// reference table's authoritative values wherever the character is known.
// Unknown characters are left untouched; values are never invented.
func CorrectStrokes(cand domain.NameCandidate) domain.NameCandidate {
	if len(cand.HanjaChars) == 0 {
		return cand
	}

	updated := make([]domain.HanjaChar, len(cand.HanjaChars))
	copy(updated, cand.HanjaChars)
	for i, hc := range updated {
		r, ok := firstRune(hc.Character)
		if !ok {
			continue
		}
		if entry, found := namedb.LookupHanja(r); found {
			updated[i].Strokes = entry.Strokes
			updated[i].Element = entry.Element
		}
	}
	cand.HanjaChars = updated
	return cand
}

// NormalizeHanjaName makes the HanjaName field internally consistent with
// HanjaChars. A blank or pure-native declaration with at least two real
// CJK characters is overwritten with their concatenation; a blank field
// with nothing to join becomes the unavailable sentinel.
func NormalizeHanjaName(cand domain.NameCandidate) domain.NameCandidate {
	joined := joinHanjaChars(cand.HanjaChars)
	trimmed := strings.TrimSpace(cand.HanjaName)

	if (trimmed == "" || trimmed == SentinelPureNative) && runeCount(joined) >= 2 {
		cand.HanjaName = joined
		return cand
	}
	if trimmed == "" {
		cand.HanjaName = SentinelHanjaUnavailable
	}
	return cand
}

// IsValidHanjaCandidate reports whether the candidate carries at least two
// true CJK ideographs and a usable hanja name. Used to rank candidates
// before composition.
func IsValidHanjaCandidate(cand domain.NameCandidate) bool {
	return runeCount(joinHanjaChars(cand.HanjaChars)) >= 2 &&
		cand.HanjaName != SentinelHanjaUnavailable
}

func joinHanjaChars(chars []domain.HanjaChar) string {
	var b strings.Builder
	for _, hc := range chars {
		r, ok := firstRune(hc.Character)
		if !ok || !isHanjaRune(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

func runeCount(s string) int {
	return len([]rune(s))
}
