package naming

import "github.com/jakmyungso/api/internal/domain"

// Locked-content placeholders.
const (
	lockedNameText      = "결제 후 공개"
	lockedNarrativeText = "결제 후 확인할 수 있어요"
)

// MaskLockedNames projects a result for a viewer who has not paid: the
// first candidate stays intact as a teaser, every other candidate has its
// name fields, hanja breakdown, and narratives replaced with fixed
// placeholders and its score zeroed. Pure and idempotent; a false lock
// flag returns the result unchanged.
func MaskLockedNames(result domain.NamingResult, shouldLock bool) domain.NamingResult {
	if !shouldLock {
		return result
	}

	masked := make([]domain.NameCandidate, len(result.Names))
	for i, name := range result.Names {
		if i == 0 {
			masked[i] = name
			continue
		}
		name.KoreanName = lockedNameText
		name.HanjaName = lockedNameText
		name.HanjaChars = []domain.HanjaChar{}
		name.FiveElements = lockedNarrativeText
		name.EnergyInterpretation = lockedNarrativeText
		name.Score = 0
		masked[i] = name
	}
	result.Names = masked
	return result
}
