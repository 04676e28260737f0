package naming

import (
	"fmt"

	"github.com/jakmyungso/api/internal/domain"
	"github.com/jakmyungso/api/internal/namedb"
)

const (
	nativeAnalysisNote   = "순우리말/한글 이름은 한자 획수 분석 제외"
	withheldAnalysisNote = "획수 DB 미지원 한자 포함 (분석 보류)"
)

// placeholderAnalysis builds an all-zero analysis carrying the given note
// on every grade.
func placeholderAnalysis(note string) domain.StrokeAnalysis {
	grade := domain.StrokeGrade{Value: 0, Description: note}
	return domain.StrokeAnalysis{
		CheonGyeok: grade,
		InGyeok:    grade,
		JiGyeok:    grade,
		OeGyeok:    grade,
		ChongGyeok: grade,
	}
}

// NativeAnalysisPlaceholder is the fixed analysis attached to native-Korean
// candidates, for which stroke numerology does not apply.
func NativeAnalysisPlaceholder() domain.StrokeAnalysis {
	return placeholderAnalysis(nativeAnalysisNote)
}

// WithheldAnalysisPlaceholder is the fixed analysis attached when the
// stroke table does not cover every given-name character. A partially
// correct calculation is never produced.
func WithheldAnalysisPlaceholder() domain.StrokeAnalysis {
	return placeholderAnalysis(withheldAnalysisNote)
}

// shouldSkipStrokeAnalysis reports whether the candidate is hanja-free and
// therefore outside stroke numerology entirely.
func shouldSkipStrokeAnalysis(cand domain.NameCandidate) bool {
	if cand.HanjaName == SentinelPureNative || cand.HanjaName == SentinelNativeName {
		return true
	}
	for _, hc := range cand.HanjaChars {
		if r, ok := firstRune(hc.Character); ok && isHangulSyllable(r) {
			return true
		}
	}
	return false
}

// buildAnalysis computes the five grades from the surname stroke count and
// the first two given-name character stroke counts.
func buildAnalysis(surname, first, second int) domain.StrokeAnalysis {
	cheon := surname + 1
	in := surname + first
	ji := first + second
	oe := second + 1
	chong := surname + first + second

	return domain.StrokeAnalysis{
		CheonGyeok: domain.StrokeGrade{
			Value:       cheon,
			Description: fmt.Sprintf("성(%d)+1=%d", surname, cheon),
		},
		InGyeok: domain.StrokeGrade{
			Value:       in,
			Description: fmt.Sprintf("성(%d)+첫째(%d)=%d", surname, first, in),
		},
		JiGyeok: domain.StrokeGrade{
			Value:       ji,
			Description: fmt.Sprintf("첫째(%d)+둘째(%d)=%d", first, second, ji),
		},
		OeGyeok: domain.StrokeGrade{
			Value:       oe,
			Description: fmt.Sprintf("둘째(%d)+1=%d", second, oe),
		},
		ChongGyeok: domain.StrokeGrade{
			Value:       chong,
			Description: fmt.Sprintf("성(%d)+첫째(%d)+둘째(%d)=%d", surname, first, second, chong),
		},
	}
}

// ComputeStrokeAnalysis recomputes the candidate's five-grade numerology
// from the reference tables, overriding whatever the generator claimed.
// Hanja-free candidates always receive the not-applicable placeholder.
// When the surname or either of the first two characters is missing from
// the tables, the analysis degrades to the withheld placeholder rather
// than a partially correct one.
func ComputeStrokeAnalysis(surname string, cand domain.NameCandidate) domain.NameCandidate {
	if shouldSkipStrokeAnalysis(cand) {
		cand.StrokeAnalysis = NativeAnalysisPlaceholder()
		return cand
	}

	surnameStrokes, ok := namedb.LookupSurnameStrokes(surname)
	if !ok || len(cand.HanjaChars) < 2 {
		return cand
	}

	cand = CorrectStrokes(cand)

	firstEntry, firstOK := lookupCharEntry(cand.HanjaChars[0])
	secondEntry, secondOK := lookupCharEntry(cand.HanjaChars[1])
	if !firstOK || !secondOK {
		cand.StrokeAnalysis = WithheldAnalysisPlaceholder()
		return cand
	}

	cand.StrokeAnalysis = buildAnalysis(surnameStrokes, firstEntry.Strokes, secondEntry.Strokes)
	return cand
}

func lookupCharEntry(hc domain.HanjaChar) (namedb.HanjaEntry, bool) {
	r, ok := firstRune(hc.Character)
	if !ok {
		return namedb.HanjaEntry{}, false
	}
	return namedb.LookupHanja(r)
}
