package naming

import (
	"fmt"
	"strings"

	"github.com/jakmyungso/api/internal/domain"
	"github.com/jakmyungso/api/internal/namedb"
)

// nativeNameSource credits the curated pool in native candidate output.
const nativeNameSource = "나무위키 고유어 이름 문서 5.1~5.14 구간"

// mixGuide is appended to every composed philosophy text.
const mixGuide = "추천 구성: 한자 이름 3개 + 순한글 이름 2개 (나무위키 고유어 이름 5.1~5.14 기반)"

const (
	fallbackHanjaScore = 74
	nativeBaseScore    = 84
	nativeScoreStep    = 3
	fallbackPairStride = 37
)

// ComposeParams carries the request fields that shape composition.
type ComposeParams struct {
	Surname  string
	Gender   domain.Gender
	Birth    *domain.BirthInfo
	Keywords string
}

// Seed builds the deterministic selection seed for these parameters.
// Distinct requests vary the seed; identical requests reproduce it.
func (p ComposeParams) Seed() string {
	birth := [5]string{"", "", "", "", ""}
	if b := p.Birth; b != nil {
		if b.Year > 0 {
			birth[0] = fmt.Sprintf("%d", b.Year)
		}
		if b.Month > 0 {
			birth[1] = fmt.Sprintf("%d", b.Month)
		}
		if b.Day > 0 {
			birth[2] = fmt.Sprintf("%d", b.Day)
		}
		if b.HourKnown {
			birth[3] = fmt.Sprintf("%d", b.Hour)
			birth[4] = fmt.Sprintf("%d", b.Minute)
		}
	}
	parts := []string{
		p.Surname,
		string(p.Gender),
		birth[0], birth[1], birth[2], birth[3], birth[4],
		p.Keywords,
	}
	return strings.Join(parts, "|")
}

// Compose builds the final fixed-shape candidate list from raw generator
// output: three hanja-backed candidates (synthesized fallbacks fill any
// gap) followed by two native-Korean candidates, every given name unique
// within the set. Composition never fails; malformed upstream fields
// degrade to placeholders.
func Compose(params ComposeParams, raw []domain.NameCandidate) []domain.NameCandidate {
	normalized := make([]domain.NameCandidate, 0, len(raw))
	for _, cand := range raw {
		cand = NormalizeHanjaName(cand)
		cand = CorrectStrokes(cand)
		cand = ComputeStrokeAnalysis(params.Surname, cand)
		normalized = append(normalized, cand)
	}

	// Valid hanja candidates first, original order preserved within each
	// partition.
	ordered := make([]domain.NameCandidate, 0, len(normalized))
	for _, cand := range normalized {
		if IsValidHanjaCandidate(cand) {
			ordered = append(ordered, cand)
		}
	}
	for _, cand := range normalized {
		if !IsValidHanjaCandidate(cand) {
			ordered = append(ordered, cand)
		}
	}

	usedGivenNames := make(map[string]struct{})
	selected := make([]domain.NameCandidate, 0, HanjaNameCount+NativeNameCount)

	for _, cand := range ordered {
		givenName := stripSurname(cand.KoreanName, params.Surname)
		if givenName == "" {
			continue
		}
		if _, used := usedGivenNames[givenName]; used {
			continue
		}
		cand.KoreanName = ensureFullName(cand.KoreanName, params.Surname)
		selected = append(selected, cand)
		usedGivenNames[givenName] = struct{}{}
		if len(selected) >= HanjaNameCount {
			break
		}
	}

	seed := params.Seed()
	offset := int(fnvHash(seed) % uint32(len(namedb.HanjaEntries)))
	for len(selected) < HanjaNameCount {
		fallback := synthesizeFallback(params.Surname, offset)
		offset++
		givenName := stripSurname(fallback.KoreanName, params.Surname)
		if _, used := usedGivenNames[givenName]; used {
			continue
		}
		fallback = ComputeStrokeAnalysis(params.Surname, fallback)
		selected = append(selected, fallback)
		usedGivenNames[givenName] = struct{}{}
	}

	preferred := preferredTagsForRequest(params.Keywords, selected)
	excludes := make([]string, 0, len(usedGivenNames))
	for name := range usedGivenNames {
		excludes = append(excludes, name)
	}

	natives := PickNativeNames(SelectorParams{
		Count:         NativeNameCount,
		Seed:          seed,
		ExcludeNames:  excludes,
		PreferredTags: preferred,
		Gender:        params.Gender,
	})
	for i, entry := range natives {
		selected = append(selected, synthesizeNative(params.Surname, entry, nativeBaseScore-i*nativeScoreStep))
	}

	return selected
}

// AppendMixGuide attaches the fixed composition note to a philosophy text.
func AppendMixGuide(philosophy string) string {
	base := strings.TrimSpace(philosophy)
	if base == "" {
		return mixGuide
	}
	return base + "\n\n" + mixGuide
}

// preferredTagsForRequest probes the request keywords and the top
// candidate's narrative fields for tag affinity.
func preferredTagsForRequest(keywords string, selected []domain.NameCandidate) []string {
	texts := []string{keywords}
	if len(selected) > 0 {
		texts = append(texts, selected[0].FiveElements, selected[0].EnergyInterpretation)
	}
	return PreferredTags(texts...)
}

// synthesizeFallback pairs two table entries whose readings concatenate
// into a given name. The pairing is a deliberately simple cycle through
// the table; it carries no semantic validation of the combination.
func synthesizeFallback(surname string, offset int) domain.NameCandidate {
	entries := namedb.HanjaEntries
	first := entries[offset%len(entries)]
	second := entries[(offset+fallbackPairStride)%len(entries)]
	givenName := first.Reading + second.Reading

	return domain.NameCandidate{
		KoreanName: surname + givenName,
		HanjaName:  surname + first.Character + second.Character,
		HanjaChars: []domain.HanjaChar{
			{
				Character: first.Character,
				Meaning:   first.Meaning,
				Strokes:   first.Strokes,
				Element:   first.Element,
			},
			{
				Character: second.Character,
				Meaning:   second.Meaning,
				Strokes:   second.Strokes,
				Element:   second.Element,
			},
		},
		FiveElements:         "기본 한자 조합으로 균형 잡힌 구성을 만들었습니다.",
		EnergyInterpretation: "한자 추천 수량이 부족할 때를 대비한 보정 이름입니다.",
		Score:                fallbackHanjaScore,
	}
}

// synthesizeNative wraps a native pool entry as a candidate.
func synthesizeNative(surname string, entry namedb.NativeNameEntry, score int) domain.NameCandidate {
	particle := topicParticle(entry.Name)
	return domain.NameCandidate{
		KoreanName: surname + entry.Name,
		HanjaName:  SentinelNativeName,
		HanjaChars: []domain.HanjaChar{
			{
				Character: "-",
				Meaning:   fmt.Sprintf("%s%s 순한글 이름(한자 미사용)입니다. %s", entry.Name, particle, entry.Meaning),
				Strokes:   0,
				Element:   SentinelNativeName,
			},
		},
		StrokeAnalysis:       NativeAnalysisPlaceholder(),
		FiveElements:         fmt.Sprintf("%s%s 부드럽고 따뜻한 순한글 느낌을 살린 이름입니다.", entry.Name, particle),
		EnergyInterpretation: fmt.Sprintf("%s 목록에서 고른 순한글 이름입니다.", nativeNameSource),
		Score:                score,
	}
}
