package naming

import (
	"encoding/json"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jakmyungso/api/internal/domain"
)

// parseFailurePhilosophy is returned when the generator response cannot be
// decoded. Parsing never raises; it degrades to an empty result.
const parseFailurePhilosophy = "작명 결과를 처리하는 중 오류가 발생했습니다."

var fencedBlockPattern = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")

// ParseGenerationResponse extracts and decodes the JSON object embedded in
// a free-form generator response. The first fenced code block wins; failing
// that, the substring between the first '{' and the last '}'. Every field
// is coerced to its expected type with safe defaults, and names are sorted
// by descending score.
func ParseGenerationResponse(raw string, now time.Time) domain.NamingResult {
	jsonStr := raw
	if m := fencedBlockPattern.FindStringSubmatch(raw); m != nil {
		jsonStr = strings.TrimSpace(m[1])
	} else {
		first := strings.Index(raw, "{")
		last := strings.LastIndex(raw, "}")
		if first != -1 && last != -1 && last > first {
			jsonStr = raw[first : last+1]
		}
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(jsonStr), &decoded); err != nil {
		return domain.NamingResult{
			Names:       []domain.NameCandidate{},
			Philosophy:  parseFailurePhilosophy,
			Avoidance:   "",
			GeneratedAt: now,
		}
	}
	return normalizeDecoded(decoded, now)
}

func normalizeDecoded(data map[string]any, now time.Time) domain.NamingResult {
	rawNames, _ := data["names"].([]any)

	names := make([]domain.NameCandidate, 0, len(rawNames))
	for _, item := range rawNames {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		names = append(names, domain.NameCandidate{
			KoreanName:           asString(obj["koreanName"]),
			HanjaName:            asString(obj["hanjaName"]),
			HanjaChars:           normalizeChars(obj["hanjaChars"]),
			StrokeAnalysis:       normalizeAnalysis(obj["strokeAnalysis"]),
			FiveElements:         asString(obj["fiveElements"]),
			EnergyInterpretation: asString(obj["energyInterpretation"]),
			Score:                asInt(obj["score"]),
		})
	}

	sort.SliceStable(names, func(i, j int) bool {
		return names[i].Score > names[j].Score
	})

	return domain.NamingResult{
		Names:       names,
		Philosophy:  asString(data["philosophy"]),
		Avoidance:   asString(data["avoidance"]),
		GeneratedAt: now,
	}
}

func normalizeChars(value any) []domain.HanjaChar {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	chars := make([]domain.HanjaChar, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		chars = append(chars, domain.HanjaChar{
			Character: asString(obj["character"]),
			Meaning:   asString(obj["meaning"]),
			Strokes:   asInt(obj["strokes"]),
			Element:   asString(obj["element"]),
		})
	}
	return chars
}

func normalizeAnalysis(value any) domain.StrokeAnalysis {
	obj, ok := value.(map[string]any)
	if !ok {
		return domain.StrokeAnalysis{}
	}
	grade := func(v any) domain.StrokeGrade {
		g, ok := v.(map[string]any)
		if !ok {
			return domain.StrokeGrade{}
		}
		return domain.StrokeGrade{
			Value:       asInt(g["value"]),
			Description: asString(g["description"]),
		}
	}
	return domain.StrokeAnalysis{
		CheonGyeok: grade(obj["cheongyeok"]),
		InGyeok:    grade(obj["ingyeok"]),
		JiGyeok:    grade(obj["jigyeok"]),
		OeGyeok:    grade(obj["oegyeok"]),
		ChongGyeok: grade(obj["chonggyeok"]),
	}
}

func asString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func asInt(value any) int {
	switch v := value.(type) {
	case float64:
		return int(math.Round(v))
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return int(math.Round(n))
		}
	case json.Number:
		if n, err := v.Float64(); err == nil {
			return int(math.Round(n))
		}
	}
	return 0
}
