package naming

import (
	"testing"
	"time"
)

var parseNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestParseGenerationResponseFencedBlock(t *testing.T) {
	raw := "이름을 추천드립니다.\n```json\n{\"names\":[{\"koreanName\":\"김현우\",\"hanjaName\":\"賢宇\",\"score\":92}],\"philosophy\":\"철학\",\"avoidance\":\"주의\"}\n```\n감사합니다."

	got := ParseGenerationResponse(raw, parseNow)
	if len(got.Names) != 1 {
		t.Fatalf("parsed %d names, want 1", len(got.Names))
	}
	if got.Names[0].KoreanName != "김현우" || got.Names[0].Score != 92 {
		t.Fatalf("unexpected candidate: %+v", got.Names[0])
	}
	if got.Philosophy != "철학" || got.Avoidance != "주의" {
		t.Fatalf("philosophy/avoidance = %q/%q", got.Philosophy, got.Avoidance)
	}
	if !got.GeneratedAt.Equal(parseNow) {
		t.Fatalf("GeneratedAt = %v, want %v", got.GeneratedAt, parseNow)
	}
}

func TestParseGenerationResponseBraceFallback(t *testing.T) {
	raw := "서문 텍스트 {\"names\":[{\"koreanName\":\"이서연\",\"score\":88}],\"philosophy\":\"p\"} 후기"

	got := ParseGenerationResponse(raw, parseNow)
	if len(got.Names) != 1 || got.Names[0].KoreanName != "이서연" {
		t.Fatalf("brace fallback failed: %+v", got)
	}
}

func TestParseGenerationResponseFailureDegrades(t *testing.T) {
	got := ParseGenerationResponse("no json here at all", parseNow)
	if len(got.Names) != 0 {
		t.Fatalf("failed parse must yield empty names, got %d", len(got.Names))
	}
	if got.Philosophy != parseFailurePhilosophy {
		t.Fatalf("philosophy = %q, want fixed failure text", got.Philosophy)
	}
}

func TestParseGenerationResponseSortsByScore(t *testing.T) {
	raw := `{"names":[{"koreanName":"a","score":70},{"koreanName":"b","score":95},{"koreanName":"c","score":80}]}`

	got := ParseGenerationResponse(raw, parseNow)
	if got.Names[0].KoreanName != "b" || got.Names[1].KoreanName != "c" || got.Names[2].KoreanName != "a" {
		t.Fatalf("names not sorted by descending score: %+v", got.Names)
	}
}

func TestParseGenerationResponseCoercesLooseTypes(t *testing.T) {
	raw := `{"names":[{"koreanName":123,"hanjaName":null,"score":"88","hanjaChars":[{"character":"賢","strokes":"15"},"garbage"]}],"philosophy":null}`

	got := ParseGenerationResponse(raw, parseNow)
	if len(got.Names) != 1 {
		t.Fatalf("parsed %d names, want 1", len(got.Names))
	}
	cand := got.Names[0]
	if cand.KoreanName != "123" {
		t.Fatalf("numeric koreanName should coerce to string, got %q", cand.KoreanName)
	}
	if cand.HanjaName != "" {
		t.Fatalf("null hanjaName should coerce to empty, got %q", cand.HanjaName)
	}
	if cand.Score != 88 {
		t.Fatalf("string score should coerce to 88, got %d", cand.Score)
	}
	if len(cand.HanjaChars) != 1 || cand.HanjaChars[0].Strokes != 15 {
		t.Fatalf("hanjaChars coercion failed: %+v", cand.HanjaChars)
	}
	if got.Philosophy != "" {
		t.Fatalf("null philosophy should coerce to empty, got %q", got.Philosophy)
	}
}
