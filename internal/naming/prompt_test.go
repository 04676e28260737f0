package naming

import (
	"strings"
	"testing"

	"github.com/jakmyungso/api/internal/domain"
)

func TestBuildUserPromptHanjaMode(t *testing.T) {
	prompt := BuildUserPrompt(PromptParams{
		Surname:  "김",
		Gender:   domain.GenderMale,
		Birth:    &domain.BirthInfo{Year: 2024, Month: 3, Day: 1, Hour: 10, Minute: 30, HourKnown: true},
		Keywords: "강인한",
	})

	for _, want := range []string{"성(姓): 김", "성별: 남자", "생년월일: 2024년 3월 1일 10시 30분", "원하는 느낌/키워드: 강인한", "한자 작명 모드"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestBuildUserPromptNativeMode(t *testing.T) {
	prompt := BuildUserPrompt(PromptParams{
		Surname:        "이",
		Gender:         domain.GenderFemale,
		KoreanNameOnly: true,
	})

	if !strings.Contains(prompt, "성별: 여자") {
		t.Fatalf("prompt missing gender line")
	}
	if !strings.Contains(prompt, "순우리말 이름") {
		t.Fatalf("prompt missing native mode instruction")
	}
	if strings.Contains(prompt, "생년월일") {
		t.Fatalf("prompt should omit birth line when absent")
	}
}

func TestTopicParticle(t *testing.T) {
	cases := map[string]string{
		"하늘": "은",
		"나래": "는",
		"한솔": "은",
		"누리": "는",
	}
	for word, want := range cases {
		if got := topicParticle(word); got != want {
			t.Fatalf("topicParticle(%q) = %q, want %q", word, got, want)
		}
	}
}
