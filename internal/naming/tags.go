package naming

import (
	"regexp"

	"github.com/jakmyungso/api/internal/namedb"
)

// tagRule maps a keyword pattern to the native-pool tags it implies.
type tagRule struct {
	pattern *regexp.Regexp
	tags    []string
}

// tagRules is the fixed keyword→tag table. Rules are evaluated in order;
// the first match against each probed text contributes its tags.
var tagRules = []tagRule{
	{regexp.MustCompile(`강인|강한|씩씩|용감|튼튼|힘찬|굳센`), []string{namedb.TagStrong, namedb.TagLively}},
	{regexp.MustCompile(`밝|환하|명랑|햇살|빛`), []string{namedb.TagBright, namedb.TagHopeful}},
	{regexp.MustCompile(`지혜|총명|똑똑|현명|슬기`), []string{namedb.TagWise, namedb.TagCalm}},
	{regexp.MustCompile(`따뜻|포근|다정|사랑`), []string{namedb.TagWarm, namedb.TagBright}},
	{regexp.MustCompile(`차분|조용|단정|은은`), []string{namedb.TagCalm, namedb.TagRefined}},
	{regexp.MustCompile(`맑|깨끗|청아|순수`), []string{namedb.TagClear, namedb.TagNature}},
	{regexp.MustCompile(`자연|나무|바다|하늘|숲|꽃`), []string{namedb.TagNature, namedb.TagClear}},
	{regexp.MustCompile(`희망|꿈|미래|소망`), []string{namedb.TagHopeful, namedb.TagBright}},
	{regexp.MustCompile(`고급|우아|기품|세련`), []string{namedb.TagRefined, namedb.TagCalm}},
	{regexp.MustCompile(`활발|활기|에너지|생기|경쾌`), []string{namedb.TagLively, namedb.TagBright}},
}

// defaultPreferredTags is used when no rule matches anything.
var defaultPreferredTags = []string{namedb.TagWarm, namedb.TagBright}

// PreferredTags derives the native-selector tag preferences from the
// request keywords and the top candidate's narrative fields. Each probed
// text contributes the tags of its first matching rule; the union is
// returned in rule order. An empty union falls back to a fixed neutral
// pair.
func PreferredTags(texts ...string) []string {
	selected := make(map[string]struct{})
	for _, text := range texts {
		if text == "" {
			continue
		}
		for _, rule := range tagRules {
			if rule.pattern.MatchString(text) {
				for _, tag := range rule.tags {
					selected[tag] = struct{}{}
				}
				break
			}
		}
	}
	if len(selected) == 0 {
		return append([]string(nil), defaultPreferredTags...)
	}

	ordered := make([]string, 0, len(selected))
	for _, rule := range tagRules {
		for _, tag := range rule.tags {
			if _, ok := selected[tag]; ok {
				ordered = append(ordered, tag)
				delete(selected, tag)
			}
		}
	}
	return ordered
}
