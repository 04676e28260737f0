// Package naming implements the deterministic name-composition pipeline:
// normalizing untrusted generator output against the hanja reference
// tables, recomputing stroke numerology, blending in native-Korean names,
// and gating locked results.
package naming

import "strings"

// Sentinel values carried in the HanjaName field.
const (
	// SentinelPureNative marks generator output that declared itself a
	// native-Korean name.
	SentinelPureNative = "순우리말"
	// SentinelNativeName marks candidates synthesized from the native pool.
	SentinelNativeName = "순한글"
	// SentinelHanjaUnavailable marks candidates with no usable hanja
	// rendering. Never left blank.
	SentinelHanjaUnavailable = "한자 미제공"
)

// Result-set shape: three hanja-backed candidates followed by two native
// candidates.
const (
	HanjaNameCount  = 3
	NativeNameCount = 2
)

// isHanjaRune reports whether r is a true CJK ideograph.
func isHanjaRune(r rune) bool {
	switch {
	case r >= 0x3400 && r <= 0x4DBF:
		return true
	case r >= 0x4E00 && r <= 0x9FFF:
		return true
	case r >= 0xF900 && r <= 0xFAFF:
		return true
	}
	return false
}

// isHangulSyllable reports whether r is a precomposed hangul syllable.
func isHangulSyllable(r rune) bool {
	return r >= 0xAC00 && r <= 0xD7A3
}

// stripSurname returns the given-name part of a full name, removing the
// surname prefix when present.
func stripSurname(fullName, surname string) string {
	trimmed := strings.TrimSpace(fullName)
	if surname != "" && strings.HasPrefix(trimmed, surname) {
		return strings.TrimSpace(trimmed[len(surname):])
	}
	return trimmed
}

// ensureFullName guarantees the surname prefix on a candidate name.
func ensureFullName(koreanName, surname string) string {
	return surname + stripSurname(koreanName, surname)
}

// hasBatchim reports whether the final syllable of word carries a final
// consonant, which selects the topic particle.
func hasBatchim(word string) bool {
	runes := []rune(word)
	if len(runes) == 0 {
		return false
	}
	last := runes[len(runes)-1]
	if !isHangulSyllable(last) {
		return false
	}
	return (last-0xAC00)%28 != 0
}

// topicParticle returns 은 or 는 depending on the final batchim of word.
func topicParticle(word string) string {
	if hasBatchim(word) {
		return "은"
	}
	return "는"
}
