package naming

import (
	"fmt"
	"sort"

	"github.com/jakmyungso/api/internal/domain"
	"github.com/jakmyungso/api/internal/namedb"
)

// SelectorParams drives one native-name selection. Identical params always
// yield identical ordered output.
type SelectorParams struct {
	Count         int
	Seed          string
	ExcludeNames  []string
	PreferredTags []string
	Gender        domain.Gender
}

// PickNativeNames deterministically selects entries from the native pool,
// favoring tag affinity and breaking ties with a seeded hash. For male
// requests the female-leaning subset is filtered out, but only while that
// still leaves enough candidates; availability wins over the heuristic.
func PickNativeNames(params SelectorParams) []namedb.NativeNameEntry {
	excludes := make(map[string]struct{}, len(params.ExcludeNames))
	for _, name := range params.ExcludeNames {
		excludes[name] = struct{}{}
	}
	preferred := make(map[string]struct{}, len(params.PreferredTags))
	for _, tag := range params.PreferredTags {
		preferred[tag] = struct{}{}
	}

	allPool := make([]namedb.NativeNameEntry, 0, len(namedb.NativeNames))
	for _, entry := range namedb.NativeNames {
		if _, skip := excludes[entry.Name]; skip {
			continue
		}
		allPool = append(allPool, entry)
	}
	if params.Count <= 0 || len(allPool) == 0 {
		return nil
	}

	pool := allPool
	if params.Gender == domain.GenderMale {
		genderPool := make([]namedb.NativeNameEntry, 0, len(allPool))
		for _, entry := range allPool {
			if !namedb.IsFemaleLeaning(entry.Name) {
				genderPool = append(genderPool, entry)
			}
		}
		if len(genderPool) >= params.Count {
			pool = genderPool
		}
	}

	type scored struct {
		entry    namedb.NativeNameEntry
		tagScore int
		tiebreak uint32
	}

	seeded := make([]scored, 0, len(pool))
	for index, entry := range pool {
		tagScore := 0
		for _, tag := range entry.Tags {
			if _, ok := preferred[tag]; ok {
				tagScore++
			}
		}
		seeded = append(seeded, scored{
			entry:    entry,
			tagScore: tagScore,
			tiebreak: fnvHash(fmt.Sprintf("%s|%s|%d", params.Seed, entry.Name, index)) % 1000,
		})
	}

	sort.SliceStable(seeded, func(i, j int) bool {
		if seeded[i].tagScore != seeded[j].tagScore {
			return seeded[i].tagScore > seeded[j].tagScore
		}
		return seeded[i].tiebreak > seeded[j].tiebreak
	})

	count := params.Count
	if count > len(seeded) {
		count = len(seeded)
	}
	picked := make([]namedb.NativeNameEntry, 0, count)
	for _, s := range seeded[:count] {
		picked = append(picked, s.entry)
	}
	return picked
}

// fnvHash is a 32-bit FNV-1a over the string's code points. Hashing runes
// rather than bytes keeps the tiebreak stable regardless of how the Korean
// input was encoded upstream.
func fnvHash(input string) uint32 {
	hash := uint32(2166136261)
	for _, r := range input {
		hash ^= uint32(r)
		hash *= 16777619
	}
	return hash
}
