// Package jsonwalk provides a bounded-depth, key-alias tree walker for
// schema-on-read extraction from untrusted JSON payloads whose exact shape
// varies between providers and API revisions.
package jsonwalk

import (
	"sort"
	"strings"
)

// MaxDepth bounds how deep the walker descends into nested structures.
const MaxDepth = 6

// KeySet is a case-insensitive set of accepted key aliases.
type KeySet map[string]struct{}

// NewKeySet builds a KeySet from the given aliases.
func NewKeySet(aliases ...string) KeySet {
	set := make(KeySet, len(aliases))
	for _, alias := range aliases {
		set[strings.ToLower(alias)] = struct{}{}
	}
	return set
}

func (s KeySet) contains(key string) bool {
	_, ok := s[strings.ToLower(key)]
	return ok
}

// FindFirst walks the decoded JSON value depth-first and returns the first
// non-nil value stored under any accepted key alias. Map keys are visited
// in sorted order so the result is deterministic for a given payload.
func FindFirst(root any, keys KeySet) (any, bool) {
	var found any
	ok := false
	walk(root, 0, func(key string, value any) bool {
		if keys.contains(key) {
			found = value
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// Collect walks the decoded JSON value and returns every non-nil value
// stored under any accepted key alias, in deterministic order.
func Collect(root any, keys KeySet) []any {
	var collected []any
	walk(root, 0, func(key string, value any) bool {
		if keys.contains(key) {
			collected = append(collected, value)
		}
		return true
	})
	return collected
}

// walk visits every key/value pair up to MaxDepth. The visitor returns
// false to stop the traversal.
func walk(value any, depth int, visit func(key string, value any) bool) bool {
	if depth > MaxDepth || value == nil {
		return true
	}

	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			child := v[key]
			if child == nil {
				continue
			}
			if !visit(key, child) {
				return false
			}
			if !walk(child, depth+1, visit) {
				return false
			}
		}
	case []any:
		for _, item := range v {
			if !walk(item, depth+1, visit) {
				return false
			}
		}
	}
	return true
}
