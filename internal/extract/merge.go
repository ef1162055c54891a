package extract

import (
	"fmt"

	"vocalis/internal/domain"
)

// concatKeys are list-valued keys where section results accumulate: two
// extractors may each contribute entries (e.g. client and epargne both list
// assets) and none may be lost.
var concatKeys = map[string]bool{
	"enfants":                   true,
	"actifs_financiers_details": true,
	"actifs_immo_details":       true,
	"passifs_details":           true,
	"charges_details":           true,
}

// recursiveKeys are object-valued keys merged field-by-field instead of
// wholesale replacement, so two sections can each fill part of the same
// nested entity.
var recursiveKeys = map[string]bool{
	"bae_prevoyance": true,
	"bae_retraite":   true,
	"bae_epargne":    true,
	"sante_souhait":  true,
	"conjoint":       true,
}

// Merge folds an incoming section record into the accumulated record and
// returns the result. The accumulated record is modified in place.
//
// Rules, per key of the incoming record:
//   - concat keys: both lists concatenated (besoins additionally deduplicated,
//     first occurrence wins)
//   - recursive keys: nested objects merged with the same rules
//   - other keys where both sides hold lists: incoming replaces accumulated
//   - scalars: incoming overwrites only when it carries information (non-nil,
//     non-blank); an extractor that saw nothing never erases another's result
func Merge(accumulated, incoming domain.Record) domain.Record {
	if accumulated == nil {
		accumulated = domain.Record{}
	}
	for key, newVal := range incoming {
		oldVal, exists := accumulated[key]
		if !exists {
			accumulated[key] = newVal
			continue
		}

		switch {
		case key == "besoins":
			accumulated[key] = mergeBesoins(oldVal, newVal)
		case concatKeys[key]:
			accumulated[key] = concatLists(oldVal, newVal)
		case recursiveKeys[key]:
			accumulated[key] = mergeNested(oldVal, newVal)
		default:
			if _, ok := asList(oldVal); ok {
				if newList, ok := asList(newVal); ok {
					accumulated[key] = newList
					continue
				}
			}
			if !domain.IsEmpty(newVal) {
				accumulated[key] = newVal
			}
		}
	}
	return accumulated
}

func asList(v any) ([]any, bool) {
	l, ok := v.([]any)
	return l, ok
}

func asRecord(v any) (domain.Record, bool) {
	switch m := v.(type) {
	case domain.Record:
		return m, true
	case map[string]any:
		return domain.Record(m), true
	default:
		return nil, false
	}
}

func concatLists(oldVal, newVal any) any {
	oldList, okOld := asList(oldVal)
	newList, okNew := asList(newVal)
	if !okOld && !okNew {
		return newVal
	}
	if !okOld {
		return newList
	}
	if !okNew {
		return oldList
	}
	return append(oldList, newList...)
}

// mergeBesoins concatenates need lists and deduplicates, keeping first-seen
// order. Needs are usually strings but the key is open-typed, so equality is
// on the printed form.
func mergeBesoins(oldVal, newVal any) any {
	oldList, okOld := asList(oldVal)
	newList, okNew := asList(newVal)
	if !okOld && !okNew {
		return newVal
	}

	seen := make(map[string]bool)
	var out []any
	for _, list := range [][]any{oldList, newList} {
		for _, v := range list {
			k := fmt.Sprintf("%v", v)
			if !seen[k] {
				seen[k] = true
				out = append(out, v)
			}
		}
	}
	return out
}

func mergeNested(oldVal, newVal any) any {
	oldRec, okOld := asRecord(oldVal)
	newRec, okNew := asRecord(newVal)
	if !okOld || !okNew {
		if !domain.IsEmpty(newVal) {
			return newVal
		}
		return oldVal
	}
	return map[string]any(Merge(oldRec, newRec))
}
