package normalize

import (
	"log"

	"vocalis/internal/domain"
)

// normalizeChildren rewrites the enfants array: non-object entries are
// dropped, names are trimmed, birth dates are canonicalized and the two
// custody booleans coerced. Entries with nothing left after cleaning are
// dropped too; if no entry survives the key is removed. nombre_enfants is
// derived from the surviving entries when the extractor did not set it.
func normalizeChildren(record domain.Record) {
	entries := record.List("enfants")
	if entries == nil {
		return
	}

	var cleaned []any
	for i, entry := range entries {
		child, ok := entry.(map[string]any)
		if !ok {
			log.Printf("normalize: enfants[%d] dropped, not an object", i)
			continue
		}

		out := domain.Record{}
		src := domain.Record(child)
		if nom := src.StringValue("nom"); nom != "" {
			out["nom"] = nom
		}
		if prenom := src.StringValue("prenom"); prenom != "" {
			out["prenom"] = prenom
		}
		if date := src.StringValue("date_naissance"); date != "" {
			if iso := NormalizeDate(date); iso != "" {
				out["date_naissance"] = iso
			}
		}
		for _, field := range []string{"fiscalement_a_charge", "garde_alternee"} {
			if v, exists := src[field]; exists {
				if b, ok := CoerceBool(v); ok {
					out[field] = b
				}
			}
		}

		if len(out) > 0 {
			cleaned = append(cleaned, map[string]any(out))
		}
	}

	if len(cleaned) == 0 {
		log.Printf("normalize: no usable enfants entry, dropping field")
		delete(record, "enfants")
		return
	}

	record["enfants"] = cleaned
	if _, exists := record["nombre_enfants"]; !exists {
		record["nombre_enfants"] = len(cleaned)
	}
}
