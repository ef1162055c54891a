package normalize

import (
	"encoding/json"
	"strings"

	"vocalis/internal/domain"
)

// normalizeNeeds repairs the besoins list and enforces the action policy:
// a non-empty list without a valid besoins_action gets "add" (never
// "replace"), and an empty list nils the action out. Runs only when the
// extractor produced a besoins key at all.
func normalizeNeeds(record domain.Record) {
	raw, exists := record["besoins"]
	if !exists {
		return
	}

	var list []any
	switch v := raw.(type) {
	case []any:
		list = v
	case string:
		// Some model outputs JSON-encode the list inside a string.
		var decoded []any
		if err := json.Unmarshal([]byte(v), &decoded); err == nil {
			list = decoded
		} else {
			list = []any{v}
		}
	default:
		list = nil
	}

	var flattened []any
	for _, item := range list {
		if s, ok := item.(string); ok {
			var decoded []any
			if err := json.Unmarshal([]byte(s), &decoded); err == nil {
				flattened = append(flattened, decoded...)
				continue
			}
			flattened = append(flattened, strings.TrimSpace(s))
			continue
		}
		if nested, ok := item.([]any); ok {
			flattened = append(flattened, nested...)
			continue
		}
		flattened = append(flattened, item)
	}

	if len(flattened) == 0 {
		record["besoins"] = []any{}
		record["besoins_action"] = nil
		return
	}

	record["besoins"] = flattened
	action := record.StringValue("besoins_action")
	if action != "add" && action != "remove" {
		record["besoins_action"] = "add"
	}
}
