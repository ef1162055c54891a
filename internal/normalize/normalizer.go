package normalize

import (
	"log"
	"strconv"
	"strings"

	"vocalis/internal/domain"
)

// Normalizer canonicalizes the field formats of an extracted record. All
// rules are deterministic; running the normalizer twice yields the same
// record as running it once.
type Normalizer struct{}

// NewNormalizer creates a Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

var dateFields = []string{
	"date_naissance",
	"date_situation_matrimoniale",
	"date_evenement_professionnel",
}

var booleanFields = []string{
	"fumeur",
	"activites_sportives",
	"risques_professionnels",
	"consentement_audio",
	"chef_entreprise",
	"travailleur_independant",
	"mandataire_social",
}

// Normalize rewrites record fields into canonical formats, consulting the
// transcript for the corrections that need context (oral negations, spoken
// emails, sport mentions, enterprise status). The record is modified in
// place and returned.
func (n *Normalizer) Normalize(record domain.Record, transcript string) domain.Record {
	if record == nil {
		return domain.Record{}
	}

	mapLegacyFieldNames(record)

	if email := record.StringValue("email"); email != "" && !strings.Contains(email, "@") {
		log.Printf("normalize: incomplete email %q, attempting transcript repair", email)
		if fixed := RepairSpokenEmail(transcript); fixed != "" {
			log.Printf("normalize: email repaired to %q", fixed)
			record["email"] = fixed
		}
	}

	for _, field := range dateFields {
		if v := record.StringValue(field); v != "" {
			setOrDelete(record, field, NormalizeDate(v))
		}
	}
	if v := record.StringValue("telephone"); v != "" {
		setOrDelete(record, "telephone", NormalizePhone(v))
	}
	if v := record.StringValue("email"); v != "" {
		setOrDelete(record, "email", NormalizeEmail(v))
	}
	if v := record.StringValue("code_postal"); v != "" {
		setOrDelete(record, "code_postal", NormalizePostalCode(v))
	}

	coerceNumbers(record)
	normalizeChildren(record)

	for _, field := range booleanFields {
		if v, exists := record[field]; exists {
			if b, ok := CoerceBool(v); ok {
				record[field] = b
			} else {
				delete(record, field)
			}
		}
	}

	text := normalizeTranscript(transcript)
	applyOralPolarity(text, record)
	detectSports(text, record)

	// Details describing a sport imply the practice itself.
	if record.StringValue("details_activites_sportives") != "" || record.StringValue("niveau_activites_sportives") != "" {
		if v, ok := record.BoolValue("activites_sportives"); !ok || !v {
			log.Printf("normalize: sport details present, forcing activites_sportives to true")
			record["activites_sportives"] = true
		}
	}

	hydrateEnterpriseFields(text, record)
	hydrateAddressComponents(record)
	normalizeNeeds(record)

	if conjoint := record.Sub("conjoint"); conjoint != nil {
		normalizeConjoint(conjoint)
	}

	return record
}

// setOrDelete writes a normalized value back, or removes the field when
// normalization rejected the value.
func setOrDelete(record domain.Record, field, value string) {
	if value == "" {
		delete(record, field)
		return
	}
	record[field] = value
}

func coerceNumbers(record domain.Record) {
	if v, exists := record["revenus_annuels"]; exists {
		if f, ok := toFloat(v); ok {
			record["revenus_annuels"] = f
		} else {
			record["revenus_annuels"] = nil
		}
	}
	if v, exists := record["nombre_enfants"]; exists {
		if f, ok := toFloat(v); ok {
			record["nombre_enfants"] = int(f)
		} else {
			record["nombre_enfants"] = nil
		}
	}
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(t), ",", ".")
		s = strings.ReplaceAll(s, " ", "")
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// conjointScalarFields are the conjoint sub-record fields that reuse the
// top-level normalization rules.
var conjointDateFields = []string{"date_naissance", "date_evenement_professionnel"}
var conjointBoolFields = []string{"chef_entreprise", "risques_professionnels"}

func normalizeConjoint(conjoint domain.Record) {
	for _, field := range conjointDateFields {
		if v := conjoint.StringValue(field); v != "" {
			setOrDelete(conjoint, field, NormalizeDate(v))
		}
	}
	if v := conjoint.StringValue("telephone"); v != "" {
		setOrDelete(conjoint, "telephone", NormalizePhone(v))
	}
	for _, field := range conjointBoolFields {
		if v, exists := conjoint[field]; exists {
			if b, ok := CoerceBool(v); ok {
				conjoint[field] = b
			} else {
				delete(conjoint, field)
			}
		}
	}
}

// legacyFieldNames maps field names from earlier extraction prompts to the
// current schema.
var legacyFieldNames = map[string]string{
	"datedenaissance":       "date_naissance",
	"lieudenaissance":       "lieu_naissance",
	"situationmatrimoniale": "situation_matrimoniale",
	"revenusannuels":        "revenus_annuels",
	"nombreenfants":         "nombre_enfants",
}

func mapLegacyFieldNames(record domain.Record) {
	for oldName, newName := range legacyFieldNames {
		if v, exists := record[oldName]; exists {
			if _, taken := record[newName]; !taken {
				record[newName] = v
			}
			delete(record, oldName)
		}
	}

	// Early prompts used a bare child count under "enfants".
	if v, exists := record["enfants"]; exists {
		if f, ok := toFloat(v); ok {
			if _, taken := record["nombre_enfants"]; !taken {
				record["nombre_enfants"] = int(f)
			}
			delete(record, "enfants")
		}
	}

	for legacy, status := range map[string]string{
		"marie":       "Marié(e)",
		"celibataire": "Célibataire",
		"divorce":     "Divorcé(e)",
		"veuf":        "Veuf(ve)",
	} {
		if v, exists := record[legacy]; exists {
			if b, isBool := v.(bool); isBool && b {
				record["situation_matrimoniale"] = status
			} else if legacy == "marie" && isBool && !b {
				record["situation_matrimoniale"] = "Célibataire"
			}
			delete(record, legacy)
		}
	}

	for legacy, status := range map[string]string{
		"proprietaire": "Propriétaire",
		"locataire":    "Locataire",
	} {
		if v, exists := record[legacy]; exists {
			if b, isBool := v.(bool); isBool && b {
				record["situation_actuelle"] = status
			}
			delete(record, legacy)
		}
	}
}
