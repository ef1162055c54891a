// Package guardrails backstops the LLM extractors: it detects critical
// fields the model missed, validates extracted values, and reconciles
// inconsistencies between related fields.
package guardrails

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"vocalis/internal/domain"
	"vocalis/internal/normalize"
)

// criticalField describes the transcript evidence for one boolean field the
// extractors frequently miss. Context substrings gate the search so a "oui"
// elsewhere in the conversation never fabricates an answer; positive
// substrings are checked before negative ones.
type criticalField struct {
	field    string
	context  []string
	positive []string
	negative []string
}

var criticalFields = []criticalField{
	{
		field:   "consentement_audio",
		context: []string{"enregistr", "accord pour", "d'accord pour", "acceptez", "ça vous dérange"},
		positive: []string{
			"oui", "ouais", "d'accord", "pas de problème", "pas de souci",
			"ça me va", "ok", "bien sûr", "tout à fait", "je suis d'accord",
			"aucun problème", "ça ne me dérange pas", "non ça ne me dérange pas",
		},
		negative: []string{
			"non merci", "je refuse", "je préfère pas", "pas d'accord",
			"je ne suis pas d'accord", "ça me dérange",
		},
	},
	{
		field:   "fumeur",
		context: []string{"fumez", "fumeur", "fumer", "cigarette", "tabac"},
		positive: []string{
			"oui je fume", "je suis fumeur", "je suis fumeuse", "je fume",
			"fumeur", "fumeuse",
		},
		negative: []string{
			"non je ne fume pas", "je ne fume pas", "non fumeur", "non fumeuse",
			"pas fumeur", "pas fumeuse", "jamais fumé", "arrêté de fumer",
		},
	},
	{
		field:   "activites_sportives",
		context: []string{"sport", "activité physique", "exercice"},
		positive: []string{
			"oui je fais du sport", "je fais du sport", "je pratique",
			"football", "tennis", "natation", "course", "musculation", "vélo",
			"running", "gym", "fitness", "yoga", "basket", "rugby", "golf",
			"randonnée",
		},
		negative: []string{
			"non je ne fais pas de sport", "pas de sport", "sédentaire",
			"je ne fais pas de sport", "aucune activité sportive",
		},
	},
}

// consentQuestionMarkers locate the advisor's recording question; the
// client's answer is searched in a bounded window after it.
var consentQuestionMarkers = []string{
	"est-ce que vous êtes d'accord",
	"êtes-vous d'accord",
	"acceptez-vous",
	"ça vous dérange si",
	"d'accord pour",
	"ok pour",
	"enregistr",
}

var consentPositive = []string{
	"oui", "ouais", "d'accord", "pas de problème", "pas de souci",
	"bien sûr", "tout à fait", "ok", "ça me va", "aucun problème",
	"il n'y a pas de problème", "y a pas de problème",
}

var consentNegative = []string{
	"non merci", "je refuse", "je préfère pas", "non je", "pas d'accord",
}

// consentWindowRunes bounds how far after the question the answer is
// searched. Runes, not bytes: the transcripts are accented French.
const consentWindowRunes = 150

// valueExtractionPatterns recover obvious literal values the extractors
// missed. Only fields absent from the record are filled.
var valueExtractionPatterns = []struct {
	field   string
	pattern *regexp.Regexp
}{
	{"telephone", regexp.MustCompile(`(?:0[1-9])[\s.\-]?(?:\d{2}[\s.\-]?){4}`)},
	{"email", regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)},
	{"code_postal", regexp.MustCompile(`\b(\d{5})\b`)},
	{"date", regexp.MustCompile(`\b(\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4})\b`)},
}

// Guardrails repairs and validates extracted records against transcripts.
type Guardrails struct{}

// NewGuardrails creates a Guardrails.
func NewGuardrails() *Guardrails {
	return &Guardrails{}
}

// Apply runs the guardrail passes: missed-field detection, regex value
// recovery and value validation. Corrections relative to the input record
// are logged. The record is modified in place and returned.
func (g *Guardrails) Apply(record domain.Record, transcript string) domain.Record {
	if record == nil {
		record = domain.Record{}
	}
	original := record.Clone()
	text := strings.ToLower(transcript)

	g.detectMissedCriticalFields(record, text)
	g.extractMissingValues(record, text)
	g.validateAndNormalize(record)

	logCorrections(original, record)
	return record
}

func (g *Guardrails) detectMissedCriticalFields(record domain.Record, text string) {
	for _, cf := range criticalFields {
		if v, exists := record[cf.field]; exists && v != nil {
			continue
		}

		contextFound := false
		for _, c := range cf.context {
			if strings.Contains(text, c) {
				contextFound = true
				break
			}
		}
		if !contextFound {
			continue
		}

		matched := false
		for _, p := range cf.positive {
			if strings.Contains(text, p) {
				record[cf.field] = true
				log.Printf("guardrails: %s set to true by pattern %q", cf.field, p)
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		for _, n := range cf.negative {
			if strings.Contains(text, n) {
				record[cf.field] = false
				log.Printf("guardrails: %s set to false by pattern %q", cf.field, n)
				break
			}
		}
	}

	if v, exists := record["consentement_audio"]; !exists || v == nil {
		if consent, ok := detectConsentFromContext(text); ok {
			record["consentement_audio"] = consent
			log.Printf("guardrails: consentement_audio=%v from question context", consent)
		}
	}
}

// detectConsentFromContext finds the recording question and classifies the
// answer in the window that follows. "Ça vous dérange ?" answered "non, ça
// ne me dérange pas" is a double negation and means consent.
func detectConsentFromContext(text string) (consent, ok bool) {
	questionPos := -1
	for _, marker := range consentQuestionMarkers {
		if pos := strings.Index(text, marker); pos != -1 {
			questionPos = pos
			break
		}
	}
	if questionPos == -1 {
		return false, false
	}

	window := []rune(text[questionPos:])
	if len(window) > consentWindowRunes {
		window = window[:consentWindowRunes]
	}
	zone := string(window)

	if strings.Contains(zone, "dérange") && strings.Contains(zone, "non") {
		if strings.Contains(zone, "ne me dérange pas") || strings.Contains(zone, "ça ne me dérange pas") {
			return true, true
		}
	}

	for _, p := range consentPositive {
		if strings.Contains(zone, p) {
			return true, true
		}
	}
	for _, n := range consentNegative {
		if strings.Contains(zone, n) {
			return false, true
		}
	}
	return false, false
}

func (g *Guardrails) extractMissingValues(record domain.Record, text string) {
	for _, ve := range valueExtractionPatterns {
		if _, exists := record[ve.field]; exists {
			continue
		}
		if m := ve.pattern.FindString(text); m != "" {
			record[ve.field] = m
			log.Printf("guardrails: %s recovered from transcript: %q", ve.field, m)
		}
	}
}

var guardedBooleanFields = []string{
	"consentement_audio",
	"fumeur",
	"activites_sportives",
	"chef_entreprise",
	"travailleur_independant",
	"mandataire_social",
	"risques_professionnels",
}

var phoneStrip = regexp.MustCompile(`[\s.\-]`)
var postalShape = regexp.MustCompile(`^\d{5}$`)

func (g *Guardrails) validateAndNormalize(record domain.Record) {
	if v := record.StringValue("telephone"); v != "" {
		record["telephone"] = phoneStrip.ReplaceAllString(v, "")
	}
	if v, exists := record["email"]; exists {
		if s, ok := v.(string); ok {
			record["email"] = strings.ToLower(strings.TrimSpace(s))
		}
	}
	if v, exists := record["code_postal"]; exists {
		s, _ := v.(string)
		if !postalShape.MatchString(strings.TrimSpace(s)) {
			log.Printf("guardrails: dropping invalid postal code %v", v)
			delete(record, "code_postal")
		}
	}

	if v := record.StringValue("civilite"); v != "" {
		switch strings.ToLower(v) {
		case "m", "m.", "mr", "monsieur":
			record["civilite"] = "Monsieur"
		case "mme", "mme.", "madame", "mlle", "mlle.", "mademoiselle":
			record["civilite"] = "Madame"
		}
	}

	for _, field := range guardedBooleanFields {
		if v, exists := record[field]; exists && v != nil {
			if b, ok := normalize.CoerceBool(v); ok {
				record[field] = b
			} else {
				log.Printf("guardrails: dropping non-boolean %s value %v", field, v)
				delete(record, field)
			}
		}
	}
}

// CheckCoherence cross-checks related fields. The enfants list is the
// ground truth for nombre_enfants.
func (g *Guardrails) CheckCoherence(record domain.Record) domain.Record {
	if record == nil {
		return domain.Record{}
	}
	var warnings []string

	if chef, _ := record.BoolValue("chef_entreprise"); chef && record.StringValue("profession") == "" {
		warnings = append(warnings, "chef d'entreprise without a profession")
	}

	if children := record.List("enfants"); children != nil {
		count := len(children)
		if v, exists := record["nombre_enfants"]; exists {
			declared := -1
			switch n := v.(type) {
			case float64:
				declared = int(n)
			case int:
				declared = n
			}
			if declared != count {
				warnings = append(warnings, fmt.Sprintf("nombre_enfants (%v) disagrees with %d listed children", v, count))
				record["nombre_enfants"] = count
			}
		}
	}

	for _, w := range warnings {
		log.Printf("guardrails: coherence warning: %s", w)
	}
	return record
}

func logCorrections(original, corrected domain.Record) {
	var changes []string
	for field, value := range corrected {
		old, existed := original[field]
		if !existed {
			changes = append(changes, fmt.Sprintf("%s added (%v)", field, value))
		} else if fmt.Sprintf("%v", old) != fmt.Sprintf("%v", value) {
			changes = append(changes, fmt.Sprintf("%s changed (%v -> %v)", field, old, value))
		}
	}
	if len(changes) > 0 {
		log.Printf("guardrails: corrections applied: %s", strings.Join(changes, "; "))
	}
}
