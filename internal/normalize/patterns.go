package normalize

import (
	"log"
	"regexp"
	"strings"

	"vocalis/internal/domain"
)

// polarityPatterns pairs a boolean field with the spoken phrases that assert
// or deny it. Patterns match lowercased text with typographic apostrophes
// already straightened.
type polarityPatterns struct {
	field    string
	negative []*regexp.Regexp
	positive []*regexp.Regexp
}

var apostropheReplacer = strings.NewReplacer("’", "'", "‘", "'")

// normalizeTranscript lowers the text and straightens apostrophes so every
// pattern table matches one canonical form.
func normalizeTranscript(transcript string) string {
	return strings.ToLower(apostropheReplacer.Replace(transcript))
}

var negationSweepPatterns = []polarityPatterns{
	{
		field: "fumeur",
		negative: []*regexp.Regexp{
			regexp.MustCompile(`je\s+ne\s+suis\s+pas\s+fumeur`),
			regexp.MustCompile(`je\s+ne\s+suis\s+plus\s+fumeur`),
			regexp.MustCompile(`je\s+ne\s+fume\s+pas`),
			regexp.MustCompile(`je\s+ne\s+fume\s+plus`),
			regexp.MustCompile(`je\s+ne\s+fume\s+jamais`),
			regexp.MustCompile(`je\s+suis\s+non[-\s]?fumeur`),
		},
		positive: []*regexp.Regexp{
			regexp.MustCompile(`je\s+suis\s+fumeur`),
			regexp.MustCompile(`je\s+fume\b`),
		},
	},
	{
		field: "activites_sportives",
		negative: []*regexp.Regexp{
			regexp.MustCompile(`je\s+ne\s+fais\s+pas\s+de?\s+sport`),
			regexp.MustCompile(`je\s+ne\s+fais\s+plus\s+de?\s+sport`),
			regexp.MustCompile(`je\s+ne\s+pratique\s+pas\s+de?\s+sport`),
			regexp.MustCompile(`aucune?\s+activit[ée]\s+sportive`),
			regexp.MustCompile(`pas\s+d['e]?\s*activit[ée]\s+sportive`),
			regexp.MustCompile(`pas\s+de?\s+sport`),
		},
		positive: []*regexp.Regexp{
			regexp.MustCompile(`je\s+fais\s+du\s+sport`),
			regexp.MustCompile(`je\s+pratique\s+(?:un|le|la|du|de\s+la)\s+\w+`),
			regexp.MustCompile(`je\s+fais\s+(?:du|de\s+la|de\s+l['e]?)\s+\w+`),
			regexp.MustCompile(`activit[ée]s?\s+sportives?`),
			regexp.MustCompile(`(?:^|[^\p{L}])(?:football|foot|tennis|natation|course|running|jogging|musculation|fitness|gym|yoga|pilates|boxe|judo|karate|karaté|vélo|cyclisme|randonnée|ski|snowboard|surf|plongée|escalade|basketball|basket|volleyball|volley|handball|rugby|golf|équitation|danse|badminton|squash|paddle|crossfit|triathlon|marathon|athlétisme)(?:[^\p{L}]|$)`),
		},
	},
	{
		field: "risques_professionnels",
		negative: []*regexp.Regexp{
			regexp.MustCompile(`je\s+n['e]\s+ai\s+pas\s+de?\s+risques?\s+professionnels`),
			regexp.MustCompile(`aucun\s+risque\s+professionnel`),
			regexp.MustCompile(`pas\s+de?\s+risques?\s+professionnels`),
		},
		positive: []*regexp.Regexp{
			regexp.MustCompile(`j['e]\s*ai\s+des?\s+risques?\s+professionnels`),
			regexp.MustCompile(`je\s+suis\s+exposé\s+à\s+des?\s+risques?\s+professionnels`),
		},
	},
	{
		field:    "chef_entreprise",
		negative: chefEntrepriseNegative,
		positive: chefEntreprisePositive,
	},
	{
		field:    "travailleur_independant",
		negative: independantNegative,
		positive: independantPositive,
	},
	{
		field:    "mandataire_social",
		negative: mandataireNegative,
		positive: mandatairePositive,
	},
}

// Enterprise pattern sets are shared between the negation sweep and the
// enterprise hydration pass, which apply different overwrite rules.
var (
	chefEntrepriseNegative = []*regexp.Regexp{
		regexp.MustCompile(`je\s+(?:ne\s+)?suis\s+pas\s+(?:un\s+|une\s+)?chef\s+d['\s]?entreprise`),
		regexp.MustCompile(`je\s+(?:ne\s+)?suis\s+plus\s+(?:un\s+|une\s+)?chef\s+d['\s]?entreprise`),
		regexp.MustCompile(`on\s+(?:n['e]\s+)?est\s+pas\s+chef\s+d['\s]?entreprise`),
		regexp.MustCompile(`on\s+(?:n['e]\s+)?est\s+plus\s+chef\s+d['\s]?entreprise`),
		regexp.MustCompile(`pas\s+chef\s+d['\s]?entreprise`),
		regexp.MustCompile(`plus\s+chef\s+d['\s]?entreprise`),
		regexp.MustCompile(`ni\s+chef\s+d['\s]?entreprise`),
	}
	chefEntreprisePositive = []*regexp.Regexp{
		regexp.MustCompile(`\bchef\s+d['\s]?entreprise`),
		regexp.MustCompile(`je\s+dirige\s+(?:ma|mon|une)\s+(?:entreprise|société)`),
		regexp.MustCompile(`je\s+gère\s+(?:ma|mon|une)\s+(?:propre\s+)?entreprise`),
	}

	independantNegative = []*regexp.Regexp{
		regexp.MustCompile(`je\s+(?:ne\s+)?suis\s+pas\s+(?:travailleur\s+)?ind[ée]pendant`),
		regexp.MustCompile(`je\s+(?:ne\s+)?suis\s+plus\s+(?:travailleur\s+)?ind[ée]pendant`),
		regexp.MustCompile(`on\s+(?:n['e]\s+)?est\s+pas\s+(?:travailleur\s+)?ind[ée]pendant`),
		regexp.MustCompile(`on\s+(?:n['e]\s+)?est\s+plus\s+(?:travailleur\s+)?ind[ée]pendant`),
		regexp.MustCompile(`pas\s+ind[ée]pendant`),
		regexp.MustCompile(`plus\s+travailleur\s+ind[ée]pendant`),
		regexp.MustCompile(`ni\s+travailleur\s+ind[ée]pendant`),
	}
	independantPositive = []*regexp.Regexp{
		regexp.MustCompile(`\btravailleur\s+ind[ée]pendant`),
		regexp.MustCompile(`(?:^|[^\p{L}])ind[ée]pendant(?:[^\p{L}]|$)`),
		regexp.MustCompile(`je\s+travaille\s+(?:à|a)\s+mon\s+compte`),
		regexp.MustCompile(`\bfreelance\b`),
		regexp.MustCompile(`\bauto[-\s]?entrepreneur`),
		regexp.MustCompile(`\bmicro[-\s]?entrepreneur`),
		regexp.MustCompile(`profession\s+(?:libérale|liberale)`),
	}

	mandataireNegative = []*regexp.Regexp{
		regexp.MustCompile(`je\s+(?:ne\s+)?suis\s+pas\s+mandataire\s+social`),
		regexp.MustCompile(`je\s+(?:ne\s+)?suis\s+plus\s+mandataire\s+social`),
		regexp.MustCompile(`on\s+(?:n['e]\s+)?est\s+pas\s+mandataire\s+social`),
		regexp.MustCompile(`on\s+(?:n['e]\s+)?est\s+plus\s+mandataire\s+social`),
		regexp.MustCompile(`pas\s+mandataire\s+social`),
		regexp.MustCompile(`plus\s+mandataire\s+social`),
		regexp.MustCompile(`ni\s+mandataire\s+social`),
	}
	mandatairePositive = []*regexp.Regexp{
		regexp.MustCompile(`\bmandataire\s+social`),
	}
)

// applyOralPolarity sweeps the transcript for spoken assertions and denials
// of the boolean fields. A negation always wins and overwrites whatever the
// extractor produced; a positive match only fills a field that is absent or
// nil, never flipping an explicit false.
func applyOralPolarity(text string, record domain.Record) {
	for _, fp := range negationSweepPatterns {
		negated := false
		for _, p := range fp.negative {
			if p.MatchString(text) {
				record[fp.field] = false
				negated = true
				break
			}
		}
		if negated {
			continue
		}
		for _, p := range fp.positive {
			if p.MatchString(text) {
				if v, exists := record[fp.field]; !exists || v == nil {
					record[fp.field] = true
				}
				break
			}
		}
	}
}

var enterprisePatterns = []polarityPatterns{
	{
		field:    "chef_entreprise",
		negative: chefEntrepriseNegative,
		positive: append([]*regexp.Regexp{
			regexp.MustCompile(`(?:ma|mon)\s+(?:propre\s+)?entreprise`),
		}, chefEntreprisePositive...),
	},
	{
		field:    "travailleur_independant",
		negative: independantNegative,
		positive: independantPositive,
	},
	{
		field:    "mandataire_social",
		negative: mandataireNegative,
		positive: mandatairePositive,
	},
}

var statutKeywords = []struct {
	pattern *regexp.Regexp
	label   string
}{
	{regexp.MustCompile(`\bsarl\b`), "SARL"},
	{regexp.MustCompile(`\bsasu\b`), "SASU"},
	{regexp.MustCompile(`\bsas\b`), "SAS"},
	{regexp.MustCompile(`\beurl\b`), "EURL"},
	{regexp.MustCompile(`\bsci\b`), "SCI"},
	{regexp.MustCompile(`\beirl\b`), "EIRL"},
	{regexp.MustCompile(`\bei\b`), "EI"},
	{regexp.MustCompile(`\bauto[-\s]entrepreneur\b`), "Auto-entrepreneur"},
	{regexp.MustCompile(`\bmicro[-\s]entreprise\b`), "Micro-entreprise"},
	{regexp.MustCompile(`profession\s+(?:libérale|liberale)`), "Profession libérale"},
}

// hydrateEnterpriseFields decides the three enterprise booleans from the
// transcript, overwriting the extractor's values in both directions: a
// spoken denial forces false and a spoken assertion forces true. It also
// fills statut from a legal-form keyword when the extractor left it empty.
func hydrateEnterpriseFields(text string, record domain.Record) {
	for _, fp := range enterprisePatterns {
		negated := false
		for _, p := range fp.negative {
			if p.MatchString(text) {
				record[fp.field] = false
				negated = true
				break
			}
		}
		if negated {
			continue
		}
		for _, p := range fp.positive {
			if p.MatchString(text) {
				record[fp.field] = true
				break
			}
		}
	}

	if record.StringValue("statut") == "" {
		for _, kw := range statutKeywords {
			if kw.pattern.MatchString(text) {
				log.Printf("normalize: legal status %q detected from transcript", kw.label)
				record["statut"] = kw.label
				break
			}
		}
	}
}
