package extract

// Section identifies a topical category of client information. The router
// classifies a transcript into one or more sections; each section selects a
// specialized extractor.
type Section string

const (
	SectionClient           Section = "client"
	SectionConjoint         Section = "conjoint"
	SectionPrevoyance       Section = "prevoyance"
	SectionRetraite         Section = "retraite"
	SectionEpargne          Section = "epargne"
	SectionSante            Section = "sante"
	SectionEmprunteur       Section = "emprunteur"
	SectionRevenus          Section = "revenus"
	SectionPassifs          Section = "passifs"
	SectionActifsFinanciers Section = "actifs_financiers"
	SectionBiensImmobiliers Section = "biens_immobiliers"
	SectionAutresEpargnes   Section = "autres_epargnes"
)

// sectionOrder is the canonical fold order for merging per-section results.
// Merge output must not depend on the order the classifier happened to list
// sections in, so the orchestrator re-sorts router output into this order.
var sectionOrder = []Section{
	SectionClient,
	SectionConjoint,
	SectionPrevoyance,
	SectionRetraite,
	SectionEpargne,
	SectionSante,
	SectionEmprunteur,
	SectionRevenus,
	SectionPassifs,
	SectionActifsFinanciers,
	SectionBiensImmobiliers,
	SectionAutresEpargnes,
}

var sectionRank = func() map[Section]int {
	m := make(map[Section]int, len(sectionOrder))
	for i, s := range sectionOrder {
		m[s] = i
	}
	return m
}()

// Sections returns every known section in canonical order.
func Sections() []Section {
	return append([]Section(nil), sectionOrder...)
}

// ValidSection reports whether s belongs to the closed section enumeration.
func ValidSection(s Section) bool {
	_, ok := sectionRank[s]
	return ok
}

// SortSections returns the given sections deduplicated and re-ordered into
// the canonical fold order.
func SortSections(sections []Section) []Section {
	seen := make(map[Section]bool, len(sections))
	for _, s := range sections {
		seen[s] = true
	}
	out := make([]Section, 0, len(sections))
	for _, s := range sectionOrder {
		if seen[s] {
			out = append(out, s)
		}
	}
	return out
}
