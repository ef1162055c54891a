package extract

import (
	"log"
	"strings"

	"vocalis/internal/domain"
)

// identityFields are the fields compared between the client scope and the
// conjoint sub-record to decide whether the client extractor leaked spouse
// data into the client scope.
var identityFields = []string{"nom", "prenom", "date_naissance", "profession"}

// collateralFields are removed alongside matched identity fields: once the
// client-scope identity is established to be the spouse's, these values are
// presumed to be the spouse's too.
var collateralFields = []string{
	"civilite",
	"lieu_naissance",
	"nationalite",
	"situation_actuelle_statut",
	"telephone",
	"email",
	"adresse",
}

// CleanClientIfSpouseMatch removes client-scope fields that duplicate the
// conjoint sub-record's identity. The client extractor sometimes attributes
// spouse statements to the client; when at least two identity fields are
// comparable and at least two of them match, the matched identity fields and
// any collateral fields present on both sides are dropped from the client
// scope. A single coincidental match (a shared surname, say) never triggers
// cleanup.
func CleanClientIfSpouseMatch(record domain.Record, sections []Section) domain.Record {
	hasConjoint := false
	for _, s := range sections {
		if s == SectionConjoint {
			hasConjoint = true
			break
		}
	}
	if !hasConjoint {
		return record
	}

	conjoint := record.Sub("conjoint")
	if len(conjoint) == 0 {
		return record
	}

	checked := 0
	var matched []string
	for _, field := range identityFields {
		clientVal := record.StringValue(field)
		spouseVal := conjoint.StringValue(field)
		if clientVal == "" || spouseVal == "" {
			continue
		}
		checked++
		if strings.EqualFold(clientVal, spouseVal) {
			matched = append(matched, field)
		}
	}

	if checked < 2 || len(matched) < 2 {
		return record
	}

	log.Printf("extract: client scope matches conjoint identity on %v, cleaning", matched)
	for _, field := range matched {
		delete(record, field)
	}
	for _, field := range collateralFields {
		if !domain.IsEmpty(record[field]) && !domain.IsEmpty(conjoint[field]) {
			delete(record, field)
		}
	}
	return record
}
