package normalize

import (
	"regexp"
	"strings"

	"vocalis/internal/domain"
)

var (
	addressPostalCity = regexp.MustCompile(`\b(\d{5})\b(?:\s+([\p{L}'\-\s]+))?`)
	cityNonLetters    = regexp.MustCompile(`[^\p{L}'\-\s]`)
	leadingPostal     = regexp.MustCompile(`^\d{5}\s*`)
	longDigitRun      = regexp.MustCompile(`\d{3,}`)
	segmentSeparator  = regexp.MustCompile(`[,;\n]`)
)

// hydrateAddressComponents derives code_postal and ville from the free-form
// adresse field. The last postal-code occurrence wins (the street number
// never has five digits but a building code might precede the real postal
// code). Existing non-empty components are never overwritten.
func hydrateAddressComponents(record domain.Record) {
	address := record.StringValue("adresse")
	if address == "" {
		return
	}

	matches := addressPostalCity.FindAllStringSubmatch(address, -1)
	if len(matches) > 0 {
		match := matches[len(matches)-1]

		if match[1] != "" {
			current := record.StringValue("code_postal")
			if current == "" || len(current) < 5 {
				if postal := NormalizePostalCode(match[1]); postal != "" {
					record["code_postal"] = postal
				}
			}
		}

		if record.StringValue("ville") == "" && match[2] != "" {
			city := strings.TrimSpace(cityNonLetters.ReplaceAllString(match[2], ""))
			if city != "" {
				record["ville"] = city
			}
		}
	}

	// Fall back to the last comma-separated segment for the city.
	if record.StringValue("ville") == "" {
		segments := segmentSeparator.Split(address, -1)
		last := strings.TrimSpace(segments[len(segments)-1])
		last = strings.TrimSpace(leadingPostal.ReplaceAllString(last, ""))
		if last != "" && !longDigitRun.MatchString(last) {
			record["ville"] = last
		}
	}
}
