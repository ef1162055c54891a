package normalize

import (
	"log"
	"regexp"
	"strings"
	"time"
)

var (
	isoDatePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	frSlashPattern    = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
	frDashPattern     = regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{4})$`)
	firstOfPattern    = regexp.MustCompile(`\b1er\b`)
	multiSpacePattern = regexp.MustCompile(`\s+`)
)

// accentReplacer strips the accents that appear in French date words so the
// month substitution below works on a single spelling.
var accentReplacer = strings.NewReplacer(
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"à", "a", "â", "a",
	"î", "i", "ï", "i",
	"ô", "o", "ö", "o",
	"û", "u", "ù", "u", "ü", "u",
	"ç", "c",
)

// frenchMonths maps accent-stripped French month names to English ones.
// time.Parse month matching is case-sensitive, hence the capitals.
var frenchMonths = []struct {
	pattern *regexp.Regexp
	english string
}{
	{regexp.MustCompile(`\bjanvier\b`), "January"},
	{regexp.MustCompile(`\bfevrier\b`), "February"},
	{regexp.MustCompile(`\bmars\b`), "March"},
	{regexp.MustCompile(`\bavril\b`), "April"},
	{regexp.MustCompile(`\bmai\b`), "May"},
	{regexp.MustCompile(`\bjuin\b`), "June"},
	{regexp.MustCompile(`\bjuillet\b`), "July"},
	{regexp.MustCompile(`\baout\b`), "August"},
	{regexp.MustCompile(`\bseptembre\b`), "September"},
	{regexp.MustCompile(`\boctobre\b`), "October"},
	{regexp.MustCompile(`\bnovembre\b`), "November"},
	{regexp.MustCompile(`\bdecembre\b`), "December"},
}

var dateLayouts = []string{
	"2 January 2006",
	"02 January 2006",
	"January 2 2006",
	"2006-01-02",
	"2/1/2006",
	"2-1-2006",
}

// NormalizeDate canonicalizes a date string to ISO YYYY-MM-DD. It accepts
// ISO dates, French numeric forms (DD/MM/YYYY, DD-MM-YYYY) and spoken French
// dates ("1er mars 1980"). Unparseable input yields "" and the caller drops
// the field.
func NormalizeDate(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return ""
	}

	if isoDatePattern.MatchString(date) {
		return date
	}
	if m := frSlashPattern.FindStringSubmatch(date); m != nil {
		return m[3] + "-" + m[2] + "-" + m[1]
	}
	if m := frDashPattern.FindStringSubmatch(date); m != nil {
		return m[3] + "-" + m[2] + "-" + m[1]
	}

	candidate := strings.ToLower(date)
	candidate = firstOfPattern.ReplaceAllString(candidate, "1")
	candidate = accentReplacer.Replace(candidate)
	candidate = multiSpacePattern.ReplaceAllString(strings.TrimSpace(candidate), " ")
	for _, m := range frenchMonths {
		candidate = m.pattern.ReplaceAllString(candidate, m.english)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, candidate); err == nil {
			return t.Format("2006-01-02")
		}
	}

	log.Printf("normalize: unparseable date %q", date)
	return ""
}
