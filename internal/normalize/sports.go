package normalize

import (
	"log"
	"regexp"
	"strings"

	"vocalis/internal/domain"
)

// wordPattern builds a whole-word pattern that also works for keywords
// containing accented letters, which \b (ASCII-only) would split.
func wordPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^\p{L}])` + regexp.QuoteMeta(keyword) + `(?:[^\p{L}]|$)`)
}

type sportKeyword struct {
	keyword  string
	canon    string
	mention  *regexp.Regexp
	negation *regexp.Regexp
}

func newSportKeyword(keyword, canon string) sportKeyword {
	return sportKeyword{
		keyword:  keyword,
		canon:    canon,
		mention:  wordPattern(keyword),
		negation: regexp.MustCompile(`(?:pas|plus|jamais|aucun)\s+(?:de\s+)?` + regexp.QuoteMeta(keyword)),
	}
}

var sportKeywords = []sportKeyword{
	newSportKeyword("football", "Football"),
	newSportKeyword("foot", "Football"),
	newSportKeyword("tennis", "Tennis"),
	newSportKeyword("natation", "Natation"),
	newSportKeyword("course", "Course à pied"),
	newSportKeyword("running", "Running"),
	newSportKeyword("jogging", "Jogging"),
	newSportKeyword("musculation", "Musculation"),
	newSportKeyword("fitness", "Fitness"),
	newSportKeyword("gym", "Gym"),
	newSportKeyword("yoga", "Yoga"),
	newSportKeyword("pilates", "Pilates"),
	newSportKeyword("boxe", "Boxe"),
	newSportKeyword("judo", "Judo"),
	newSportKeyword("karaté", "Karaté"),
	newSportKeyword("karate", "Karaté"),
	newSportKeyword("vélo", "Vélo"),
	newSportKeyword("velo", "Vélo"),
	newSportKeyword("cyclisme", "Cyclisme"),
	newSportKeyword("randonnée", "Randonnée"),
	newSportKeyword("randonnee", "Randonnée"),
	newSportKeyword("ski", "Ski"),
	newSportKeyword("snowboard", "Snowboard"),
	newSportKeyword("surf", "Surf"),
	newSportKeyword("plongée", "Plongée"),
	newSportKeyword("plongee", "Plongée"),
	newSportKeyword("escalade", "Escalade"),
	newSportKeyword("basketball", "Basketball"),
	newSportKeyword("basket", "Basketball"),
	newSportKeyword("volleyball", "Volleyball"),
	newSportKeyword("volley", "Volleyball"),
	newSportKeyword("handball", "Handball"),
	newSportKeyword("rugby", "Rugby"),
	newSportKeyword("golf", "Golf"),
	newSportKeyword("équitation", "Équitation"),
	newSportKeyword("equitation", "Équitation"),
	newSportKeyword("danse", "Danse"),
	newSportKeyword("badminton", "Badminton"),
	newSportKeyword("squash", "Squash"),
	newSportKeyword("paddle", "Paddle"),
	newSportKeyword("crossfit", "CrossFit"),
	newSportKeyword("triathlon", "Triathlon"),
	newSportKeyword("marathon", "Marathon"),
	newSportKeyword("athlétisme", "Athlétisme"),
	newSportKeyword("athletisme", "Athlétisme"),
	newSportKeyword("moto", "Moto"),
	newSportKeyword("motocross", "Motocross"),
	newSportKeyword("parachutisme", "Parachutisme"),
	newSportKeyword("parapente", "Parapente"),
	newSportKeyword("alpinisme", "Alpinisme"),
	newSportKeyword("voile", "Voile"),
	newSportKeyword("aviron", "Aviron"),
	newSportKeyword("canoë", "Canoë"),
	newSportKeyword("canoe", "Canoë"),
	newSportKeyword("kayak", "Kayak"),
	newSportKeyword("tir sportif", "Tir sportif"),
	newSportKeyword("tir", "Tir sportif"),
	newSportKeyword("chasse", "Chasse"),
	newSportKeyword("pêche", "Pêche"),
	newSportKeyword("peche", "Pêche"),
}

var sportCanonByKeyword = func() map[string]string {
	m := make(map[string]string, len(sportKeywords))
	for _, s := range sportKeywords {
		m[s.keyword] = s.canon
	}
	return m
}()

// sportContextPatterns capture the sport name from spoken practice phrases
// ("je fais du tennis", "je joue au foot").
var sportContextPatterns = []*regexp.Regexp{
	regexp.MustCompile(`je\s+(?:fais|pratique)\s+(?:du|de\s+la|de\s+l['e]?)\s+(\w+)`),
	regexp.MustCompile(`je\s+joue\s+(?:au|à\s+la|à\s+l['e]?)\s+(\w+)`),
	regexp.MustCompile(`(?:mon|ma)\s+sport\s+(?:c'?est|principal)\s+(?:le|la|l['e]?)\s+(\w+)`),
}

// detectSports scans the transcript for sport mentions, sets the
// activites_sportives flag and fills the details field from the canonical
// sport names when the extractor left it empty.
func detectSports(text string, record domain.Record) {
	var detected []string
	seen := make(map[string]bool)
	add := func(canon string) {
		if !seen[canon] {
			seen[canon] = true
			detected = append(detected, canon)
		}
	}

	for _, p := range sportContextPatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			if canon, ok := sportCanonByKeyword[strings.TrimSpace(m[1])]; ok {
				add(canon)
			}
		}
	}

	for _, s := range sportKeywords {
		if seen[s.canon] {
			continue
		}
		if s.mention.MatchString(text) && !s.negation.MatchString(text) {
			add(s.canon)
		}
	}

	if len(detected) == 0 {
		return
	}

	record["activites_sportives"] = true
	if record.StringValue("details_activites_sportives") == "" {
		record["details_activites_sportives"] = strings.Join(detected, ", ")
	}
	log.Printf("normalize: sports detected from transcript: %v", detected)
}
