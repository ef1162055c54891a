package normalize

import (
	"log"
	"regexp"
	"strings"
)

// Spoken emails come through as "jean point dupont arobase gmail point com";
// when the extractor returns such a value without '@' we go back to the
// transcript, isolate the utterance around the email mention and translate
// the spoken symbols.
var emailContextPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:email|mail|adresse\s+email|adresse\s+mail)[^\n.]{0,200}`),
	regexp.MustCompile(`(?:mon|mon\s+email|mon\s+mail)[^\n.]{0,200}`),
	regexp.MustCompile(`(?:c'?est|c'?est\s+quoi|voici)[^\n.]{0,200}(?:arobase|at|arrobase)[^\n.]{0,200}`),
}

var (
	emailLeadIn      = regexp.MustCompile(`^.*?(?:email|mail|adresse|mon|c'?est|voici)\s*`)
	emailFillerWords = regexp.MustCompile(`\b(?:le|la|les|un|une|des|mon|ma|mes|c'?est|est|voici|voilà)\b`)
	spokenAt         = regexp.MustCompile(`\b(?:arobase|at|arrobase|a\s+commercial)\b`)
	spokenDot        = regexp.MustCompile(`\b(?:point|dot)\b`)
	spokenDash       = regexp.MustCompile(`\b(?:tiret|tiret\s+du\s+8|trait\s+d'?union)\b`)
	spokenUnderscore = regexp.MustCompile(`\b(?:underscore|tiret\s+bas|souligné)\b`)
	emailWhitespace  = regexp.MustCompile(`\s+`)
	emailJunk        = regexp.MustCompile(`[^\w@.\-]`)
	localPartJunk    = regexp.MustCompile(`[^\w.\-]`)
	domainPartJunk   = regexp.MustCompile(`[^\w.\-]`)
)

// RepairSpokenEmail tries to reconstruct a valid email address from the
// transcript when the extracted value lacks an '@'. Returns "" when no
// plausible address can be rebuilt.
func RepairSpokenEmail(transcript string) string {
	text := strings.ToLower(transcript)

	var context string
	for _, p := range emailContextPatterns {
		if m := p.FindString(text); m != "" {
			context = m
			break
		}
	}
	if context == "" {
		log.Printf("normalize: no email context found in transcript")
		return ""
	}

	s := emailLeadIn.ReplaceAllString(context, "")
	s = emailFillerWords.ReplaceAllString(s, "")
	s = spokenAt.ReplaceAllString(s, "@")
	s = spokenDot.ReplaceAllString(s, ".")
	s = spokenDash.ReplaceAllString(s, "-")
	s = spokenUnderscore.ReplaceAllString(s, "_")
	s = emailWhitespace.ReplaceAllString(s, "")
	s = emailJunk.ReplaceAllString(s, "")

	if ValidEmail(s) {
		return strings.ToLower(s)
	}

	// Salvage pass: clean each side of the '@' separately.
	parts := strings.Split(s, "@")
	if len(parts) == 2 {
		local := localPartJunk.ReplaceAllString(parts[0], "")
		domain := domainPartJunk.ReplaceAllString(parts[1], "")
		if local != "" && domain != "" && strings.Contains(domain, ".") {
			candidate := strings.ToLower(local + "@" + domain)
			if ValidEmail(candidate) {
				return candidate
			}
		}
	}

	log.Printf("normalize: could not rebuild a valid email from %q", context)
	return ""
}
