package extract

import (
	"context"
	"encoding/json"
	"log"
	"regexp"
	"strings"

	"vocalis/internal/port"
)

// spousePatterns force-include the conjoint section whenever the client
// refers to a spouse or partner. The LLM classifier under-detects these
// references, and a missed conjoint section downstream means spouse data
// lands in the client scope; recall here beats precision.
var spousePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bma femme\b`),
	regexp.MustCompile(`\bmon mari\b`),
	regexp.MustCompile(`\bmon épouse\b`),
	regexp.MustCompile(`\bma épouse\b`),
	regexp.MustCompile(`\bmon époux\b`),
	regexp.MustCompile(`\bmon conjoint\b`),
	regexp.MustCompile(`\bma conjointe\b`),
	regexp.MustCompile(`\bmon partenaire\b`),
	regexp.MustCompile(`\bma partenaire\b`),
	regexp.MustCompile(`\bmon compagnon\b`),
	regexp.MustCompile(`\bma compagne\b`),
}

// Router classifies a transcript into the sections it touches.
type Router struct {
	svc port.TextExtractionService
}

// NewRouter creates a Router backed by the given extraction service.
func NewRouter(svc port.TextExtractionService) *Router {
	return &Router{svc: svc}
}

// DetectSections returns the sections covered by the transcript. The result
// is never empty: classification failures of any kind degrade to {client}.
func (r *Router) DetectSections(ctx context.Context, transcript string) []Section {
	sections := r.classify(ctx, transcript)
	sections = forceConjointDetection(transcript, sections)
	log.Printf("extract.Router: sections detected: %v", sections)
	return sections
}

func (r *Router) classify(ctx context.Context, transcript string) []Section {
	raw, err := r.svc.Complete(ctx, port.CompletionInput{
		SystemPrompt: routerSystemPrompt,
		UserPrompt:   buildRouterPrompt(transcript),
	})
	if err != nil {
		log.Printf("extract.Router: classification failed, defaulting to client: %v", err)
		return []Section{SectionClient}
	}

	var parsed struct {
		Sections []string `json:"sections"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil || parsed.Sections == nil {
		log.Printf("extract.Router: invalid classifier response, defaulting to client: %s", string(raw))
		return []Section{SectionClient}
	}

	var sections []Section
	for _, s := range parsed.Sections {
		tag := Section(s)
		if ValidSection(tag) {
			sections = append(sections, tag)
		}
	}
	if len(sections) == 0 {
		return []Section{SectionClient}
	}
	return sections
}

// forceConjointDetection appends the conjoint section when a spousal
// reference appears in the transcript, regardless of what the classifier
// returned.
func forceConjointDetection(transcript string, sections []Section) []Section {
	text := strings.ToLower(transcript)
	for _, s := range sections {
		if s == SectionConjoint {
			return sections
		}
	}
	for _, p := range spousePatterns {
		if p.MatchString(text) {
			log.Printf("extract.Router: conjoint section forced by keyword %q", p.String())
			return append(sections, SectionConjoint)
		}
	}
	return sections
}
