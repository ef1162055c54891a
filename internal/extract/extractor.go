package extract

import (
	"context"
	"encoding/json"
	"log"

	"vocalis/internal/domain"
	"vocalis/internal/port"
)

// SectionExtractor runs the LLM extraction for one section of a transcript.
type SectionExtractor struct {
	section Section
	svc     port.TextExtractionService
}

// NewSectionExtractor creates an extractor for the given section.
func NewSectionExtractor(section Section, svc port.TextExtractionService) *SectionExtractor {
	return &SectionExtractor{section: section, svc: svc}
}

// NewSectionExtractors builds one extractor per known section, all backed by
// the same extraction service.
func NewSectionExtractors(svc port.TextExtractionService) map[Section]*SectionExtractor {
	out := make(map[Section]*SectionExtractor, len(sectionOrder))
	for _, s := range sectionOrder {
		out[s] = NewSectionExtractor(s, svc)
	}
	return out
}

// Section returns the section this extractor is bound to.
func (e *SectionExtractor) Section() Section {
	return e.section
}

// Extract returns the structured record for this extractor's section. A
// failed or malformed extraction never aborts the run: it degrades to an
// empty record so the other sections' results survive.
func (e *SectionExtractor) Extract(ctx context.Context, transcript string) domain.Record {
	raw, err := e.svc.Complete(ctx, port.CompletionInput{
		SystemPrompt: sectionSystemPrompts[e.section],
		UserPrompt:   buildSectionPrompt(e.section, transcript),
	})
	if err != nil {
		log.Printf("extract.SectionExtractor: %s extraction failed: %v", e.section, err)
		return domain.Record{}
	}

	var record domain.Record
	if err := json.Unmarshal(raw, &record); err != nil {
		log.Printf("extract.SectionExtractor: %s returned malformed JSON: %v", e.section, err)
		return domain.Record{}
	}
	if record == nil {
		record = domain.Record{}
	}
	return record
}
