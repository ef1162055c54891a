package extract

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"vocalis/internal/domain"
)

// SectionDetector classifies a transcript into sections.
type SectionDetector interface {
	DetectSections(ctx context.Context, transcript string) []Section
}

// Guardrails repairs and validates a merged record against the transcript.
type Guardrails interface {
	Apply(record domain.Record, transcript string) domain.Record
	CheckCoherence(record domain.Record) domain.Record
}

// Normalizer canonicalizes field formats on a record.
type Normalizer interface {
	Normalize(record domain.Record, transcript string) domain.Record
}

// Analyzer orchestrates the full transcript-to-record pipeline: routing,
// parallel per-section extraction, merging, conflict cleanup, guardrails and
// normalization.
type Analyzer struct {
	router     SectionDetector
	extractors map[Section]*SectionExtractor
	guards     Guardrails
	normalizer Normalizer
}

// NewAnalyzer wires the pipeline stages together.
func NewAnalyzer(
	router SectionDetector,
	extractors map[Section]*SectionExtractor,
	guards Guardrails,
	normalizer Normalizer,
) *Analyzer {
	return &Analyzer{
		router:     router,
		extractors: extractors,
		guards:     guards,
		normalizer: normalizer,
	}
}

// ExtractClientData runs the pipeline on a transcript and returns the final
// record. It never returns an error: every stage degrades rather than
// aborts, and a panic anywhere in the pipeline yields an empty record.
func (a *Analyzer) ExtractClientData(ctx context.Context, transcript string) (record domain.Record) {
	runID := uuid.NewString()[:8]

	defer func() {
		if r := recover(); r != nil {
			log.Printf("extract.Analyzer: [%s] pipeline panic: %v", runID, r)
			record = domain.Record{}
		}
	}()

	sections := SortSections(a.router.DetectSections(ctx, transcript))
	log.Printf("extract.Analyzer: [%s] extracting sections %v", runID, sections)

	// Section extractions are independent LLM calls; run them concurrently
	// and fold the results afterwards in canonical order.
	results := make([]domain.Record, len(sections))
	var wg sync.WaitGroup
	for i, section := range sections {
		extractor, ok := a.extractors[section]
		if !ok {
			log.Printf("extract.Analyzer: [%s] no extractor for section %s", runID, section)
			results[i] = domain.Record{}
			continue
		}
		wg.Add(1)
		go func(i int, extractor *SectionExtractor) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Printf("extract.Analyzer: [%s] %s extractor panic: %v", runID, extractor.Section(), r)
					results[i] = domain.Record{}
				}
			}()
			results[i] = extractor.Extract(ctx, transcript)
		}(i, extractor)
	}
	wg.Wait()

	record = domain.Record{}
	for _, r := range results {
		record = Merge(record, r)
	}

	record = CleanClientIfSpouseMatch(record, sections)
	record = a.guards.Apply(record, transcript)
	record = a.guards.CheckCoherence(record)
	record = a.normalizer.Normalize(record, transcript)

	log.Printf("extract.Analyzer: [%s] extraction complete, %d top-level fields", runID, len(record))
	return record
}
