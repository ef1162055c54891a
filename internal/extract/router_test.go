package extract

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vocalis/mocks"
)

func TestDetectSections(t *testing.T) {
	svc := new(mocks.MockTextExtractionService)
	svc.On("Complete", mock.Anything, mock.Anything).
		Return(json.RawMessage(`{"sections": ["client", "retraite", "epargne"]}`), nil)

	r := NewRouter(svc)
	sections := r.DetectSections(context.Background(), "je voudrais préparer ma retraite et placer mon épargne")

	assert.Equal(t, []Section{SectionClient, SectionRetraite, SectionEpargne}, sections)
}

func TestDetectSections_SpousalOverride(t *testing.T) {
	transcripts := []string{
		"Ma femme s'appelle Sophie Martin",
		"Mon mari travaille à Lyon",
		"Mon épouse est infirmière",
		"Mon conjoint a 45 ans",
		"Ma compagne ne travaille plus",
	}

	for _, transcript := range transcripts {
		svc := new(mocks.MockTextExtractionService)
		// Classifier misses the spouse reference
		svc.On("Complete", mock.Anything, mock.Anything).
			Return(json.RawMessage(`{"sections": ["client"]}`), nil)

		r := NewRouter(svc)
		sections := r.DetectSections(context.Background(), transcript)

		assert.Contains(t, sections, SectionConjoint, "transcript: %s", transcript)
	}
}

func TestDetectSections_SpousalOverrideNoDuplicate(t *testing.T) {
	svc := new(mocks.MockTextExtractionService)
	svc.On("Complete", mock.Anything, mock.Anything).
		Return(json.RawMessage(`{"sections": ["client", "conjoint"]}`), nil)

	r := NewRouter(svc)
	sections := r.DetectSections(context.Background(), "ma femme s'appelle Sophie")

	count := 0
	for _, s := range sections {
		if s == SectionConjoint {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestDetectSections_ClassifierFailure(t *testing.T) {
	svc := new(mocks.MockTextExtractionService)
	svc.On("Complete", mock.Anything, mock.Anything).
		Return(nil, errors.New("api unavailable"))

	r := NewRouter(svc)
	sections := r.DetectSections(context.Background(), "bonjour")

	assert.Equal(t, []Section{SectionClient}, sections)
}

func TestDetectSections_MalformedResponse(t *testing.T) {
	svc := new(mocks.MockTextExtractionService)
	svc.On("Complete", mock.Anything, mock.Anything).
		Return(json.RawMessage(`{"unexpected": true}`), nil)

	r := NewRouter(svc)
	sections := r.DetectSections(context.Background(), "bonjour")

	assert.Equal(t, []Section{SectionClient}, sections)
}

func TestDetectSections_UnknownSectionsFiltered(t *testing.T) {
	svc := new(mocks.MockTextExtractionService)
	svc.On("Complete", mock.Anything, mock.Anything).
		Return(json.RawMessage(`{"sections": ["client", "astrologie"]}`), nil)

	r := NewRouter(svc)
	sections := r.DetectSections(context.Background(), "bonjour")

	assert.Equal(t, []Section{SectionClient}, sections)
}

func TestSortSections(t *testing.T) {
	in := []Section{SectionRetraite, SectionClient, SectionConjoint, SectionRetraite}
	assert.Equal(t, []Section{SectionClient, SectionConjoint, SectionRetraite}, SortSections(in))
}
