package port

import (
	"context"
	"encoding/json"
)

// CompletionInput carries one strict-JSON extraction request to the language
// model collaborator. The transcript is embedded in the user prompt by the
// caller; the service itself is transcript-agnostic.
type CompletionInput struct {
	SystemPrompt string
	UserPrompt   string
}

// TextExtractionService abstracts the external LLM call used for section
// routing and section extraction. Implementations must request a
// deterministic, strict-JSON response mode and return the raw JSON object
// emitted by the model. Malformed model output is the caller's problem;
// transport and API errors are the implementation's.
type TextExtractionService interface {
	Complete(ctx context.Context, input CompletionInput) (json.RawMessage, error)
}
