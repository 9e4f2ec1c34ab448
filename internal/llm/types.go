package llm

// ResponseFormat tells the provider what shape of output the prompt asks for.
type ResponseFormat int

const (
	FormatText ResponseFormat = iota
	FormatJSONObject
	FormatJSONArray
)

// IsJSON reports whether the output is expected to be a JSON document.
func (f ResponseFormat) IsJSON() bool {
	return f == FormatJSONObject || f == FormatJSONArray
}

// CompletionRequest contains the parameters for a single prompt completion.
type CompletionRequest struct {
	Model       string
	Prompt      string
	MaxTokens   int
	Temperature float64
	Format      ResponseFormat
}

// CompletionResponse contains the raw model output and usage counters.
type CompletionResponse struct {
	Content      string
	InputTokens  int
	OutputTokens int
	Model        string
	FinishReason string
}
