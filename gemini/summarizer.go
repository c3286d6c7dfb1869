package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/linediff"
)

// Compile-time interface verification.
var _ linediff.Summarizer = (*Summarizer)(nil)

// DefaultTimeout is the default timeout for a single summarize call.
const DefaultTimeout = 60 * time.Second

// maxPromptDiff caps the unified text sent to the model, in bytes.
const maxPromptDiff = 200_000

// Summarizer implements linediff.Summarizer using Google Gemini.
type Summarizer struct {
	client  GenerativeClient
	model   string
	timeout time.Duration
}

// SummarizerOption configures a Summarizer.
type SummarizerOption func(*Summarizer)

// WithTimeout sets the timeout for API calls.
func WithTimeout(d time.Duration) SummarizerOption {
	return func(s *Summarizer) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewSummarizer creates a new Summarizer. An empty model selects DefaultModel.
func NewSummarizer(client GenerativeClient, model string, opts ...SummarizerOption) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	s := &Summarizer{
		client:  client,
		model:   model,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

// Summarize describes the differences of a comparison in a few sentences.
func (s *Summarizer) Summarize(ctx context.Context, c *linediff.Comparison) (string, error) {
	if c == nil || c.Result == nil {
		return "", errors.New("gemini: nothing to summarize")
	}
	if c.Result.Identical() {
		return "The texts are identical.", nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	contents := []*Content{{
		Parts: []*Part{{Text: BuildPrompt(c)}},
	}}

	resp, err := s.client.GenerateContent(ctx, s.model, contents, BuildConfig())
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", fmt.Errorf("gemini: returned nil response")
	}

	var out summaryResponse
	if err := json.Unmarshal([]byte(resp.Text), &out); err != nil {
		return "", fmt.Errorf("gemini: failed to parse response: %w", err)
	}
	summary := strings.TrimSpace(out.Summary)
	if summary == "" {
		return "", fmt.Errorf("gemini: empty summary")
	}
	return summary, nil
}

// BuildPrompt creates the user prompt for a comparison.
func BuildPrompt(c *linediff.Comparison) string {
	stats := c.Result.Stats
	unified := linediff.FormatUnified(c.Result, c.LeftLabel, c.RightLabel)
	truncated := len(unified) > maxPromptDiff
	if truncated {
		unified = strings.ToValidUTF8(unified[:maxPromptDiff], "")
	}

	var sb strings.Builder
	sb.WriteString("Two versions of a text were compared line by line.\n\n")
	sb.WriteString("## Statistics\n\n")
	fmt.Fprintf(&sb, "lines: %d before, %d after\n", stats.TotalLeft, stats.TotalRight)
	fmt.Fprintf(&sb, "added: %d, removed: %d, modified: %d, unchanged: %d\n",
		stats.Additions, stats.Deletions, stats.Modifications, stats.Unchanged)
	fmt.Fprintf(&sb, "similarity: %d%%\n", stats.Similarity())

	var ignored []string
	if c.Options.IgnoreWhitespace {
		ignored = append(ignored, "whitespace")
	}
	if c.Options.IgnoreCase {
		ignored = append(ignored, "letter case")
	}
	if c.Options.TrimLines {
		ignored = append(ignored, "leading and trailing spaces")
	}
	if len(ignored) > 0 {
		fmt.Fprintf(&sb, "differences in %s were ignored\n", strings.Join(ignored, ", "))
	}

	sb.WriteString("\n## Diff\n\n")
	sb.WriteString(unified)
	sb.WriteString("\n")
	if truncated {
		sb.WriteString("[diff truncated]\n")
	}

	sb.WriteString("\n## Task\n\n")
	sb.WriteString("Summarize what changed between the two versions in at most three sentences. ")
	sb.WriteString("Describe the intent of the edit, not every line.\n")

	return sb.String()
}

// BuildConfig returns the GenerateContentConfig for summary calls.
func BuildConfig() *GenerateContentConfig {
	temp := float32(0.2)
	return &GenerateContentConfig{
		SystemInstruction: &Content{
			Parts: []*Part{{
				Text: `You are an editor reviewing changes between two versions of a document or source file. Be concise and concrete.`,
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &Schema{
			Type: "object",
			Properties: map[string]*Schema{
				"summary": {Type: "string", Description: "Plain-language summary of the changes"},
			},
			Required: []string{"summary"},
		},
		ThinkingLevel: "LOW",
	}
}

// GenerativeClient abstracts the Gemini API for testing.
type GenerativeClient interface {
	GenerateContent(ctx context.Context, model string, contents []*Content, config *GenerateContentConfig) (*GenerateContentResponse, error)
}

// Content represents a message in a Gemini conversation.
type Content struct {
	Parts []*Part
}

// Part represents a part of a message.
type Part struct {
	Text string
}

// GenerateContentConfig holds configuration for content generation.
type GenerateContentConfig struct {
	SystemInstruction *Content
	Temperature       *float32
	ResponseMIMEType  string
	ResponseSchema    *Schema
	ThinkingLevel     string // "", "MINIMAL", "LOW", "MEDIUM", "HIGH"
}

// Schema represents the structure for controlled JSON generation.
type Schema struct {
	Type        string             // object or string
	Properties  map[string]*Schema // For object types
	Required    []string           // Required property names
	Description string             // Field description
}

// GenerateContentResponse holds the response from content generation.
type GenerateContentResponse struct {
	Text string
}

// MockGenerativeClient is a mock implementation of GenerativeClient for testing.
type MockGenerativeClient struct {
	GenerateContentFn func(ctx context.Context, model string, contents []*Content, config *GenerateContentConfig) (*GenerateContentResponse, error)
}

func (m *MockGenerativeClient) GenerateContent(ctx context.Context, model string, contents []*Content, config *GenerateContentConfig) (*GenerateContentResponse, error) {
	return m.GenerateContentFn(ctx, model, contents, config)
}

// APIError represents an error from the Gemini API with HTTP status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError with the given status code and message.
func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{StatusCode: statusCode, Message: message}
}
