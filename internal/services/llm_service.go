package services

import (
	"context"
	"fmt"
	"log"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// LLMService turns raw posting text pasted by an employer into structured
// draft fields for the post-job form. Entirely optional: without an API key
// the service stays disabled and the endpoint answers 503.
type LLMService struct {
	client llms.Model
}

func NewLLMService(apiKey string) *LLMService {
	if apiKey == "" {
		log.Println("GEMINI_API_KEY not set, posting extraction disabled")
		return &LLMService{}
	}
	llm, err := googleai.New(context.Background(),
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel("gemini-2.5-flash"),
	)
	if err != nil {
		log.Println("Failed to create Gemini client, posting extraction disabled:", err)
		return &LLMService{}
	}
	return &LLMService{client: llm}
}

func (s *LLMService) Enabled() bool { return s.client != nil }

const postingExtractionPrompt = `
You are an expert Job Data Extraction Agent. Analyze the provided raw
HTML/text of a job posting and extract structured data.

### INSTRUCTIONS:
1. Ignore navigation menus, footers, "similar jobs" lists and ads.
2. Extract the fields below strictly.
3. Output valid JSON only. Do not wrap the output in markdown code blocks.

### OUTPUT SCHEMA:
{
    "title": "Job title (e.g., Senior Backend Engineer)",
    "description": "Clean summary focusing on responsibilities and requirements, HTML removed",
    "category": "Job category (e.g., Software Development)",
    "country": "Country of the position, or null",
    "city": "City of the position, or null",
    "location": "Full location line or 'Remote'",
    "fixedSalary": number or null,
    "salaryFrom": number or null,
    "salaryTo": number or null
}

### CONSTRAINT:
If a piece of information is missing, set the value to null. Do not guess.

### RAW CONTENT:
%s
`

// ExtractPosting returns the model's JSON string untouched; the handler
// passes it through as a raw message.
func (s *LLMService) ExtractPosting(ctx context.Context, raw string) (string, error) {
	// Keep the prompt inside the model's context window.
	if len(raw) > 20000 {
		raw = raw[:20000]
	}
	prompt := fmt.Sprintf(postingExtractionPrompt, raw)
	return llms.GenerateFromSinglePrompt(ctx, s.client, prompt)
}
