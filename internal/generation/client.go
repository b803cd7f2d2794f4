// Package generation is the single boundary to the Gemini API: structured
// JSON generation for the text capabilities, speech synthesis, and the
// long-running video operations.
package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"skillsync-backend/internal/domain"
	"skillsync-backend/pkg/apperror"
	"skillsync-backend/pkg/logger"

	"google.golang.org/genai"
)

type Config struct {
	APIKey     string
	TextModel  string
	TTSModel   string
	VideoModel string
	Voice      string
}

func (c *Config) applyDefaults() {
	if c.TextModel == "" {
		c.TextModel = "gemini-2.0-flash"
	}
	if c.TTSModel == "" {
		c.TTSModel = "gemini-2.5-flash-preview-tts"
	}
	if c.VideoModel == "" {
		c.VideoModel = "veo-2.0-generate-001"
	}
	if c.Voice == "" {
		c.Voice = "Algenib"
	}
}

type Client struct {
	genai *genai.Client
	cfg   Config
	httpc *http.Client
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("generation: GEMINI_API_KEY not configured")
	}
	cfg.applyDefaults()

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("generation: create client: %w", err)
	}

	return &Client{
		genai: gc,
		cfg:   cfg,
		httpc: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// generateJSON is the choke point for every structured capability: one
// prompt in, schema-constrained JSON out, decoded into out. Any transport
// error or output that does not parse into the declared shape is a
// generation failure, never a partial success.
func (c *Client) generateJSON(ctx context.Context, capability, prompt string, schema *genai.Schema, out any) error {
	resp, err := c.genai.Models.GenerateContent(ctx, c.cfg.TextModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		logger.Log.Error("model call failed", "capability", capability, "error", err)
		return apperror.GenerationFailed(capability, err)
	}

	text := resp.Text()
	if text == "" {
		return apperror.GenerationFailed(capability, errors.New("empty model response"))
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		logger.Log.Error("model output failed schema validation", "capability", capability, "error", err)
		return apperror.GenerationFailed(capability, fmt.Errorf("unparseable model output: %w", err))
	}
	return nil
}

func (c *Client) SuggestSkills(ctx context.Context, input domain.SuggestSkillsInput) (*domain.SuggestSkillsOutput, error) {
	prompt, err := renderSuggestSkills(input)
	if err != nil {
		return nil, apperror.GenerationFailed(domain.CapabilitySuggestSkills, err)
	}

	var out domain.SuggestSkillsOutput
	if err := c.generateJSON(ctx, domain.CapabilitySuggestSkills, prompt, suggestSkillsSchema, &out); err != nil {
		return nil, err
	}
	if len(out.SuggestedSkills) == 0 {
		return nil, apperror.GenerationFailed(domain.CapabilitySuggestSkills, errors.New("model returned no skills"))
	}
	return &out, nil
}

func (c *Client) GenerateJobDescription(ctx context.Context, input domain.JobDescriptionInput) (*domain.JobDescriptionOutput, error) {
	prompt, err := renderJobDescription(input)
	if err != nil {
		return nil, apperror.GenerationFailed(domain.CapabilityJobDescription, err)
	}

	var out domain.JobDescriptionOutput
	if err := c.generateJSON(ctx, domain.CapabilityJobDescription, prompt, jobDescriptionSchema, &out); err != nil {
		return nil, err
	}
	if out.Description == "" {
		return nil, apperror.GenerationFailed(domain.CapabilityJobDescription, errors.New("model returned no description"))
	}
	return &out, nil
}

func (c *Client) MatchJobs(ctx context.Context, freelancer *domain.FreelancerProfile, jobs []domain.JobPosting) (*domain.MatchJobsOutput, error) {
	prompt, err := renderMatchJobs(freelancer, jobs)
	if err != nil {
		return nil, apperror.GenerationFailed(domain.CapabilityMatchJobs, err)
	}

	var out domain.MatchJobsOutput
	if err := c.generateJSON(ctx, domain.CapabilityMatchJobs, prompt, matchJobsSchema, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GenerateChatResponse(ctx context.Context, freelancer *domain.FreelancerProfile, history []domain.ChatMessage) (*domain.ChatResponseOutput, error) {
	prompt, err := renderChatResponse(freelancer, history)
	if err != nil {
		return nil, apperror.GenerationFailed(domain.CapabilityChatResponse, err)
	}

	var out domain.ChatResponseOutput
	if err := c.generateJSON(ctx, domain.CapabilityChatResponse, prompt, chatResponseSchema, &out); err != nil {
		return nil, err
	}
	if out.Response == "" {
		return nil, apperror.GenerationFailed(domain.CapabilityChatResponse, errors.New("model returned no response"))
	}
	return &out, nil
}
