package domain

import (
	"context"
	"time"
)

// Capability names the AI-backed operations. They tag generation failures so
// the server-side log says which contract broke.
const (
	CapabilitySuggestSkills  = "skill suggestion"
	CapabilityJobDescription = "job description"
	CapabilityMatchJobs      = "job matching"
	CapabilityChatResponse   = "chat response"
	CapabilityVideoResume    = "video resume"
)

type SuggestSkillsInput struct {
	WorkHistory    string `json:"work_history" binding:"required"`
	JobPreferences string `json:"job_preferences" binding:"required"`
}

type SuggestSkillsOutput struct {
	SuggestedSkills []string `json:"suggestedSkills"`
}

type JobDescriptionInput struct {
	Title            string `json:"title" binding:"required"`
	Responsibilities string `json:"responsibilities" binding:"required"`
}

type JobDescriptionOutput struct {
	Description     string   `json:"description"`
	SuggestedSkills []string `json:"suggestedSkills"`
}

type MatchedJob struct {
	JobID  string `json:"jobId"`
	Reason string `json:"reason"`
}

type MatchJobsOutput struct {
	MatchedJobs []MatchedJob `json:"matchedJobs"`
}

// MatchResult is a matched job augmented with the resolved posting. Every
// result handed to the caller resolves to an existing posting; unresolvable
// IDs are dropped before that point.
type MatchResult struct {
	JobID  string     `json:"jobId"`
	Reason string     `json:"reason"`
	Job    JobPosting `json:"job"`
}

type ChatResponseOutput struct {
	Response string `json:"response"`
}

// Generator is the single boundary to the structured generation model. Every
// method either returns output conforming to its declared shape or an error;
// there is no partial success.
type Generator interface {
	SuggestSkills(ctx context.Context, input SuggestSkillsInput) (*SuggestSkillsOutput, error)
	GenerateJobDescription(ctx context.Context, input JobDescriptionInput) (*JobDescriptionOutput, error)
	MatchJobs(ctx context.Context, freelancer *FreelancerProfile, jobs []JobPosting) (*MatchJobsOutput, error)
	GenerateChatResponse(ctx context.Context, freelancer *FreelancerProfile, history []ChatMessage) (*ChatResponseOutput, error)
}

// SpeechClip is the stage-A product of video generation: synthesized speech
// re-encoded as a WAV data URI plus its playback length.
type SpeechClip struct {
	DataURI  string
	Duration time.Duration
}

type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, script string) (*SpeechClip, error)
}

// VideoRequest is the stage-B submission: a fixed instruction, the
// freelancer's avatar, and the synthesized audio track.
type VideoRequest struct {
	Instruction      string
	AvatarURL        string
	AudioDataURI     string
	DurationSeconds  int32
	AspectRatio      string
	PersonGeneration string
}

// MediaPart is one entry of a finished operation's output. Either URI or
// Data is set depending on how the provider returns the asset.
type MediaPart struct {
	ContentType string
	URI         string
	Data        []byte
}

// VideoOperation is an opaque handle to a long-running generation job,
// polled until terminal.
type VideoOperation struct {
	Handle       any // provider-specific handle, round-tripped through Poll
	Done         bool
	ErrorMessage string
	Media        []MediaPart
}

type VideoSynthesizer interface {
	Submit(ctx context.Context, req VideoRequest) (*VideoOperation, error)
	Poll(ctx context.Context, op *VideoOperation) (*VideoOperation, error)
	Download(ctx context.Context, part MediaPart) ([]byte, error)
}

// MediaUploader rehosts a generated asset and returns its public URL.
type MediaUploader interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}

type VideoResumeOutput struct {
	VideoURL string `json:"videoUrl"`
}

type VideoUsecase interface {
	GenerateVideoResume(ctx context.Context, freelancerID, script string) (*VideoResumeOutput, error)
}

type SkillUsecase interface {
	SuggestSkills(ctx context.Context, input SuggestSkillsInput) (*SuggestSkillsOutput, error)
}

type MatchUsecase interface {
	MatchJobs(ctx context.Context, freelancerID string) ([]MatchResult, error)
}
