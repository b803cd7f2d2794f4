package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"skillsync-backend/internal/domain"
	"skillsync-backend/pkg/apperror"
	"skillsync-backend/pkg/logger"
)

// videoInstruction is the fixed stage-B prompt accompanying the avatar image
// and audio track.
const videoInstruction = "Animate the person in the provided image to speak the accompanying audio track. The background should be a simple, professional setting suitable for a resume."

const (
	minClipSeconds = 5
	maxClipSeconds = 8
)

// VideoConfig makes the fallback-vs-propagate choice explicit instead of
// baked in: with PropagateErrors off, any failure degrades to FallbackURL.
type VideoConfig struct {
	PollInterval    time.Duration
	PollTimeout     time.Duration
	FallbackURL     string
	PropagateErrors bool
}

type videoUsecase struct {
	freelancerRepo domain.FreelancerRepository
	speech         domain.SpeechSynthesizer
	video          domain.VideoSynthesizer
	uploader       domain.MediaUploader // nil disables rehosting
	cfg            VideoConfig
}

func NewVideoUsecase(freelancerRepo domain.FreelancerRepository, speech domain.SpeechSynthesizer, video domain.VideoSynthesizer, uploader domain.MediaUploader, cfg VideoConfig) domain.VideoUsecase {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = 10 * time.Minute
	}
	return &videoUsecase{
		freelancerRepo: freelancerRepo,
		speech:         speech,
		video:          video,
		uploader:       uploader,
		cfg:            cfg,
	}
}

func (u *videoUsecase) GenerateVideoResume(ctx context.Context, freelancerID, script string) (*domain.VideoResumeOutput, error) {
	out, err := u.generate(ctx, freelancerID, script)
	if err != nil {
		if u.cfg.PropagateErrors {
			return nil, err
		}
		logger.Log.Error("video generation degraded to placeholder", "freelancer", freelancerID, "error", err)
		return &domain.VideoResumeOutput{VideoURL: u.cfg.FallbackURL}, nil
	}
	return out, nil
}

func (u *videoUsecase) generate(ctx context.Context, freelancerID, script string) (*domain.VideoResumeOutput, error) {
	freelancer, err := u.freelancerRepo.GetByID(ctx, freelancerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Freelancer not found")
		}
		return nil, err
	}

	// Stage A: speech synthesis.
	clip, err := u.speech.Synthesize(ctx, script)
	if err != nil {
		return nil, err
	}

	// Stage B: video synthesis, clip length taken from the audio.
	op, err := u.video.Submit(ctx, domain.VideoRequest{
		Instruction:      videoInstruction,
		AvatarURL:        freelancer.AvatarURL,
		AudioDataURI:     clip.DataURI,
		DurationSeconds:  clampSeconds(clip.Duration),
		AspectRatio:      "16:9",
		PersonGeneration: "allow_adult",
	})
	if err != nil {
		return nil, err
	}

	op, err = u.await(ctx, op)
	if err != nil {
		return nil, err
	}

	if op.ErrorMessage != "" {
		return nil, apperror.GenerationFailed(domain.CapabilityVideoResume, errors.New(op.ErrorMessage))
	}

	part, ok := firstVideoPart(op.Media)
	if !ok {
		return nil, apperror.GenerationFailed(domain.CapabilityVideoResume, errors.New("operation result contains no video"))
	}

	if u.uploader != nil {
		if url, err := u.rehost(ctx, freelancerID, part); err == nil {
			return &domain.VideoResumeOutput{VideoURL: url}, nil
		} else {
			logger.Log.Error("video rehost failed, using fallback URL", "freelancer", freelancerID, "error", err)
		}
	}

	// Without a rehost target the model-side URI is not directly servable to
	// the client, so the configured fallback URL stands in for the asset.
	return &domain.VideoResumeOutput{VideoURL: u.cfg.FallbackURL}, nil
}

// await polls the operation every PollInterval until it is done, bounded by
// PollTimeout and the caller's context.
func (u *videoUsecase) await(ctx context.Context, op *domain.VideoOperation) (*domain.VideoOperation, error) {
	deadline := time.Now().Add(u.cfg.PollTimeout)
	for !op.Done {
		if time.Now().After(deadline) {
			return nil, apperror.GenerationTimeout(domain.CapabilityVideoResume)
		}
		select {
		case <-ctx.Done():
			return nil, apperror.GenerationFailed(domain.CapabilityVideoResume, ctx.Err())
		case <-time.After(u.cfg.PollInterval):
		}

		next, err := u.video.Poll(ctx, op)
		if err != nil {
			return nil, err
		}
		op = next
	}
	return op, nil
}

func (u *videoUsecase) rehost(ctx context.Context, freelancerID string, part domain.MediaPart) (string, error) {
	data, err := u.video.Download(ctx, part)
	if err != nil {
		return "", err
	}

	contentType := part.ContentType
	if contentType == "" {
		contentType = "video/mp4"
	}
	key := fmt.Sprintf("video-resumes/%s-%d.mp4", freelancerID, time.Now().Unix())

	url, err := u.uploader.Upload(ctx, key, contentType, data)
	if err != nil {
		return "", err
	}

	// Remember the rehosted asset on the profile; a failed write only costs
	// the settings-form prefill, not the response.
	if err := u.freelancerRepo.Update(ctx, freelancerID, &domain.ProfileUpdate{VideoResumeURL: &url}); err != nil {
		logger.Log.Warn("failed to persist video resume URL", "freelancer", freelancerID, "error", err)
	}
	return url, nil
}

func firstVideoPart(media []domain.MediaPart) (domain.MediaPart, bool) {
	for _, part := range media {
		if strings.HasPrefix(part.ContentType, "video/") {
			return part, true
		}
	}
	return domain.MediaPart{}, false
}

func clampSeconds(d time.Duration) int32 {
	seconds := int32(d.Round(time.Second) / time.Second)
	if seconds < minClipSeconds {
		return minClipSeconds
	}
	if seconds > maxClipSeconds {
		return maxClipSeconds
	}
	return seconds
}
