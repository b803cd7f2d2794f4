package generation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"skillsync-backend/internal/domain"
	"skillsync-backend/pkg/apperror"

	"google.golang.org/genai"
)

// Submit starts a long-running video generation: instruction text plus the
// freelancer's avatar image, with the clip length taken from the synthesized
// audio. The audio track itself cannot be attached through the video API
// yet; the request keeps its data URI for when it can.
func (c *Client) Submit(ctx context.Context, req domain.VideoRequest) (*domain.VideoOperation, error) {
	image, err := c.fetchAvatar(ctx, req.AvatarURL)
	if err != nil {
		return nil, apperror.GenerationFailed(domain.CapabilityVideoResume, err)
	}

	op, err := c.genai.Models.GenerateVideos(ctx, c.cfg.VideoModel, req.Instruction, image, &genai.GenerateVideosConfig{
		DurationSeconds:  genai.Ptr(req.DurationSeconds),
		AspectRatio:      req.AspectRatio,
		PersonGeneration: req.PersonGeneration,
	})
	if err != nil {
		return nil, apperror.GenerationFailed(domain.CapabilityVideoResume, err)
	}
	if op == nil {
		return nil, apperror.GenerationFailed(domain.CapabilityVideoResume, errors.New("model did not return an operation"))
	}

	return wrapOperation(op), nil
}

// Poll re-checks the operation's status once.
func (c *Client) Poll(ctx context.Context, vop *domain.VideoOperation) (*domain.VideoOperation, error) {
	op, ok := vop.Handle.(*genai.GenerateVideosOperation)
	if !ok {
		return nil, apperror.GenerationFailed(domain.CapabilityVideoResume, errors.New("unknown operation handle"))
	}

	op, err := c.genai.Operations.GetVideosOperation(ctx, op, nil)
	if err != nil {
		return nil, apperror.GenerationFailed(domain.CapabilityVideoResume, err)
	}
	return wrapOperation(op), nil
}

// Download fetches the bytes of a finished video part for rehosting.
func (c *Client) Download(ctx context.Context, part domain.MediaPart) ([]byte, error) {
	if len(part.Data) > 0 {
		return part.Data, nil
	}
	if part.URI == "" {
		return nil, errors.New("media part has no URI or data")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, part.URI, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fetch video: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch video: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func wrapOperation(op *genai.GenerateVideosOperation) *domain.VideoOperation {
	out := &domain.VideoOperation{Handle: op, Done: op.Done}
	if op.Error != nil {
		out.ErrorMessage = fmt.Sprintf("%v", op.Error)
	}
	if op.Done && op.Response != nil {
		for _, gv := range op.Response.GeneratedVideos {
			if gv == nil || gv.Video == nil {
				continue
			}
			out.Media = append(out.Media, domain.MediaPart{
				ContentType: gv.Video.MIMEType,
				URI:         gv.Video.URI,
				Data:        gv.Video.VideoBytes,
			})
		}
	}
	return out
}

func (c *Client) fetchAvatar(ctx context.Context, avatarURL string) (*genai.Image, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, avatarURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fetch avatar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch avatar: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/png"
	}
	return &genai.Image{ImageBytes: data, MIMEType: mimeType}, nil
}
