package generation

import (
	"context"
	"errors"
	"strings"

	"skillsync-backend/internal/domain"
	"skillsync-backend/pkg/apperror"
	"skillsync-backend/pkg/audio"

	"google.golang.org/genai"
)

// Synthesize runs stage A of video generation: speak the script, then wrap
// the raw PCM samples as a WAV data URI.
func (c *Client) Synthesize(ctx context.Context, script string) (*domain.SpeechClip, error) {
	resp, err := c.genai.Models.GenerateContent(ctx, c.cfg.TTSModel, genai.Text(script), &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: c.cfg.Voice},
			},
		},
	})
	if err != nil {
		return nil, apperror.GenerationFailed(domain.CapabilityVideoResume, err)
	}

	pcm := firstAudioBlob(resp)
	if len(pcm) == 0 {
		return nil, apperror.GenerationFailed(domain.CapabilityVideoResume, errors.New("speech synthesis returned no audio"))
	}

	return &domain.SpeechClip{
		DataURI:  audio.WAVDataURI(pcm),
		Duration: audio.Duration(pcm),
	}, nil
}

func firstAudioBlob(resp *genai.GenerateContentResponse) []byte {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData == nil {
				continue
			}
			if strings.HasPrefix(part.InlineData.MIMEType, "audio/") {
				return part.InlineData.Data
			}
		}
	}
	return nil
}
