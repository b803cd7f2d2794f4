package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"skillsync-backend/internal/domain"
	"skillsync-backend/internal/usecase"
	"skillsync-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSpeech struct {
	mock.Mock
}

func (m *MockSpeech) Synthesize(ctx context.Context, script string) (*domain.SpeechClip, error) {
	args := m.Called(ctx, script)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpeechClip), args.Error(1)
}

type MockVideo struct {
	mock.Mock
}

func (m *MockVideo) Submit(ctx context.Context, req domain.VideoRequest) (*domain.VideoOperation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VideoOperation), args.Error(1)
}

func (m *MockVideo) Poll(ctx context.Context, op *domain.VideoOperation) (*domain.VideoOperation, error) {
	args := m.Called(ctx, op)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VideoOperation), args.Error(1)
}

func (m *MockVideo) Download(ctx context.Context, part domain.MediaPart) ([]byte, error) {
	args := m.Called(ctx, part)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, key, contentType, data)
	return args.String(0), args.Error(1)
}

const placeholderURL = "https://cdn.example.com/placeholder.mp4"

func videoConfig(propagate bool) usecase.VideoConfig {
	return usecase.VideoConfig{
		PollInterval:    time.Millisecond,
		PollTimeout:     time.Second,
		FallbackURL:     placeholderURL,
		PropagateErrors: propagate,
	}
}

func TestVideoResumeDegradesToPlaceholderWhenSpeechFails(t *testing.T) {
	freelancerRepo := new(MockFreelancerRepo)
	speech := new(MockSpeech)
	video := new(MockVideo)
	uc := usecase.NewVideoUsecase(freelancerRepo, speech, video, nil, videoConfig(false))

	ctx := context.Background()
	freelancerRepo.On("GetByID", ctx, "1").Return(testFreelancer(), nil)
	speech.On("Synthesize", ctx, mock.Anything).Return(nil, errors.New("tts exploded"))

	out, err := uc.GenerateVideoResume(ctx, "1", "Hi, I'm Elena.")
	assert.NoError(t, err)
	assert.Equal(t, placeholderURL, out.VideoURL)
	video.AssertNotCalled(t, "Submit")
}

func TestVideoResumePropagatesWhenConfigured(t *testing.T) {
	freelancerRepo := new(MockFreelancerRepo)
	speech := new(MockSpeech)
	video := new(MockVideo)
	uc := usecase.NewVideoUsecase(freelancerRepo, speech, video, nil, videoConfig(true))

	ctx := context.Background()
	freelancerRepo.On("GetByID", ctx, "1").Return(testFreelancer(), nil)
	speech.On("Synthesize", ctx, mock.Anything).Return(nil, apperror.GenerationFailed(domain.CapabilityVideoResume, errors.New("tts exploded")))

	_, err := uc.GenerateVideoResume(ctx, "1", "Hi, I'm Elena.")
	assert.Error(t, err)
	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
}

func TestVideoResumePollsUntilDone(t *testing.T) {
	freelancerRepo := new(MockFreelancerRepo)
	speech := new(MockSpeech)
	video := new(MockVideo)
	uc := usecase.NewVideoUsecase(freelancerRepo, speech, video, nil, videoConfig(true))

	ctx := context.Background()
	freelancerRepo.On("GetByID", ctx, "1").Return(testFreelancer(), nil)
	speech.On("Synthesize", ctx, mock.Anything).Return(&domain.SpeechClip{
		DataURI:  "data:audio/wav;base64,AAAA",
		Duration: 6 * time.Second,
	}, nil)

	pending := &domain.VideoOperation{Done: false}
	done := &domain.VideoOperation{
		Done:  true,
		Media: []domain.MediaPart{{ContentType: "video/mp4", URI: "gs://out/clip.mp4"}},
	}
	video.On("Submit", ctx, mock.MatchedBy(func(req domain.VideoRequest) bool {
		return req.DurationSeconds == 6 && req.AspectRatio == "16:9" && req.AudioDataURI != ""
	})).Return(pending, nil)
	video.On("Poll", ctx, pending).Return(done, nil).Once()

	out, err := uc.GenerateVideoResume(ctx, "1", "Hi, I'm Elena.")
	assert.NoError(t, err)
	// No rehost target configured: the fallback URL stands in for the asset.
	assert.Equal(t, placeholderURL, out.VideoURL)
	video.AssertExpectations(t)
}

func TestVideoResumeTimesOut(t *testing.T) {
	freelancerRepo := new(MockFreelancerRepo)
	speech := new(MockSpeech)
	video := new(MockVideo)
	cfg := videoConfig(true)
	cfg.PollTimeout = 5 * time.Millisecond
	uc := usecase.NewVideoUsecase(freelancerRepo, speech, video, nil, cfg)

	ctx := context.Background()
	freelancerRepo.On("GetByID", ctx, "1").Return(testFreelancer(), nil)
	speech.On("Synthesize", ctx, mock.Anything).Return(&domain.SpeechClip{DataURI: "data:audio/wav;base64,AAAA"}, nil)

	pending := &domain.VideoOperation{Done: false}
	video.On("Submit", ctx, mock.Anything).Return(pending, nil)
	video.On("Poll", ctx, pending).Return(pending, nil)

	_, err := uc.GenerateVideoResume(ctx, "1", "Hi, I'm Elena.")
	assert.Error(t, err)
	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Message, "timed out")
}

func TestVideoResumeRehostsWhenUploaderConfigured(t *testing.T) {
	freelancerRepo := new(MockFreelancerRepo)
	speech := new(MockSpeech)
	video := new(MockVideo)
	uploader := new(MockUploader)
	uc := usecase.NewVideoUsecase(freelancerRepo, speech, video, uploader, videoConfig(true))

	ctx := context.Background()
	freelancerRepo.On("GetByID", ctx, "1").Return(testFreelancer(), nil)
	speech.On("Synthesize", ctx, mock.Anything).Return(&domain.SpeechClip{DataURI: "data:audio/wav;base64,AAAA", Duration: 5 * time.Second}, nil)

	part := domain.MediaPart{ContentType: "video/mp4", URI: "gs://out/clip.mp4"}
	video.On("Submit", ctx, mock.Anything).Return(&domain.VideoOperation{Done: true, Media: []domain.MediaPart{part}}, nil)
	video.On("Download", ctx, part).Return([]byte{0x00, 0x01}, nil)
	uploader.On("Upload", ctx, mock.Anything, "video/mp4", []byte{0x00, 0x01}).Return("https://cdn.example.com/video-resumes/1.mp4", nil)
	freelancerRepo.On("Update", ctx, "1", mock.MatchedBy(func(update *domain.ProfileUpdate) bool {
		return update.VideoResumeURL != nil && *update.VideoResumeURL == "https://cdn.example.com/video-resumes/1.mp4"
	})).Return(nil)

	out, err := uc.GenerateVideoResume(ctx, "1", "Hi, I'm Elena.")
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/video-resumes/1.mp4", out.VideoURL)
	uploader.AssertExpectations(t)
}

func TestVideoResumeOperationErrorDegrades(t *testing.T) {
	freelancerRepo := new(MockFreelancerRepo)
	speech := new(MockSpeech)
	video := new(MockVideo)
	uc := usecase.NewVideoUsecase(freelancerRepo, speech, video, nil, videoConfig(false))

	ctx := context.Background()
	freelancerRepo.On("GetByID", ctx, "1").Return(testFreelancer(), nil)
	speech.On("Synthesize", ctx, mock.Anything).Return(&domain.SpeechClip{DataURI: "data:audio/wav;base64,AAAA"}, nil)
	video.On("Submit", ctx, mock.Anything).Return(&domain.VideoOperation{Done: true, ErrorMessage: "safety rejection"}, nil)

	out, err := uc.GenerateVideoResume(ctx, "1", "Hi, I'm Elena.")
	assert.NoError(t, err)
	assert.Equal(t, placeholderURL, out.VideoURL)
}
