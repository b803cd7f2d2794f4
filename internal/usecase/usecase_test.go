package usecase_test

import (
	"context"
	"errors"
	"testing"

	"skillsync-backend/internal/domain"
	"skillsync-backend/internal/usecase"
	"skillsync-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	logger.Init()
}

// Mock Repositories

type MockFreelancerRepo struct {
	mock.Mock
}

func (m *MockFreelancerRepo) GetByID(ctx context.Context, id string) (*domain.FreelancerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FreelancerProfile), args.Error(1)
}

func (m *MockFreelancerRepo) Fetch(ctx context.Context) ([]domain.FreelancerProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FreelancerProfile), args.Error(1)
}

func (m *MockFreelancerRepo) Update(ctx context.Context, id string, update *domain.ProfileUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*domain.JobPosting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}

func (m *MockJobRepo) Fetch(ctx context.Context) ([]domain.JobPosting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPosting), args.Error(1)
}

func (m *MockJobRepo) Search(ctx context.Context, term string) ([]domain.JobPosting, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPosting), args.Error(1)
}

type MockChatRepo struct {
	mock.Mock
}

func (m *MockChatRepo) Append(ctx context.Context, conversationID string, msg domain.ChatMessage) error {
	return m.Called(ctx, conversationID, msg).Error(0)
}

func (m *MockChatRepo) History(ctx context.Context, conversationID string) ([]domain.ChatMessage, error) {
	args := m.Called(ctx, conversationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChatMessage), args.Error(1)
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) SuggestSkills(ctx context.Context, input domain.SuggestSkillsInput) (*domain.SuggestSkillsOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SuggestSkillsOutput), args.Error(1)
}

func (m *MockGenerator) GenerateJobDescription(ctx context.Context, input domain.JobDescriptionInput) (*domain.JobDescriptionOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobDescriptionOutput), args.Error(1)
}

func (m *MockGenerator) MatchJobs(ctx context.Context, freelancer *domain.FreelancerProfile, jobs []domain.JobPosting) (*domain.MatchJobsOutput, error) {
	args := m.Called(ctx, freelancer, jobs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MatchJobsOutput), args.Error(1)
}

func (m *MockGenerator) GenerateChatResponse(ctx context.Context, freelancer *domain.FreelancerProfile, history []domain.ChatMessage) (*domain.ChatResponseOutput, error) {
	args := m.Called(ctx, freelancer, history)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatResponseOutput), args.Error(1)
}

func testFreelancer() *domain.FreelancerProfile {
	return &domain.FreelancerProfile{
		ID:     "1",
		Name:   "Elena Vargas",
		Title:  "Senior Frontend Engineer",
		Skills: []string{"React", "Node"},
	}
}

func TestMatchJobsDropsUnresolvableIDs(t *testing.T) {
	freelancerRepo := new(MockFreelancerRepo)
	jobRepo := new(MockJobRepo)
	gen := new(MockGenerator)
	uc := usecase.NewMatchUsecase(freelancerRepo, jobRepo, gen)

	ctx := context.Background()
	jobs := []domain.JobPosting{{ID: "job-1", Title: "React Frontend Developer"}}

	freelancerRepo.On("GetByID", ctx, "1").Return(testFreelancer(), nil)
	jobRepo.On("Fetch", ctx).Return(jobs, nil)
	gen.On("MatchJobs", ctx, mock.Anything, jobs).Return(&domain.MatchJobsOutput{
		MatchedJobs: []domain.MatchedJob{
			{JobID: "job-1", Reason: "Strong React overlap"},
			{JobID: "job-404", Reason: "Hallucinated posting"},
		},
	}, nil)
	jobRepo.On("GetByID", ctx, "job-1").Return(&jobs[0], nil)
	jobRepo.On("GetByID", ctx, "job-404").Return(nil, domain.ErrNotFound)

	results, err := uc.MatchJobs(ctx, "1")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "job-1", results[0].JobID)
	assert.Equal(t, "React Frontend Developer", results[0].Job.Title)
}

func TestMatchJobsFreelancerNotFound(t *testing.T) {
	freelancerRepo := new(MockFreelancerRepo)
	jobRepo := new(MockJobRepo)
	gen := new(MockGenerator)
	uc := usecase.NewMatchUsecase(freelancerRepo, jobRepo, gen)

	ctx := context.Background()
	freelancerRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound)

	_, err := uc.MatchJobs(ctx, "ghost")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Freelancer not found")
	gen.AssertNotCalled(t, "MatchJobs")
}

func TestMatchJobsPreservesModelOrder(t *testing.T) {
	freelancerRepo := new(MockFreelancerRepo)
	jobRepo := new(MockJobRepo)
	gen := new(MockGenerator)
	uc := usecase.NewMatchUsecase(freelancerRepo, jobRepo, gen)

	ctx := context.Background()
	jobA := domain.JobPosting{ID: "job-2", Title: "Go Platform Engineer"}
	jobB := domain.JobPosting{ID: "job-1", Title: "React Frontend Developer"}
	jobs := []domain.JobPosting{jobB, jobA}

	freelancerRepo.On("GetByID", ctx, "1").Return(testFreelancer(), nil)
	jobRepo.On("Fetch", ctx).Return(jobs, nil)
	gen.On("MatchJobs", ctx, mock.Anything, jobs).Return(&domain.MatchJobsOutput{
		MatchedJobs: []domain.MatchedJob{
			{JobID: "job-2", Reason: "first"},
			{JobID: "job-1", Reason: "second"},
		},
	}, nil)
	jobRepo.On("GetByID", ctx, "job-2").Return(&jobA, nil)
	jobRepo.On("GetByID", ctx, "job-1").Return(&jobB, nil)

	results, err := uc.MatchJobs(ctx, "1")
	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, "job-2", results[0].JobID)
	assert.Equal(t, "job-1", results[1].JobID)
}

func TestRecommendJobsSkillOverlap(t *testing.T) {
	freelancerRepo := new(MockFreelancerRepo)
	jobRepo := new(MockJobRepo)
	gen := new(MockGenerator)
	uc := usecase.NewJobUsecase(jobRepo, freelancerRepo, gen)

	ctx := context.Background()
	jobA := domain.JobPosting{ID: "job-a", RequiredSkills: []string{"React"}}
	jobB := domain.JobPosting{ID: "job-b", RequiredSkills: []string{"Go"}}

	freelancerRepo.On("GetByID", ctx, "1").Return(testFreelancer(), nil)
	jobRepo.On("Fetch", ctx).Return([]domain.JobPosting{jobA, jobB}, nil)

	recommended, err := uc.RecommendJobs(ctx, "1")
	assert.NoError(t, err)
	assert.Len(t, recommended, 1)
	assert.Equal(t, "job-a", recommended[0].Job.ID)
	assert.Equal(t, []string{"React"}, recommended[0].MatchingSkill)
}

func TestSuggestSkillsSchemaConformance(t *testing.T) {
	gen := new(MockGenerator)
	uc := usecase.NewSkillUsecase(gen)

	ctx := context.Background()
	input := domain.SuggestSkillsInput{
		WorkHistory:    "Lead Developer at TechCorp, built e-commerce platforms with React and TypeScript",
		JobPreferences: "remote frontend SaaS roles",
	}
	gen.On("SuggestSkills", ctx, input).Return(&domain.SuggestSkillsOutput{
		SuggestedSkills: []string{"React", "TypeScript", "Next.js"},
	}, nil)

	out, err := uc.SuggestSkills(ctx, input)
	assert.NoError(t, err)
	assert.NotEmpty(t, out.SuggestedSkills)
}

func TestUpdateProfileSplitsSkills(t *testing.T) {
	freelancerRepo := new(MockFreelancerRepo)
	uc := usecase.NewProfileUsecase(freelancerRepo, validator.New())

	ctx := context.Background()
	input := domain.UpdateProfileInput{
		Name:           "Elena Vargas",
		Title:          "Senior Frontend Engineer",
		Bio:            "Frontend specialist shipping design systems for years.",
		WorkHistory:    "Lead Developer at TechCorp, built e-commerce platforms.",
		JobPreferences: "Remote-first frontend roles at product companies.",
		Skills:         "Go, Rust, SQL",
		Rate:           95,
	}

	freelancerRepo.On("Update", ctx, "1", mock.AnythingOfType("*domain.ProfileUpdate")).Return(nil).Run(func(args mock.Arguments) {
		update := args.Get(2).(*domain.ProfileUpdate)
		assert.Equal(t, []string{"Go", "Rust", "SQL"}, update.Skills)
	})
	freelancerRepo.On("GetByID", ctx, "1").Return(testFreelancer(), nil)

	_, err := uc.UpdateProfile(ctx, "1", input)
	assert.NoError(t, err)
	freelancerRepo.AssertExpectations(t)
}

func TestUpdateProfileValidation(t *testing.T) {
	freelancerRepo := new(MockFreelancerRepo)
	uc := usecase.NewProfileUsecase(freelancerRepo, validator.New())

	ctx := context.Background()
	_, err := uc.UpdateProfile(ctx, "1", domain.UpdateProfileInput{Name: "E"})
	assert.Error(t, err)
	freelancerRepo.AssertNotCalled(t, "Update")
}

func TestSendMessageAppendsReply(t *testing.T) {
	chatRepo := new(MockChatRepo)
	freelancerRepo := new(MockFreelancerRepo)
	gen := new(MockGenerator)
	uc := usecase.NewChatUsecase(chatRepo, freelancerRepo, gen)

	ctx := context.Background()
	conversationID := domain.ConversationID("1", "2")
	freelancer := &domain.FreelancerProfile{ID: "2", Name: "Marcus Chen", Title: "Backend & Cloud Architect"}

	freelancerRepo.On("GetByID", ctx, "2").Return(freelancer, nil)
	chatRepo.On("Append", ctx, conversationID, mock.MatchedBy(func(msg domain.ChatMessage) bool {
		return msg.Sender == domain.SenderUser && msg.Text == "Are you available next month?"
	})).Return(nil).Once()
	history := []domain.ChatMessage{{Sender: domain.SenderUser, Text: "Are you available next month?"}}
	chatRepo.On("History", ctx, conversationID).Return(history, nil)
	gen.On("GenerateChatResponse", ctx, freelancer, history).Return(&domain.ChatResponseOutput{Response: "Yes, I have capacity from the 1st."}, nil)
	chatRepo.On("Append", ctx, conversationID, mock.MatchedBy(func(msg domain.ChatMessage) bool {
		return msg.Sender == domain.SenderFreelancer && msg.Text == "Yes, I have capacity from the 1st."
	})).Return(nil).Once()

	result, err := uc.SendMessage(ctx, "1", "2", "Are you available next month?")
	assert.NoError(t, err)
	assert.False(t, result.Failed)
	assert.Equal(t, domain.SenderFreelancer, result.Messages[len(result.Messages)-1].Sender)
	chatRepo.AssertExpectations(t)
}

func TestSendMessageLogsApologyOnGenerationFailure(t *testing.T) {
	chatRepo := new(MockChatRepo)
	freelancerRepo := new(MockFreelancerRepo)
	gen := new(MockGenerator)
	uc := usecase.NewChatUsecase(chatRepo, freelancerRepo, gen)

	ctx := context.Background()
	conversationID := domain.ConversationID("1", "2")
	freelancer := &domain.FreelancerProfile{ID: "2", Name: "Marcus Chen"}

	freelancerRepo.On("GetByID", ctx, "2").Return(freelancer, nil)
	chatRepo.On("Append", ctx, conversationID, mock.MatchedBy(func(msg domain.ChatMessage) bool {
		return msg.Sender == domain.SenderUser
	})).Return(nil).Once()
	chatRepo.On("History", ctx, conversationID).Return([]domain.ChatMessage{}, nil)
	gen.On("GenerateChatResponse", ctx, freelancer, mock.Anything).Return(nil, errors.New("model unavailable"))
	chatRepo.On("Append", ctx, conversationID, mock.MatchedBy(func(msg domain.ChatMessage) bool {
		return msg.Sender == domain.SenderFreelancer && msg.Text != ""
	})).Return(nil).Once()

	result, err := uc.SendMessage(ctx, "1", "2", "Hello?")
	assert.NoError(t, err)
	assert.True(t, result.Failed)
	chatRepo.AssertExpectations(t)
}

func TestSendMessageSwallowsApologyAppendFailure(t *testing.T) {
	chatRepo := new(MockChatRepo)
	freelancerRepo := new(MockFreelancerRepo)
	gen := new(MockGenerator)
	uc := usecase.NewChatUsecase(chatRepo, freelancerRepo, gen)

	ctx := context.Background()
	conversationID := domain.ConversationID("1", "2")
	freelancer := &domain.FreelancerProfile{ID: "2", Name: "Marcus Chen"}

	freelancerRepo.On("GetByID", ctx, "2").Return(freelancer, nil)
	chatRepo.On("Append", ctx, conversationID, mock.MatchedBy(func(msg domain.ChatMessage) bool {
		return msg.Sender == domain.SenderUser
	})).Return(nil).Once()
	chatRepo.On("History", ctx, conversationID).Return([]domain.ChatMessage{}, nil)
	gen.On("GenerateChatResponse", ctx, freelancer, mock.Anything).Return(nil, errors.New("model unavailable"))
	chatRepo.On("Append", ctx, conversationID, mock.MatchedBy(func(msg domain.ChatMessage) bool {
		return msg.Sender == domain.SenderFreelancer
	})).Return(errors.New("store down")).Once()

	result, err := uc.SendMessage(ctx, "1", "2", "Hello?")
	assert.NoError(t, err)
	assert.True(t, result.Failed)
}
