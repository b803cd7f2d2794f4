package usecase

import (
	"context"
	"errors"
	"time"

	"skillsync-backend/internal/domain"
	"skillsync-backend/pkg/apperror"
	"skillsync-backend/pkg/logger"

	"github.com/google/uuid"
)

// apologyText replaces the AI reply in the conversation log when generation
// fails, so the conversation never ends on a silent gap.
const apologyText = "I'm sorry, I seem to be having trouble connecting. Please try again in a moment."

type chatUsecase struct {
	chatRepo       domain.ChatRepository
	freelancerRepo domain.FreelancerRepository
	gen            domain.Generator
}

func NewChatUsecase(chatRepo domain.ChatRepository, freelancerRepo domain.FreelancerRepository, gen domain.Generator) domain.ChatUsecase {
	return &chatUsecase{
		chatRepo:       chatRepo,
		freelancerRepo: freelancerRepo,
		gen:            gen,
	}
}

func (u *chatUsecase) History(ctx context.Context, userID, freelancerID string) ([]domain.ChatMessage, error) {
	return u.chatRepo.History(ctx, domain.ConversationID(userID, freelancerID))
}

// SendMessage appends the user's message, reloads the full ordered history,
// generates the freelancer's reply, and appends it. When generation fails
// the apology message is logged instead and the result is marked failed; a
// failing apology append is swallowed after logging.
func (u *chatUsecase) SendMessage(ctx context.Context, userID, freelancerID, text string) (*domain.SendResult, error) {
	freelancer, err := u.freelancerRepo.GetByID(ctx, freelancerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Freelancer not found")
		}
		return nil, err
	}

	conversationID := domain.ConversationID(userID, freelancerID)

	if err := u.chatRepo.Append(ctx, conversationID, newMessage(domain.SenderUser, text)); err != nil {
		return nil, apperror.StoreUnavailable(err)
	}

	history, err := u.chatRepo.History(ctx, conversationID)
	if err != nil {
		return nil, apperror.StoreUnavailable(err)
	}

	reply, err := u.gen.GenerateChatResponse(ctx, freelancer, history)
	if err != nil {
		logger.Log.Error("chat response generation failed", "conversation", conversationID, "error", err)
		apology := newMessage(domain.SenderFreelancer, apologyText)
		if aerr := u.chatRepo.Append(ctx, conversationID, apology); aerr != nil {
			logger.Log.Error("failed to log apology message", "conversation", conversationID, "error", aerr)
		} else {
			history = append(history, apology)
		}
		return &domain.SendResult{Messages: history, Failed: true}, nil
	}

	replyMsg := newMessage(domain.SenderFreelancer, reply.Response)
	if err := u.chatRepo.Append(ctx, conversationID, replyMsg); err != nil {
		return nil, apperror.StoreUnavailable(err)
	}

	return &domain.SendResult{Messages: append(history, replyMsg)}, nil
}

func newMessage(sender domain.Sender, text string) domain.ChatMessage {
	return domain.ChatMessage{
		ID:        uuid.NewString(),
		Sender:    sender,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}
