package domain

import (
	"context"
	"fmt"
	"time"
)

// Sender identifies who wrote a chat message. The two values are the only
// ones ever stored or rendered.
type Sender string

const (
	SenderUser       Sender = "user"
	SenderFreelancer Sender = "freelancer"
)

func (s Sender) Valid() bool {
	return s == SenderUser || s == SenderFreelancer
}

// ChatMessage is append-only: messages are never mutated or deleted, and
// reads return them in non-decreasing CreatedAt order.
type ChatMessage struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// ConversationID derives the composite conversation key for a user and a
// freelancer. Computed per request; never a module-level constant.
func ConversationID(userID, freelancerID string) string {
	return fmt.Sprintf("%s_%s", userID, freelancerID)
}

type ChatRepository interface {
	Append(ctx context.Context, conversationID string, msg ChatMessage) error
	History(ctx context.Context, conversationID string) ([]ChatMessage, error)
}

// SendResult reports the outcome of a send action. Failed is true when the
// AI reply could not be generated and the apology message was logged instead.
type SendResult struct {
	Messages []ChatMessage
	Failed   bool
}

type ChatUsecase interface {
	SendMessage(ctx context.Context, userID, freelancerID, text string) (*SendResult, error)
	History(ctx context.Context, userID, freelancerID string) ([]ChatMessage, error)
}
