package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"skillsync-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

const chatKeyPrefix = "chats:"

// chatRepository keeps each conversation as an append-only sorted set scored
// by creation timestamp, so history reads come back in message order.
type chatRepository struct {
	rdb *redis.Client
}

func NewChatRepository(rdb *redis.Client) domain.ChatRepository {
	return &chatRepository{rdb: rdb}
}

func chatKey(conversationID string) string {
	return chatKeyPrefix + conversationID
}

func (r *chatRepository) Append(ctx context.Context, conversationID string, msg domain.ChatMessage) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	err = r.rdb.ZAdd(ctx, chatKey(conversationID), redis.Z{
		Score:  float64(msg.CreatedAt.UnixMilli()),
		Member: raw,
	}).Err()
	if err != nil {
		return fmt.Errorf("append message to %s: %w", conversationID, err)
	}
	return nil
}

func (r *chatRepository) History(ctx context.Context, conversationID string) ([]domain.ChatMessage, error) {
	raws, err := r.rdb.ZRange(ctx, chatKey(conversationID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read history %s: %w", conversationID, err)
	}

	messages := make([]domain.ChatMessage, 0, len(raws))
	for _, raw := range raws {
		var msg domain.ChatMessage
		if err := json.Unmarshal([]byte(raw), &msg); err != nil {
			return nil, fmt.Errorf("decode message in %s: %w", conversationID, err)
		}
		messages = append(messages, msg)
	}
	return messages, nil
}
