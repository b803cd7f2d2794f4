package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversationID(t *testing.T) {
	assert.Equal(t, "1_2", ConversationID("1", "2"))
	// Participant order matters: the user always comes first.
	assert.NotEqual(t, ConversationID("1", "2"), ConversationID("2", "1"))
}

func TestSenderValid(t *testing.T) {
	assert.True(t, SenderUser.Valid())
	assert.True(t, SenderFreelancer.Valid())
	assert.False(t, Sender("assistant").Valid())
	assert.False(t, Sender("").Valid())
}
