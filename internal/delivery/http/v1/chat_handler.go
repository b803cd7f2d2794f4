package v1

import (
	"net/http"

	"skillsync-backend/internal/delivery/http/response"
	"skillsync-backend/internal/domain"
	"skillsync-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatUC domain.ChatUsecase
}

func NewChatHandler(rg *gin.RouterGroup, chatUC domain.ChatUsecase) {
	handler := &ChatHandler{chatUC: chatUC}

	chats := rg.Group("/chats")
	{
		chats.GET("/:freelancerId/messages", handler.History)
		chats.POST("/:freelancerId/messages", handler.Send)
	}
}

// History returns the conversation between the session user and a
// freelancer, oldest first.
func (h *ChatHandler) History(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	messages, err := h.chatUC.History(c, userID, c.Param("freelancerId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Chat history retrieved", gin.H{"messages": messages})
}

type SendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// Send appends the user's message and the AI-generated reply to the
// conversation log. When generation fails the log gets the apology message
// and the caller sees a failed result; the user's message is kept either way.
func (h *ChatHandler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	result, err := h.chatUC.SendMessage(c, userID, c.Param("freelancerId"), req.Message)
	if err != nil {
		c.Error(err)
		return
	}
	if result.Failed {
		response.Error(c, http.StatusBadGateway, "AI did not return a response.", nil)
		return
	}
	response.Success(c, http.StatusOK, "Message sent", gin.H{"messages": result.Messages})
}
