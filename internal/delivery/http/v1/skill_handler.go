package v1

import (
	"net/http"

	"skillsync-backend/internal/delivery/http/response"
	"skillsync-backend/internal/domain"
	"skillsync-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(rg *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}
	rg.POST("/skills/suggest", handler.Suggest)
}

// Suggest returns AI-recommended skills for the given work history and job
// preferences.
func (h *SkillHandler) Suggest(c *gin.Context) {
	var req domain.SuggestSkillsInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.skillUC.SuggestSkills(c, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills suggested", gin.H{"skills": result.SuggestedSkills})
}
