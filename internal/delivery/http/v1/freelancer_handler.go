package v1

import (
	"net/http"

	"skillsync-backend/internal/delivery/http/response"
	"skillsync-backend/internal/domain"
	"skillsync-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type FreelancerHandler struct {
	profileUC domain.ProfileUsecase
	matchUC   domain.MatchUsecase
	videoUC   domain.VideoUsecase
}

func NewFreelancerHandler(rg *gin.RouterGroup, profileUC domain.ProfileUsecase, matchUC domain.MatchUsecase, videoUC domain.VideoUsecase) {
	handler := &FreelancerHandler{
		profileUC: profileUC,
		matchUC:   matchUC,
		videoUC:   videoUC,
	}

	freelancers := rg.Group("/freelancers")
	{
		freelancers.GET("", handler.List)
		freelancers.GET("/:id", handler.GetDetails)
		freelancers.GET("/:id/matches", handler.Matches)
		freelancers.POST("/:id/video-resume", handler.GenerateVideoResume)
	}
}

func (h *FreelancerHandler) List(c *gin.Context) {
	freelancers, err := h.profileUC.ListFreelancers(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Freelancers retrieved", freelancers)
}

func (h *FreelancerHandler) GetDetails(c *gin.Context) {
	freelancer, err := h.profileUC.GetFreelancer(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Freelancer retrieved", freelancer)
}

// Matches runs the AI job-matching flow for a freelancer. Every returned
// match resolves to an existing posting.
func (h *FreelancerHandler) Matches(c *gin.Context) {
	results, err := h.matchUC.MatchJobs(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job matches retrieved", gin.H{"matchedJobs": results})
}

type GenerateVideoResumeRequest struct {
	Script string `json:"script" binding:"required,min=10"`
}

// GenerateVideoResume synthesizes speech from the script and animates the
// freelancer's avatar. Long-running: the request blocks until the video
// operation completes or times out.
func (h *FreelancerHandler) GenerateVideoResume(c *gin.Context) {
	var req GenerateVideoResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.videoUC.GenerateVideoResume(c, c.Param("id"), req.Script)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Video resume generated", result)
}
