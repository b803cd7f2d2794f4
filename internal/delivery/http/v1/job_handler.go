package v1

import (
	"net/http"

	"skillsync-backend/internal/delivery/http/response"
	"skillsync-backend/internal/domain"
	"skillsync-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(rg *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := rg.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/:id", handler.GetDetails)
		jobs.POST("/describe", handler.GenerateDescription)
	}

	// Non-AI recommendation path for the session user.
	rg.GET("/recommendations", handler.Recommendations)
}

// List returns the job catalog, optionally filtered by the q query parameter
// (matches title, company, or any required skill).
func (h *JobHandler) List(c *gin.Context) {
	term := c.Query("q")

	var (
		jobs []domain.JobPosting
		err  error
	)
	if term != "" {
		jobs, err = h.jobUC.SearchJobs(c, term)
	} else {
		jobs, err = h.jobUC.ListJobs(c)
	}
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

func (h *JobHandler) GetDetails(c *gin.Context) {
	job, err := h.jobUC.GetJob(c, c.Param("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			c.Error(apperror.NotFound("Job not found"))
			return
		}
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job retrieved", job)
}

// GenerateDescription drafts a posting from a title and responsibilities.
// The draft is returned to the caller only; nothing is persisted.
func (h *JobHandler) GenerateDescription(c *gin.Context) {
	var req domain.JobDescriptionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.jobUC.GenerateDescription(c, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job description generated", result)
}

func (h *JobHandler) Recommendations(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	recommended, err := h.jobUC.RecommendJobs(c, userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recommendations retrieved", recommended)
}
