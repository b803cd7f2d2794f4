package v1

import (
	"net/http"

	"skillsync-backend/config"
	"skillsync-backend/internal/delivery/http/middleware"
	"skillsync-backend/internal/delivery/http/response"
	"skillsync-backend/internal/domain"
	"skillsync-backend/pkg/redis"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ProfileUC domain.ProfileUsecase
	JobUC     domain.JobUsecase
	MatchUC   domain.MatchUsecase
	ChatUC    domain.ChatUsecase
	SkillUC   domain.SkillUsecase
	VideoUC   domain.VideoUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		if err := redis.HealthCheck(c); err != nil {
			response.Error(c, http.StatusServiceUnavailable, "Profile store unreachable", nil)
			return
		}
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Every action runs on behalf of the session user.
	session := v1.Group("")
	session.Use(middleware.Session(deps.Config.DemoUserID))
	{
		NewFreelancerHandler(session, deps.ProfileUC, deps.MatchUC, deps.VideoUC)
		NewJobHandler(session, deps.JobUC)
		NewChatHandler(session, deps.ChatUC)
		NewSkillHandler(session, deps.SkillUC)
		NewProfileHandler(session, deps.ProfileUC)
	}

	return r
}
