package renewal

import (
	"net/http"

	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/api"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Check godoc
// @Summary      Trigger renewal sweep
// @Description  Finds members expiring on the reminder target day and emails each once. One bad address never aborts the batch.
// @Tags         cron
// @Produce      json
// @Success      200  {object}  api.Response
// @Failure      500  {object}  api.Response
// @Router       /api/cron/check-renewal [get]
func (h *Handler) Check(c *gin.Context) {
	res, err := h.service.Run(c.Request.Context())
	if err != nil {
		logger.Errorf("Renewal sweep failed: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Renewal sweep failed")
		return
	}

	api.OK(c, http.StatusOK, res)
}

// CronAuth gates the sweep endpoint with a shared secret so only the
// scheduler can hit it. An empty secret leaves the endpoint open,
// which is only sensible in development.
func CronAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret != "" && c.GetHeader("X-Cron-Secret") != secret {
			api.Fail(c, http.StatusUnauthorized, "Invalid cron secret")
			c.Abort()
			return
		}
		c.Next()
	}
}
