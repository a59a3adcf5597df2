package handlers

import (
	"net/http"

	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/services"
	"github.com/WeeklyLogs/weekly_log_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// verifyHandler serves the verification links mailed to supervisors. The
// route is deliberately unauthenticated; the token itself is the capability.
type verifyHandler struct {
	logService portssvc.LogSvcFacade
}

func newVerifyHandler(ls portssvc.LogSvcFacade) *verifyHandler {
	return &verifyHandler{logService: ls}
}

// registerVerifyRoutes sets up the public verification route. Rate limited
// per IP so the token space cannot be probed at volume.
func registerVerifyRoutes(rg *gin.Engine, logService portssvc.LogSvcFacade) {
	h := newVerifyHandler(logService)

	rate, _ := limiter.NewRateFromFormatted("30-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	rg.GET("/verify", limitMiddleware, h.verify)
}

// verify godoc
// @Summary Apply a verification decision
// @Description Consumes a mailed approve or reject token and moves the log to its terminal state. Each pair of links works exactly once.
// @Tags verify
// @Produce json
// @Param token query string true "Verification token"
// @Success 200 {object} dto.VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown token"
// @Failure 410 {object} ErrorResponse "Token already used or log already decided"
// @Router /verify [get]
func (h *verifyHandler) verify(c *gin.Context) {
	tokenValue := c.Query("token")
	if tokenValue == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "token query parameter is required"})
		return
	}

	record, err := h.logService.ApplyToken(c.Request.Context(), tokenValue)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyResponse{
		Result:    "recorded",
		PeriodKey: record.PeriodKey,
		State:     string(record.State),
	})
}
