package http

import (
	"github.com/gin-gonic/gin"

	"daily-task-manager/pkg/response"
)

// Generate godoc
// @Summary     Generate routine tasks
// @Description Inserts today's task for every active routine that applies and has none yet. Repeated calls insert nothing new.
// @Tags        Routines
// @Produce     json
// @Param       today query string false "Date YYYY-MM-DD (default: today in the app timezone)"
// @Success     200 {object} generateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/routines/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newGenerateResp(output))
}
