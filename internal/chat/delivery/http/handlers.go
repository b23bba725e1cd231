package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ask godoc
// @Summary     Ask the assistant
// @Description Relays one message to the completion API. Single-turn, no history.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body askReq true "Message"
// @Success     200 {object} askResp
// @Failure     400 {object} errorResp "Empty message"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} errorResp "Missing credential or provider failure"
// @Router      /api/chat [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAskReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: "invalid request body"})
		return
	}

	output, err := h.uc.Ask(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Ask: %v", err)
		status, body := h.mapError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, askResp{Answer: output.Answer})
}
