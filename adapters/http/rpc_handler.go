package http

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio/internal/application/dispatch"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// RPCHandler exposes the dispatcher over HTTP: queries are GET requests with
// the JSON input in the "input" query parameter, mutations are POST requests
// with the JSON input as the body. Successful calls answer
// {"result": {"data": ...}}.
type RPCHandler struct {
	dispatcher *dispatch.Dispatcher
	logger     logger.Logger
}

func NewRPCHandler(d *dispatch.Dispatcher, log logger.Logger) *RPCHandler {
	return &RPCHandler{dispatcher: d, logger: log}
}

func (h *RPCHandler) Query(c *gin.Context) {
	var input json.RawMessage
	if raw := c.Query("input"); raw != "" {
		input = json.RawMessage(raw)
	}
	h.dispatch(c, dispatch.KindQuery, input)
}

func (h *RPCHandler) Mutation(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.Error(apperror.NewInvalidInput("failed to read request body", err))
		return
	}
	h.dispatch(c, dispatch.KindMutation, body)
}

func (h *RPCHandler) dispatch(c *gin.Context, kind dispatch.Kind, input json.RawMessage) {
	out, err := h.dispatcher.Dispatch(c.Request.Context(), c.Param("procedure"), kind, input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": gin.H{"data": out}})
}
