package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/khoahotran/portfolio/internal/application/usecase/portfolio"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type PortfolioHandler struct {
	snapshotUseCase *portfolioUC.SnapshotUseCase
	logger          logger.Logger
}

func NewPortfolioHandler(uc *portfolioUC.SnapshotUseCase, log logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{snapshotUseCase: uc, logger: log}
}

// GetPortfolio returns about-me, skills, projects and contact in one
// response.
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	snap, err := h.snapshotUseCase.GetSnapshot(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
