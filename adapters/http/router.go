package http

import (
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio/pkg/logger"
)

type RouterDeps struct {
	RPC         *RPCHandler
	Portfolio   *PortfolioHandler
	RSS         *RSSHandler
	Media       *MediaHandler
	CORSOrigins []string
	Logger      logger.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(newCORS(deps.CORSOrigins))
	r.Use(gin.Recovery())
	r.Use(RequestLogger(deps.Logger))
	r.Use(ErrorMiddleware(deps.Logger))

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		rpc := api.Group("/rpc")
		{
			rpc.GET("/:procedure", deps.RPC.Query)
			rpc.POST("/:procedure", deps.RPC.Mutation)
		}

		api.GET("/portfolio", deps.Portfolio.GetPortfolio)
		api.GET("/projects/rss", deps.RSS.GenerateRSS)

		if deps.Media != nil {
			admin := api.Group("/admin")
			admin.POST("/media/images", deps.Media.UploadImage)
		}
	}

	return r
}

func newCORS(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, HeaderRequestID)
	cfg.ExposeHeaders = []string{HeaderRequestID}
	return cors.New(cfg)
}
