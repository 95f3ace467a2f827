package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"resumearchitect/config"
	"resumearchitect/handlers"
	"resumearchitect/middleware"
	"resumearchitect/parsers"
	"resumearchitect/services"
	"resumearchitect/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		utils.LogInfo("no .env file found, using environment")
	}

	cfg := config.GetAppConfig()

	credentials := &services.ChainCredentialStore{
		Stores: []services.CredentialStore{
			&services.EnvCredentialStore{Var: cfg.Cohere.APIKeyVar},
			&services.FileCredentialStore{Path: cfg.Cohere.CredentialFile},
		},
	}
	client := services.NewCohereClientWithEndpoint(credentials, cfg.Cohere.Endpoint, cfg.Cohere.Model)
	analyzer := services.NewAtsAnalyzer(client)
	improver := services.NewResumeImprover(client)
	fileExtractor := parsers.NewFileExtractor()
	textExtractor := parsers.NewTextExtractor()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))
	r.Use(middleware.MaxRequestSize(cfg.MaxUploadBytes))

	limiters := middleware.CreateRateLimiters()

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/resume")
	{
		api.POST("/parse", limiters["upload"].Limit(), handlers.ParseResumeHandler(fileExtractor, textExtractor))

		jsonOnly := middleware.ValidateContentType("application/json")
		api.POST("/extract", limiters["general"].Limit(), jsonOnly, handlers.ExtractResumeHandler(textExtractor))
		api.POST("/analyze", limiters["ai"].Limit(), jsonOnly, handlers.AnalyzeResumeHandler(analyzer))
		api.POST("/improve", limiters["ai"].Limit(), jsonOnly, handlers.ImproveResumeHandler(improver))
		api.POST("/render", limiters["general"].Limit(), jsonOnly, handlers.RenderResumeHandler())
		api.POST("/export", limiters["general"].Limit(), jsonOnly, handlers.ExportResumeHandler())
	}

	utils.LogInfo("starting resume architect API", map[string]string{"port": cfg.Port})
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.LogError("server exited", err)
	}
}
