package main

import (
	"context"
	"net/http"

	_ "delivery-tracker/docs"
	"delivery-tracker/internal/ai"
	"delivery-tracker/internal/config"
	"delivery-tracker/internal/handler"
	"delivery-tracker/internal/repository"
	"delivery-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title			Delivery Tracker API
// @version		1.0
// @description	GPS delivery-point submissions with a hierarchical location taxonomy, operator review, and relevance search.
// @BasePath		/
func main() {
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	if err := repository.EnsureSchema(context.Background(), conn); err != nil {
		log.Fatal().Err(err).Msg("cannot ensure schema")
	}

	// Optional Gemini client; everything downstream works without it.
	var gen service.TextGenerator
	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Warn().Err(err).Msg("Gemini unavailable; running without AI summaries and suggestions")
		} else {
			gen = gemini
		}
	} else {
		log.Info().Msg("no Gemini API key configured; running without AI summaries and suggestions")
	}

	if cfg.AdminPIN == "" {
		log.Warn().Msg("no admin PIN configured; operator routes are open")
	}

	// Initialize layers
	taxonomyRepo := repository.NewTaxonomyRepository(conn)
	submissionRepo := repository.NewSubmissionRepository(conn)

	taxonomyService := service.NewTaxonomyService(taxonomyRepo)
	submissionService := service.NewSubmissionService(submissionRepo, taxonomyService)
	searchService := service.NewSearchService(submissionRepo, cfg.Search)
	classifierService := service.NewClassifierService(submissionService, taxonomyService, gen)
	summaryService := service.NewSummaryService(gen)

	taxonomyHandler := handler.NewTaxonomyHandler(taxonomyService)
	submissionHandler := handler.NewSubmissionHandler(submissionService, summaryService)
	searchHandler := handler.NewSearchHandler(searchService)
	classifyHandler := handler.NewClassifyHandler(classifierService)
	summaryHandler := handler.NewSummaryHandler(summaryService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/taxonomy", taxonomyHandler.List)
	r.GET("/taxonomy/children", taxonomyHandler.Children)

	r.POST("/submissions", submissionHandler.Create)
	r.POST("/submissions/validate", submissionHandler.Validate)
	r.POST("/submissions/form", submissionHandler.SubmitForm)
	r.GET("/submissions", submissionHandler.List)
	r.GET("/submissions/pending", submissionHandler.ListPending)
	r.GET("/submissions/map", submissionHandler.MapPoints)
	r.GET("/submissions/:id", submissionHandler.Get)
	r.GET("/submissions/:id/suggest", classifyHandler.Suggest)

	r.GET("/search", searchHandler.Search)
	r.POST("/summarize", summaryHandler.Summarize)

	admin := r.Group("/", handler.AdminPIN(cfg.AdminPIN))
	admin.POST("/taxonomy", taxonomyHandler.Append)
	admin.POST("/taxonomy/bulk", taxonomyHandler.Bulk)
	admin.DELETE("/taxonomy/:index", taxonomyHandler.Remove)
	admin.PATCH("/submissions/:id", submissionHandler.Review)
	admin.DELETE("/submissions/:id", submissionHandler.Delete)

	r.Run(cfg.ServerAddress)
}
