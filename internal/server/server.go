package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/strongfit/studio/internal/athlete"
	athletedomain "github.com/strongfit/studio/internal/athlete/domain"
	"github.com/strongfit/studio/internal/billing"
	billingdomain "github.com/strongfit/studio/internal/billing/domain"
	"github.com/strongfit/studio/internal/cache"
	"github.com/strongfit/studio/internal/config"
	"github.com/strongfit/studio/internal/evaluation"
	evaluationdomain "github.com/strongfit/studio/internal/evaluation/domain"
	"github.com/strongfit/studio/internal/exercise"
	exercisedomain "github.com/strongfit/studio/internal/exercise/domain"
	"github.com/strongfit/studio/internal/trainingsession"
	sessiondomain "github.com/strongfit/studio/internal/trainingsession/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	cache.Module,
	fx.Provide(registerGin),
	athlete.Module,
	exercise.Module,
	trainingsession.Module,
	evaluation.Module,
	billing.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, metrics *HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogMiddleware(log))
	r.Use(MetricsMiddleware(metrics))
	r.Use(ErrorHandlingMiddleware(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(log *zap.Logger) *gin.Engine {
	return NewEngine(log, NewHTTPMetrics())
}

func run(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine *gin.Engine
	cfg    config.Config
	db     *gorm.DB
	log    *zap.Logger
	genID  *snowflake.Node
	cache  *cache.Cache

	athleteSvc    athletedomain.Service
	exerciseSvc   exercisedomain.Service
	sessionSvc    sessiondomain.Service
	evaluationSvc evaluationdomain.Service
	billingSvc    billingdomain.Service
}

type ServerParams struct {
	fx.In

	Gin   *gin.Engine
	Cfg   config.Config
	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Cache *cache.Cache

	AthleteSvc    athletedomain.Service
	ExerciseSvc   exercisedomain.Service
	SessionSvc    sessiondomain.Service
	EvaluationSvc evaluationdomain.Service
	BillingSvc    billingdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine: p.Gin,
		cfg:    p.Cfg,
		db:     p.DB,
		log:    p.Log.Named("server"),
		genID:  p.GenID,
		cache:  p.Cache,

		athleteSvc:    p.AthleteSvc,
		exerciseSvc:   p.ExerciseSvc,
		sessionSvc:    p.SessionSvc,
		evaluationSvc: p.EvaluationSvc,
		billingSvc:    p.BillingSvc,
	}

	svc.registerAPIRoutes()
	svc.registerReadiness()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Athletes --------
	api.GET("/athletes", s.ListAthletes)
	api.POST("/athletes", s.CreateAthlete)
	api.GET("/athletes/:id", s.GetAthleteByID)
	api.PATCH("/athletes/:id", s.UpdateAthlete)
	api.DELETE("/athletes/:id", s.DeleteAthlete)

	// -------- Exercises --------
	api.GET("/exercises", s.ListExercises)
	api.POST("/exercises", s.CreateExercise)
	api.PATCH("/exercises/:id", s.UpdateExercise)
	api.DELETE("/exercises/:id", s.DeleteExercise)

	// -------- Training Sessions --------
	api.GET("/training-sessions", s.ListTrainingSessions)
	api.POST("/training-sessions", s.CreateTrainingSession)
	api.PATCH("/training-sessions/:id", s.UpdateTrainingSession)
	api.POST("/training-sessions/:id/complete", s.CompleteTrainingSession)
	api.DELETE("/training-sessions/:id", s.DeleteTrainingSession)

	// -------- Evaluations --------
	api.GET("/evaluations", s.ListEvaluations)
	api.POST("/evaluations", s.CreateEvaluation)
	api.PATCH("/evaluations/:id", s.UpdateEvaluation)
	api.DELETE("/evaluations/:id", s.DeleteEvaluation)

	// -------- Payments --------
	api.GET("/payments", s.ListPaymentSummaries)
	api.GET("/payments/adjustments", s.ListAdjustments)
	api.POST("/payments/adjustments", s.CreateAdjustment)
	api.DELETE("/payments/adjustments/:id", s.DeleteAdjustment)
	api.POST("/payments/mark-paid", s.MarkPaid)
	api.POST("/payments/auto-credit", s.GenerateCredits)
}
