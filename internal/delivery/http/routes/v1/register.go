package v1

import (
	"log"

	"github.com/Knocktern/Job-Matching-System/internal/config"
	"github.com/Knocktern/Job-Matching-System/internal/database"
	"github.com/Knocktern/Job-Matching-System/internal/delivery/http/handler"
	"github.com/Knocktern/Job-Matching-System/internal/delivery/http/middleware"
	"github.com/Knocktern/Job-Matching-System/internal/infrastructure/cache"
	"github.com/Knocktern/Job-Matching-System/internal/pkg/jwt"
	"github.com/Knocktern/Job-Matching-System/internal/repository"
	"github.com/Knocktern/Job-Matching-System/internal/usecase"
	"github.com/Knocktern/Job-Matching-System/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Register wires the repositories, engines and handlers under /api/v1.
// The redis client doubles as the recommendation cache and the notify
// dedup lock; it may be nil, which disables both.
func Register(r fiber.Router, cfg config.Config, db database.DB, rdb *cache.Redis, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	candidateRepo := repository.NewPostgresCandidateRepository(db)
	candidateSkillRepo := repository.NewPostgresCandidateSkillRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	jobSkillRepo := repository.NewPostgresJobRequiredSkillRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)
	notificationRepo := repository.NewPostgresNotificationRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)

	var recCache usecase.RecommendationCache
	var locker handler.NotifyLocker
	if rdb != nil {
		recCache = rdb
		locker = rdb
	}

	workers := cfg.Engine.ScoreWorkers

	matchingUC := usecase.NewMatchingUsecase(candidateRepo, candidateSkillRepo, jobRepo, jobSkillRepo)
	recommendationUC := usecase.NewRecommendationEngine(
		candidateRepo, candidateSkillRepo, jobRepo, jobSkillRepo, applicationRepo,
		recCache, workers, logger,
	)
	skillGapUC := usecase.NewSkillGapAnalyzer(
		candidateRepo, candidateSkillRepo, jobRepo, jobSkillRepo, recommendationUC,
	)

	applicationUC := usecase.NewApplicationUsecase(candidateRepo, jobRepo, applicationRepo, recCache, logger)

	sink := usecase.MultiSink{notificationRepo, ws.NewSink(hub)}
	notifierUC := usecase.NewMatchNotifier(
		jobRepo, jobSkillRepo, candidateRepo, candidateSkillRepo,
		sink, workers, logger,
	)

	protected := r.Group("", authMw.Middleware())

	handler.NewMatchHandler(matchingUC).RegisterRoutes(protected)
	handler.NewRecommendationHandler(recommendationUC).RegisterRoutes(protected)
	handler.NewSkillGapHandler(skillGapUC).RegisterRoutes(protected)
	handler.NewJobEventHandler(notifierUC, locker).RegisterRoutes(protected)
	handler.NewApplicationHandler(applicationUC).RegisterRoutes(protected)
	handler.NewNotificationHandler(notificationRepo).RegisterRoutes(protected)
	handler.NewSkillHandler(skillRepo).RegisterRoutes(protected)
}
