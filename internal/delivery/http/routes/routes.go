package routes

import (
	"log"

	"github.com/Knocktern/Job-Matching-System/internal/config"
	"github.com/Knocktern/Job-Matching-System/internal/database"
	v1 "github.com/Knocktern/Job-Matching-System/internal/delivery/http/routes/v1"
	"github.com/Knocktern/Job-Matching-System/internal/infrastructure/cache"
	"github.com/Knocktern/Job-Matching-System/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, rdb *cache.Redis, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, rdb, hub, logger)
}
