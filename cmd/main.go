package main

import (
	"go.uber.org/zap"

	"github.com/Shankerteja/Sheshield-backend/config"
	"github.com/Shankerteja/Sheshield-backend/controllers"
	"github.com/Shankerteja/Sheshield-backend/logger"
	"github.com/Shankerteja/Sheshield-backend/routes"
	"github.com/Shankerteja/Sheshield-backend/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.Env)
	defer log.Sync() //nolint:errcheck

	db, err := config.OpenDB(cfg.DB)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}

	jwtSecret := []byte(cfg.JWTSecret)

	sms := services.NewSmsService(cfg.Twilio, cfg.DefaultCountryCode, log)
	broadcast := services.NewBroadcastService(db, sms, log)
	alerts := services.NewAlertService(db)
	contacts := services.NewContactService(db)
	auth := services.NewAuthService(db, jwtSecret)

	r := routes.SetupRouter(jwtSecret, routes.Handlers{
		Auth:      controllers.NewAuthController(auth),
		Contacts:  controllers.NewContactController(contacts),
		Alerts:    controllers.NewAlertController(alerts),
		Emergency: controllers.NewEmergencyController(alerts, broadcast),
		Test:      controllers.NewTestController(sms),
	})

	log.Info("starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
