package main

import (
	"context"
	"crypto/rand"
	"log"
	"net/http"

	"github.com/avoronov/calendar-events-backend/internal/api"
	calendar_service "github.com/avoronov/calendar-events-backend/internal/business/calendar"
	event_service "github.com/avoronov/calendar-events-backend/internal/business/event"
	"github.com/avoronov/calendar-events-backend/internal/config"
	"github.com/avoronov/calendar-events-backend/internal/database"
	"github.com/avoronov/calendar-events-backend/internal/database/calendar"
	"github.com/avoronov/calendar-events-backend/internal/database/event"
	"github.com/avoronov/calendar-events-backend/internal/database/status"
	"github.com/avoronov/calendar-events-backend/internal/database/systemcalendar"
	"github.com/avoronov/calendar-events-backend/internal/database/user"
	"github.com/avoronov/calendar-events-backend/internal/notifications"
	"github.com/avoronov/calendar-events-backend/internal/pkg/fcm"
	"github.com/avoronov/calendar-events-backend/internal/pkg/jwt"
	"github.com/avoronov/calendar-events-backend/internal/pkg/oauth"
	"github.com/avoronov/calendar-events-backend/internal/redis"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx := context.Background()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initializae logger: %v", err)
	}

	jwts := jwt.NewManger()
	tokenParser := oauth.NewParser()

	redisPool := redis.NewRedisPool(logger)
	refreshTokens := redis.NewRefreshTokenRepository(redisPool, logger)

	db, err := database.NewPGX(ctx, config.PostgresURL())
	if err != nil {
		log.Fatalf("unable to initializae db: %v", err)
	}
	usersRepository := user.NewRepository()
	calendarsRepository := calendar.NewRepository()
	systemCalendarsRepository := systemcalendar.NewRepository()
	statusesRepository := status.NewRepository()
	eventsRepository := event.NewRepository()

	calendarService := calendar_service.NewService(
		db,
		logger,
		calendarsRepository,
		systemCalendarsRepository,
		statusesRepository,
		usersRepository,
		config.CalendarGates{},
	)

	fcmService, err := fcm.NewService(ctx)
	if err != nil {
		log.Fatalf("unable to initializae fcm service: %v", err)
	}

	sender := notifications.NewSender(db, logger, usersRepository, fcmService)

	eventService := event_service.NewService(
		db,
		logger,
		eventsRepository,
		calendarsRepository,
		systemCalendarsRepository,
		calendarService,
		sender,
	)

	api, err := api.NewApi(
		logger,
		rand.Reader,
		jwts,
		tokenParser,
		refreshTokens,
		db,
		usersRepository,
		calendarsRepository,
		calendarService,
		eventService,
	)
	if err != nil {
		logger.Fatalw("error initiating api", "err", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	logger.Infow("Started server", "port", config.Port())
	logger.Fatalw("server error", "err", server.ListenAndServe())
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
