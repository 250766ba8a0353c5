package main

import (
	"fmt"
	"net/http"

	"github.com/jameselite/jobpulse/internal/config"
	appHTTP "github.com/jameselite/jobpulse/internal/handler/http"
	"github.com/jameselite/jobpulse/internal/pkg/cache"
	"github.com/jameselite/jobpulse/internal/pkg/database"
	"github.com/jameselite/jobpulse/internal/pkg/jwt"
	"github.com/jameselite/jobpulse/internal/repository/postgresql"
	redisRepo "github.com/jameselite/jobpulse/internal/repository/redis"
	authService "github.com/jameselite/jobpulse/internal/service/auth"
	companyService "github.com/jameselite/jobpulse/internal/service/company"
	notificationService "github.com/jameselite/jobpulse/internal/service/notification"
	positionService "github.com/jameselite/jobpulse/internal/service/position"
	requestService "github.com/jameselite/jobpulse/internal/service/request"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	rdb, err := cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		fmt.Println("Error connecting to redis:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	requestRepo := postgresql.NewRequestRepository(db)
	noteStore := redisRepo.NewNoteStore(rdb)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, JWTService)
	companySvc := companyService.NewCompanyService(companyRepo, postgresql.NewTransactor(db))
	positionSvc := positionService.NewPositionService(positionRepo, companyRepo)
	requestSvc := requestService.NewRequestService(requestRepo, positionRepo, companyRepo, noteStore)
	notificationSvc := notificationService.NewNotificationService(noteStore)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	companyHandler := appHTTP.NewCompanyHandler(companySvc)
	positionHandler := appHTTP.NewPositionHandler(positionSvc)
	requestHandler := appHTTP.NewRequestHandler(requestSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		companyHandler,
		positionHandler,
		requestHandler,
		notificationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
