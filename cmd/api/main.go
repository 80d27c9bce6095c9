package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "casetrack-service/internal/adapter/http"
	"casetrack-service/internal/adapter/middleware"
	"casetrack-service/internal/adapter/repository/mysql"
	"casetrack-service/internal/config"
	accountDomain "casetrack-service/internal/domain/account"
	agentDomain "casetrack-service/internal/domain/agent"
	"casetrack-service/internal/domain/cases"
	"casetrack-service/internal/infrastructure/cache"
	"casetrack-service/internal/infrastructure/db"
	accountUC "casetrack-service/internal/usecase/account"
	agentUC "casetrack-service/internal/usecase/agent"
	workflowUC "casetrack-service/internal/usecase/workflow"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		logger.Fatal("mysql connect", zap.Error(err))
	}
	if err := gdb.AutoMigrate(&accountDomain.Account{}, &cases.Case{}, &agentDomain.Agent{}); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		logger.Fatal("redis connect", zap.Error(err))
	}

	// repositories + unit of work
	accountRepo := mysql.NewAccountRepository(gdb)
	caseRepo := mysql.NewCaseRepository(gdb)
	agentRepo := mysql.NewAgentRepository(gdb)
	txManager := mysql.NewGormUoW(gdb)

	// usecases
	accountsUC := accountUC.NewUsecase(accountRepo, txManager)
	casesUC := workflowUC.NewUsecase(caseRepo, accountRepo, txManager, logger, cfg.EmissionStrict)
	agentsUC := agentUC.NewUsecase(agentRepo, rdb, time.Duration(cfg.AgentCacheTTLSecs)*time.Second)

	// handlers
	h := httpadp.NewHandler()
	accountH := httpadp.NewAccountHandler(accountsUC)
	caseH := httpadp.NewCaseHandler(casesUC)
	agentH := httpadp.NewAgentHandler(agentsUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	// double-submit guard on mutating routes (non-mutating methods pass through)
	e.Use(middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	e.GET("/health", h.Health)

	e.POST("/accounts", accountH.CreateAccount)
	e.GET("/accounts", accountH.ListAccounts)
	e.GET("/accounts/check-name", accountH.CheckName)
	e.GET("/accounts/:account_id", accountH.GetAccount)

	e.POST("/cases", caseH.CreateCase)
	e.GET("/cases", caseH.ListCases)
	e.GET("/cases/cancelled", caseH.ListCancelled)
	e.GET("/cases/renovaciones", caseH.ListRenovaciones)
	e.GET("/cases/:case_id", caseH.GetCase)
	e.PUT("/cases/:case_id", caseH.UpdateCase)
	e.PUT("/negotiation/:case_id", caseH.SaveNegotiation)
	e.PUT("/emission/:case_id", caseH.SaveEmission)
	e.POST("/cases/:case_id/cancel", caseH.CancelCase)
	e.POST("/cases/:case_id/renewal", caseH.CreateRenewal)

	e.GET("/agents/:clave", agentH.LookupAgent)

	addr := ":" + cfg.AppPort
	logger.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
