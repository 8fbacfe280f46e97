package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "fundbridge-backend/internal/adapter/http"
	"fundbridge-backend/internal/adapter/middleware"
	"fundbridge-backend/internal/adapter/repository/mysql"
	"fundbridge-backend/internal/config"
	"fundbridge-backend/internal/infrastructure/cache"
	"fundbridge-backend/internal/infrastructure/db"
	adminUC "fundbridge-backend/internal/usecase/admin"
	campaignUC "fundbridge-backend/internal/usecase/campaign"
	donationUC "fundbridge-backend/internal/usecase/donation"
	loanUC "fundbridge-backend/internal/usecase/loan"
	userUC "fundbridge-backend/internal/usecase/user"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	store := cache.NewStore(rdb, cfg.CacheTTLMedium)

	// repositories
	userRepo := mysql.NewUserRepository(gdb)
	campaignRepo := mysql.NewCampaignRepository(gdb)
	donationRepo := mysql.NewDonationRepository(gdb)
	loanRepo := mysql.NewLoanRepository(gdb)
	fundingRepo := mysql.NewFundingRepository(gdb)
	repaymentRepo := mysql.NewRepaymentRepository(gdb)
	ledgerRepo := mysql.NewLedgerRepository(gdb)
	auditRepo := mysql.NewAuditRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	// usecases
	campaigns := campaignUC.NewUsecase(campaignRepo, donationRepo, userRepo, store, cfg.CacheTTLMedium, cfg.CacheTTLShort)
	donations := donationUC.NewUsecase(uow, donationRepo, campaigns)
	loans := loanUC.NewUsecase(loanRepo, fundingRepo, repaymentRepo, userRepo, uow)
	users := userUC.NewUsecase(userRepo, ledgerRepo)
	admins := adminUC.NewUsecase(uow, userRepo, campaignRepo, loanRepo, donationRepo, fundingRepo, ledgerRepo, auditRepo, store)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	httpadp.RegisterRoutes(e,
		httpadp.NewHandler(),
		httpadp.NewUserHandler(users),
		httpadp.NewCampaignHandler(campaigns, donations),
		httpadp.NewDonationHandler(donations),
		httpadp.NewLoanHandler(loans),
		httpadp.NewAdminHandler(admins, loans),
		idemp,
	)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
