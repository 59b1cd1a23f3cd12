package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "loan-management-service/internal/adapter/http"
	mysqlrepo "loan-management-service/internal/adapter/repository/mysql"
	"loan-management-service/internal/config"
	loanDomain "loan-management-service/internal/domain/loan"
	"loan-management-service/internal/infrastructure/cache"
	"loan-management-service/internal/infrastructure/db"
	loanUC "loan-management-service/internal/usecase/loan"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(&loanDomain.Loan{}); err != nil {
		log.Fatal(err)
	}

	var statsCache loanUC.Cache
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Printf("redis unavailable, stats cache disabled: %v", err)
		} else {
			statsCache = cache.NewRedis(rdb)
		}
	}

	repo := mysqlrepo.NewLoanRepository(gdb)
	uc := loanUC.NewUsecase(repo, statsCache, time.Duration(cfg.StatsTTLSecs)*time.Second)
	lh := httpadp.NewLoanHandler(uc)
	h := httpadp.NewHandler()

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	// CORS open to all origins/methods for the browser front ends
	e.Use(middleware.Logger(), middleware.Recover(), middleware.CORS())

	// routes
	e.GET("/health", h.Health)

	api := e.Group("/api")
	api.GET("/loans", lh.ListLoans)
	api.POST("/loans", lh.CreateLoan)
	api.GET("/loans/search", lh.SearchLoans)
	api.GET("/loans/stats", lh.LoanStats)
	api.GET("/loans/:id", lh.GetLoan)
	api.PUT("/loans/:id", lh.UpdateLoan)
	api.DELETE("/loans/:id", lh.DeleteLoan)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
