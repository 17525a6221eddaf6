package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"credit-planner/config"
	httpLayer "credit-planner/http"
	"credit-planner/input"
	"credit-planner/report"
	"credit-planner/repository"
	"credit-planner/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "ruta del archivo de configuración")
	inputPath := flag.String("input", "", "archivo JSON de parámetros; si se indica, calcula e imprime en consola")
	pdfPath := flag.String("pdf", "", "ruta del reporte PDF (solo en modo consola)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	var sweepRepo repository.SweepRepository
	var closeRepo func() error
	if cfg.Database.Path != "" {
		sqliteRepo, err := repository.NewSweepRepositorySQLite(cfg.Database.Path)
		if err != nil {
			log.Fatalf("Error opening database: %v", err)
		}
		sweepRepo = sqliteRepo
		closeRepo = sqliteRepo.Close
	} else {
		sweepRepo = repository.NewSweepRepositoryMemory()
		closeRepo = func() error { return nil }
	}
	defer closeRepo()

	var cache repository.CacheRepository
	if cfg.Redis.Addr != "" {
		cache = repository.NewRedisCache(cfg.Redis.Addr)
	} else {
		cache = repository.NewMockCache()
	}

	investmentService := service.NewInvestmentService()
	creditService := service.NewCreditService(investmentService)
	sweepService := service.NewSweepService(creditService, investmentService, sweepRepo, cache)

	if *inputPath != "" {
		if err := runConsole(sweepService, *inputPath, *pdfPath); err != nil {
			closeRepo()
			log.Fatalf("Error: %v", err)
		}
		return
	}

	runServer(cfg, sweepService)
}

// runConsole calculates a sweep over a parameter file and prints the results,
// optionally writing a PDF chart.
func runConsole(sweepService *service.SweepService, inputPath, pdfPath string) error {
	log.Printf("Credit parameters input file path: %s", inputPath)

	params, err := input.ParseFile(inputPath)
	if err != nil {
		return err
	}

	report.PrintParameters(params)

	output, err := sweepService.CalculateSweep(params)
	if err != nil {
		return err
	}

	report.PrintSweep(output)

	if pdfPath != "" {
		if err := report.NewPDFReport().Generate(params, output, pdfPath); err != nil {
			log.Printf("Warning: failed to write PDF report: %v", err)
		} else {
			log.Printf("PDF report written to %s", pdfPath)
		}
	}

	return nil
}

func runServer(cfg config.Config, sweepService *service.SweepService) {
	sweepHandler := httpLayer.NewSweepHandler(sweepService)
	termHandler := httpLayer.NewTermHandler(sweepService)

	rateLimiter := httpLayer.NewRateLimiter(
		cfg.RateLimit.Requests,
		time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute,
	)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/credit/sweep",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(sweepHandler.CalculateSweep),
		),
	)
	mux.Handle(
		"/credit/term",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(termHandler.CalculateTerm),
		),
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 API corriendo en http://localhost%s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
