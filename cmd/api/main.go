package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gators-academy/backend/internal/authctx"
	"gators-academy/backend/internal/config"
	"gators-academy/backend/internal/domain/booking"
	"gators-academy/backend/internal/domain/profile"
	"gators-academy/backend/internal/domain/schedule"
	"gators-academy/backend/internal/domain/stats"
	"gators-academy/backend/internal/firebase"
	apihttp "gators-academy/backend/internal/http"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	app, err := firebase.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("firebase app init failed: %v", err)
	}

	authClient, err := firebase.NewAuthClient(ctx, app)
	if err != nil {
		log.Fatalf("firebase auth client init failed: %v", err)
	}

	fs, err := firebase.NewFirestore(ctx, app)
	if err != nil {
		log.Fatalf("firestore init failed: %v", err)
	}
	defer fs.Close()

	// Repositories
	profileRepo := profile.NewRepo(fs.Client)
	bookingRepo := booking.NewRepo(fs.Client)
	scheduleRepo := schedule.NewRepo(fs.Client)

	// Services
	resolver := authctx.Resolver{
		AdminDomain:   cfg.AdminDomain,
		TrainerDomain: cfg.TrainerDomain,
	}
	profileSvc := profile.NewService(profileRepo, authClient, resolver)
	bookingSvc := booking.NewService(bookingRepo, profileRepo, cfg.RejectSlotConflicts)
	scheduleSvc := schedule.NewService(scheduleRepo, profileRepo)
	statsSvc := stats.NewService(bookingRepo, scheduleRepo, profileRepo)

	if cfg.RejectSlotConflicts {
		log.Println("slot conflict rejection enabled")
	}

	router := apihttp.NewRouter(apihttp.RouterDeps{
		Cfg:         cfg,
		AuthClient:  authClient,
		ProfileSvc:  profileSvc,
		BookingSvc:  bookingSvc,
		ScheduleSvc: scheduleSvc,
		StatsSvc:    statsSvc,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	go func() {
		log.Printf("API listening on :%s (project=%s)", cfg.Port, cfg.ProjectID)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 2)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Println("shutting down...")
	_ = srv.Shutdown(ctxShutdown)
}
