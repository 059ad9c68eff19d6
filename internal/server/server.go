package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/graceview/graceview-api/internal/bible"
	"github.com/graceview/graceview-api/internal/content"
	"github.com/graceview/graceview-api/internal/database"
	"github.com/graceview/graceview-api/internal/mail"
	"github.com/graceview/graceview-api/internal/push"
	"github.com/graceview/graceview-api/pkg/config"
)

type Server struct {
	port      string
	db        database.Service
	handler   http.Handler
	cfg       *config.Config
	mail      *mail.Mailer
	library   *bible.Library
	scheduler *push.Scheduler
}

// NewServer constructs the app server with all dependencies injected.
func NewServer(db database.Service, library *bible.Library, cfg *config.Config) *Server {
	stats := db.Health()
	mailer := mail.NewMail(
		cfg.SmtpFrom,
		"GraceView",
		cfg.SmtpPassword,
		cfg.SmtpHost,
		cfg.SmtpPort,
	)

	fmt.Println("Database Health:", stats)

	if stats["status"] != "up" {
		log.Fatal("Database connection failed")
		return &Server{}
	} else {
		log.Println("Database connection successful")
	}

	pushRepo := push.NewPushRepo(db)
	relay := push.NewRelayClient(cfg.PushRelayURL)
	contentService := content.NewContentService(content.NewContentRepo(db))

	s := &Server{
		port:      cfg.Port,
		db:        db,
		cfg:       cfg,
		mail:      mailer,
		library:   library,
		scheduler: push.NewScheduler(pushRepo, relay, contentService),
	}

	s.handler = s.RegisterRoutes()
	return s
}

// HTTPServer returns the actual *http.Server instance.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", s.port),
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// StartBackgroundJobs starts the daily devotional push job.
func (s *Server) StartBackgroundJobs() {
	if err := s.scheduler.Start(s.cfg.PushSendTime); err != nil {
		log.Printf("push scheduler not started: %v", err)
	}
}

func (s *Server) StopBackgroundJobs() {
	s.scheduler.Stop()
	log.Println("Background jobs stopped gracefully")
}
