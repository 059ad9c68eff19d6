package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/graceview/graceview-api/internal/annotation"
	"github.com/graceview/graceview-api/internal/assistant"
	"github.com/graceview/graceview-api/internal/auth"
	"github.com/graceview/graceview-api/internal/bible"
	"github.com/graceview/graceview-api/internal/content"
	"github.com/graceview/graceview-api/internal/push"
	"github.com/graceview/graceview-api/internal/quiz"
	"github.com/graceview/graceview-api/internal/reader"
	"github.com/graceview/graceview-api/pkg/response"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", s.ServerIsWorking)

	r.Route("/graceview-api/v1", func(r chi.Router) {
		s.loadAuthRoutes(r)
		s.loadBibleRoutes(r)
		s.loadAnnotationRoutes(r)
		s.loadReaderRoutes(r)
		s.loadContentRoutes(r)
		s.loadQuizRoutes(r)
		s.loadAssistantRoutes(r)
		s.loadPushRoutes(r)
	})
	r.Get("/graceview-api/v1", s.ServerIsWorking)

	return r
}

func (s *Server) ServerIsWorking(w http.ResponseWriter, r *http.Request) {
	resp := make(map[string]string)
	resp["message"] = "Welcome to GraceView api"
	response.Success(w, resp, "Success")
}

func (s *Server) loadAuthRoutes(router chi.Router) {
	authRepo := auth.NewRepository(s.db)
	authService := auth.NewAuthService(authRepo, s.mail)
	authHandler := auth.NewHandler(authService)

	router.Post("/auth/login", authHandler.LoginHandler)
	router.Post("/auth/register", authHandler.RegisterHandler)
	router.Post("/auth/forget-password", authHandler.ForgetPasswordHandler)
	router.Post("/auth/reset-password", authHandler.ResetPasswordHandler)

	router.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Get("/auth/me", authHandler.MeHandler)
		r.Patch("/auth/update-profile", authHandler.UpdateProfileHandler)
	})
}

func (s *Server) loadBibleRoutes(router chi.Router) {
	bibleHandler := bible.NewHandler(s.library)

	router.Get("/bible/translations", bibleHandler.GetTranslationsHandler)
	router.Get("/bible/{translation}/books", bibleHandler.GetBooksHandler)
	router.Get("/bible/{translation}/{book}/intro", bibleHandler.GetIntroHandler)
	router.Get("/bible/{translation}/{book}/{chapter}", bibleHandler.GetChapterHandler)
	router.Get("/bible/{translation}/search", bibleHandler.SearchHandler)
}

func (s *Server) loadAnnotationRoutes(router chi.Router) {
	repo := annotation.NewAnnotationRepo(s.db)
	service := annotation.NewAnnotationService(repo, s.library)
	handler := annotation.NewAnnotationHandler(service)

	router.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Get("/annotations/highlights/{translation}/{book}/{chapter}", handler.GetChapterHighlightsHandler)
		r.Put("/annotations/highlights", handler.ToggleHighlightHandler)
		r.Get("/annotations/favorites", handler.GetFavoritesHandler)
		r.Patch("/annotations/favorites", handler.ToggleFavoriteHandler)
		r.Get("/annotations/comments/{translation}/{book}/{chapter}/{verse}", handler.GetCommentsHandler)
		r.Post("/annotations/comments/{translation}/{book}/{chapter}/{verse}", handler.AddCommentHandler)
		r.Delete("/annotations/comments/{translation}/{book}/{chapter}/{verse}/{commentID}", handler.DeleteCommentHandler)
	})
}

func (s *Server) loadReaderRoutes(router chi.Router) {
	repo := annotation.NewAnnotationRepo(s.db)
	service := annotation.NewAnnotationService(repo, s.library)
	handler := reader.NewReaderHandler(s.library, service)

	router.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Get("/reader/{translation}/{book}/{chapter}", handler.SessionHandler)
	})
}

func (s *Server) loadContentRoutes(router chi.Router) {
	service := content.NewContentService(content.NewContentRepo(s.db))
	handler := content.NewContentHandler(service)

	router.Get("/devotionals/today", handler.GetTodaysDevotionalHandler)
	router.Get("/devotionals", handler.ListDevotionalsHandler)
	router.Get("/announcements", handler.ListAnnouncementsHandler)
	router.Get("/carousel", handler.ListCarouselImagesHandler)
	router.Get("/services", handler.ListServiceTimesHandler)
	router.Get("/hymns", handler.ListHymnsHandler)
	router.Get("/hymns/{number}", handler.GetHymnHandler)

	router.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Use(auth.AdminMiddleware)

		r.Post("/admin/devotionals", handler.CreateDevotionalHandler)
		r.Put("/admin/devotionals/{id}", handler.UpdateDevotionalHandler)
		r.Delete("/admin/devotionals/{id}", handler.DeleteDevotionalHandler)

		r.Post("/admin/announcements", handler.CreateAnnouncementHandler)
		r.Put("/admin/announcements/{id}", handler.UpdateAnnouncementHandler)
		r.Delete("/admin/announcements/{id}", handler.DeleteAnnouncementHandler)

		r.Post("/admin/carousel", handler.CreateCarouselImageHandler)
		r.Put("/admin/carousel/{id}", handler.UpdateCarouselImageHandler)
		r.Delete("/admin/carousel/{id}", handler.DeleteCarouselImageHandler)

		r.Post("/admin/services", handler.CreateServiceTimeHandler)
		r.Put("/admin/services/{id}", handler.UpdateServiceTimeHandler)
		r.Delete("/admin/services/{id}", handler.DeleteServiceTimeHandler)

		r.Post("/admin/hymns", handler.CreateHymnHandler)
		r.Put("/admin/hymns/{id}", handler.UpdateHymnHandler)
		r.Delete("/admin/hymns/{id}", handler.DeleteHymnHandler)
	})
}

func (s *Server) loadQuizRoutes(router chi.Router) {
	service := quiz.NewQuizService(quiz.NewQuizRepo(s.db))
	handler := quiz.NewQuizHandler(service)

	router.Get("/quiz", handler.GetQuizHandler)
	router.Post("/quiz/submit", handler.SubmitQuizHandler)

	router.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Use(auth.AdminMiddleware)
		r.Get("/admin/quiz/questions", handler.ListQuestionsHandler)
		r.Post("/admin/quiz/questions", handler.CreateQuestionHandler)
		r.Put("/admin/quiz/questions/{id}", handler.UpdateQuestionHandler)
		r.Delete("/admin/quiz/questions/{id}", handler.DeleteQuestionHandler)
	})
}

func (s *Server) loadAssistantRoutes(router chi.Router) {
	service := assistant.NewAssistantService(s.cfg)
	handler := assistant.NewAssistantHandler(service)

	router.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Post("/assistant/chat", handler.ChatHandler)
	})
}

func (s *Server) loadPushRoutes(router chi.Router) {
	handler := push.NewPushHandler(push.NewPushRepo(s.db))

	router.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Post("/push/register", handler.RegisterTokenHandler)
		r.Delete("/push/register", handler.UnregisterTokenHandler)
	})
}
