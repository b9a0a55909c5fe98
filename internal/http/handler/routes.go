package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"gyccsite/internal/auth"
	"gyccsite/internal/http/middleware"
	"gyccsite/internal/service"
)

// Deps carries everything the HTTP layer needs.
type Deps struct {
	DB              *sql.DB
	Gallery         service.GalleryService
	Voice           service.VoiceService
	Blog            service.BlogService
	Subscribers     service.SubscriberService
	Uploads         service.UploadService
	Gate            *auth.Gate
	StorageEndpoint string
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	// Presigned URLs are per request; nothing on these routes may be cached.
	app.Get("/photos", middleware.NoStore(), ListPhotos(d.Gallery))
	app.Post("/presign-images", middleware.NoStore(), PresignImages(d.Gallery))
	app.Get("/storage/status", middleware.NoStore(), StorageStatus(d.Gallery, d.StorageEndpoint))

	app.Post("/subscribe", Subscribe(d.Subscribers))

	app.Get("/ourvoice", ListVoicePosts(d.Voice))
	app.Get("/ourvoice/:slug", GetVoicePost(d.Voice))

	requireAuth := middleware.RequireAuth(d.Gate)

	app.Get("/blog", ListBlogPosts(d.Blog))
	app.Get("/blog/:id", GetBlogPost(d.Blog))
	app.Post("/blog", requireAuth, CreateBlogPost(d.Blog))
	app.Put("/blog/:id", requireAuth, UpdateBlogPost(d.Blog))
	app.Delete("/blog/:id", requireAuth, DeleteBlogPost(d.Blog))

	app.Post("/upload", requireAuth, UploadImage(d.Uploads))

	admin := app.Group("/admin", requireAuth, middleware.NoStore())
	admin.Get("/subscribers", ListSubscribers(d.Subscribers))
	admin.Get("/ourvoice", AdminListVoicePosts(d.Voice))
	admin.Post("/ourvoice", AdminCreateVoicePost(d.Voice))
	admin.Get("/ourvoice/:id", AdminGetVoicePost(d.Voice))
	admin.Put("/ourvoice/:id", AdminUpdateVoicePost(d.Voice))
	admin.Delete("/ourvoice/:id", AdminDeactivateVoicePost(d.Voice))
}
