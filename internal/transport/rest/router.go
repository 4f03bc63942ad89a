package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Jeetch8/softfix-helper/internal/transport/middleware"
)

// RouterDeps holds the handlers and settings wired into the router.
type RouterDeps struct {
	Health   *HealthHandler
	Topics   *TopicHandler
	Keywords *KeywordHandler
	Ideas    *IdeaHandler

	// Auth identifies the caller on every /api route.
	Auth middleware.Middleware
	// UploadsDir is served under /uploads/ when set (local object storage).
	UploadsDir string
}

// NewRouter builds the HTTP routes. Cross-cutting middleware is applied by the caller.
func NewRouter(d RouterDeps) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(MethodNotAllowed)

	r.HandleFunc("/health", d.Health.Health).Methods(http.MethodGet)
	r.HandleFunc("/live", d.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", d.Health.Ready).Methods(http.MethodGet)

	if d.UploadsDir != "" {
		r.PathPrefix("/uploads/").Methods(http.MethodGet, http.MethodHead).
			Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(d.UploadsDir))))
	}

	// API routes sit on the root router rather than a PathPrefix subrouter:
	// inside a subrouter every later route re-matches the /api prefix, which
	// clears a method mismatch and turns a 405 into a 404.
	auth := d.Auth
	if auth == nil {
		auth = func(next http.Handler) http.Handler { return next }
	}
	api := &apiRoutes{r: r, auth: auth}

	t := d.Topics
	api.HandleFunc("/topics", t.List).Methods(http.MethodGet)
	api.HandleFunc("/topics", t.Create).Methods(http.MethodPost)
	api.HandleFunc("/topics/{id}", t.Get).Methods(http.MethodGet)
	api.HandleFunc("/topics/{id}", t.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/topics/{id}/regenerate", t.Regenerate).Methods(http.MethodPost)
	api.HandleFunc("/topics/{id}/script", t.UpdateScript).Methods(http.MethodPut)
	api.HandleFunc("/topics/{id}/generate-titles", t.GenerateTitles).Methods(http.MethodPost)
	api.HandleFunc("/topics/{id}/select-title", t.SelectTitle).Methods(http.MethodPost)
	api.HandleFunc("/topics/{id}/update-title", t.UpdateTitle).Methods(http.MethodPut)
	api.HandleFunc("/topics/{id}/generate-thumbnails", t.GenerateThumbnails).Methods(http.MethodPost)
	api.HandleFunc("/topics/{id}/select-thumbnail", t.SelectThumbnail).Methods(http.MethodPost)
	api.HandleFunc("/topics/{id}/generate-extra-assets", t.GenerateExtraAssets).Methods(http.MethodPost)
	api.HandleFunc("/topics/{id}/mark-editing", t.MarkEditing).Methods(http.MethodPost)
	api.HandleFunc("/topics/{id}/mark-uploaded", t.MarkUploaded).Methods(http.MethodPost)
	api.HandleFunc("/status/all", t.Stats).Methods(http.MethodGet)
	api.HandleFunc("/process-now", t.ProcessNow).Methods(http.MethodPost)

	k := d.Keywords
	api.HandleFunc("/keywords", k.List).Methods(http.MethodGet)
	api.HandleFunc("/keywords/stats", k.Stats).Methods(http.MethodGet)
	api.HandleFunc("/keywords/upload", k.Upload).Methods(http.MethodPost)
	api.HandleFunc("/keywords/local/list", k.ListLocal).Methods(http.MethodGet)
	api.HandleFunc("/keywords/local/import-directory", k.ImportDirectory).Methods(http.MethodPost)
	api.HandleFunc("/keywords/local/import-file", k.ImportFile).Methods(http.MethodPost)
	api.HandleFunc("/keywords/{id}", k.Get).Methods(http.MethodGet)
	api.HandleFunc("/keywords/{id}", k.Update).Methods(http.MethodPut)
	api.HandleFunc("/keywords/{id}", k.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/keywords/{id}/add-to-title", k.AddToTitle).Methods(http.MethodPost)
	api.HandleFunc("/keywords/{id}/remove-from-title", k.RemoveFromTitle).Methods(http.MethodPost)
	api.HandleFunc("/keywords/{id}/add-to-ideas", k.AddToIdeas).Methods(http.MethodPost)
	api.HandleFunc("/keywords/{id}/remove-from-ideas", k.RemoveFromIdeas).Methods(http.MethodPost)

	i := d.Ideas
	api.HandleFunc("/ideas", i.List).Methods(http.MethodGet)
	api.HandleFunc("/ideas", i.Create).Methods(http.MethodPost)
	api.HandleFunc("/ideas/stats", i.Stats).Methods(http.MethodGet)
	api.HandleFunc("/ideas/{id}", i.Get).Methods(http.MethodGet)
	api.HandleFunc("/ideas/{id}", i.Update).Methods(http.MethodPut)
	api.HandleFunc("/ideas/{id}", i.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/ideas/{id}/convert-to-topic", i.Convert).Methods(http.MethodPost)

	return r
}

type apiRoutes struct {
	r    *mux.Router
	auth middleware.Middleware
}

// HandleFunc registers an authenticated route under /api.
func (a *apiRoutes) HandleFunc(path string, f http.HandlerFunc) *mux.Route {
	return a.r.Handle("/api"+path, a.auth(f))
}
