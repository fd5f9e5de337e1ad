package api

import (
	"net/http"

	"github.com/Vibhuti270/virtual-herbal-backend/api/rest"
	"github.com/Vibhuti270/virtual-herbal-backend/service"
)

type HerbalGardenAPI struct {
	restHandler *rest.Handler
}

func NewHerbalGardenAPI(svc *service.Service) *HerbalGardenAPI {
	return &HerbalGardenAPI{
		restHandler: rest.NewHandler(svc),
	}
}

func (herbalAPI *HerbalGardenAPI) RegisterRoutes(mux *http.ServeMux) {
	// Health check endpoint; unlike "/" it does not count as a visit
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("/{$}", herbalAPI.restHandler.HandleHome)
	// A trailing slash reaches the same handler
	for _, suffix := range []string{"", "/{$}"} {
		mux.HandleFunc("/api/visit-count"+suffix, herbalAPI.restHandler.HandleVisitCount)
		mux.HandleFunc("/api/users"+suffix, herbalAPI.restHandler.HandleUsers)
	}
}

// Handler returns the routes wrapped in CORS, request logging and panic recovery
func (herbalAPI *HerbalGardenAPI) Handler(allowedOrigin string) http.Handler {
	mux := http.NewServeMux()
	herbalAPI.RegisterRoutes(mux)

	return withCORS(allowedOrigin, withRequestLog(withRecover(mux)))
}
