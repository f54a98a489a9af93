package rest

import "net/http"

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth      *AuthHandler
	Directory *DirectoryHandler
	Voters    *VotersHandler
	Profile   *ProfileHandler
	Admin     *AdminHandler
	Assistant *AssistantHandler
	Voice     *VoiceHandler
	Health    *HealthHandler
}

// NewRouter mounts all portal routes on a ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/start", h.Auth.Start)
	mux.HandleFunc("POST /api/auth/verify", h.Auth.Verify)
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)

	mux.HandleFunc("GET /api/me", h.Profile.Me)
	mux.HandleFunc("POST /api/candidates/{id}/follow", h.Profile.Follow)
	mux.HandleFunc("POST /api/events/{id}/rsvp", h.Profile.RSVP)

	mux.HandleFunc("GET /api/candidates", h.Directory.ListCandidates)
	mux.HandleFunc("GET /api/candidates/{id}", h.Directory.GetCandidate)
	mux.HandleFunc("GET /api/events", h.Directory.ListEvents)
	mux.HandleFunc("GET /api/notices", h.Directory.ListNotices)
	mux.HandleFunc("GET /api/centers", h.Directory.ListCenters)

	mux.HandleFunc("POST /api/voters/lookup", h.Voters.Lookup)

	mux.HandleFunc("POST /api/admin/centers", h.Admin.CreateCenter)
	mux.HandleFunc("PUT /api/admin/centers/{id}", h.Admin.UpdateCenter)
	mux.HandleFunc("DELETE /api/admin/centers/{id}", h.Admin.DeleteCenter)

	mux.HandleFunc("POST /api/assistant/ask", h.Assistant.Ask)

	mux.HandleFunc("GET /api/voice/call", h.Voice.Call)
	mux.HandleFunc("POST /api/voice/call-requests", h.Voice.PublishCallRequest)
	mux.HandleFunc("GET /api/voice/call-requests", h.Voice.SubscribeCallRequests)

	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	return mux
}
