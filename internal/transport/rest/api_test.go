package rest

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsferdows/dhaka17-portal/internal/assistant"
	jwtauth "github.com/fsferdows/dhaka17-portal/internal/auth"
	"github.com/fsferdows/dhaka17-portal/internal/config"
	"github.com/fsferdows/dhaka17-portal/internal/fixture"
	authsvc "github.com/fsferdows/dhaka17-portal/internal/service/auth"
	centersvc "github.com/fsferdows/dhaka17-portal/internal/service/center"
	"github.com/fsferdows/dhaka17-portal/internal/service/lookup"
	profilesvc "github.com/fsferdows/dhaka17-portal/internal/service/profile"
	"github.com/fsferdows/dhaka17-portal/internal/session"
	"github.com/fsferdows/dhaka17-portal/internal/store"
	"github.com/fsferdows/dhaka17-portal/internal/transport/middleware"
	"github.com/fsferdows/dhaka17-portal/internal/voice"
)

// relayStub answers every assistant question with a fixed reply.
type relayStub struct {
	answer string
}

func (r *relayStub) Ask(_ context.Context, input assistant.AskInput) (*assistant.AskResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return &assistant.AskResult{Answer: r.answer, Language: input.Language}, nil
}

// newTestAPI wires the full route table over real services, a fresh session
// file, and a stubbed assistant relay.
func newTestAPI(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	st, err := store.New(fixture.Load())
	require.NoError(t, err)

	sessions, err := session.Open(filepath.Join(t.TempDir(), "session.json"), logger)
	require.NoError(t, err)

	jwt := jwtauth.NewJWTManager("test-secret-that-is-at-least-32-chars!!", "dhaka17-portal", time.Hour)
	authCfg := config.AuthConfig{
		VoterCode:    "1234",
		AdminCode:    "admin",
		ChallengeTTL: 5 * time.Minute,
		CodeHashCost: 4,
	}
	authService := authsvc.NewService(logger, sessions, jwt, authCfg)

	handlers := Handlers{
		Auth:      NewAuthHandler(authService, logger),
		Directory: NewDirectoryHandler(lookup.NewService(logger, st), logger),
		Voters:    NewVotersHandler(lookup.NewService(logger, st), logger),
		Profile:   NewProfileHandler(profilesvc.NewService(logger, sessions, st), logger),
		Admin:     NewAdminHandler(centersvc.NewService(logger, st), logger),
		Assistant: NewAssistantHandler(&relayStub{answer: "test answer"}, logger),
		Voice:     NewVoiceHandler(config.VoiceConfig{}, st, voice.NewHub(), logger),
		Health:    NewHealthHandler(sessions, "test"),
	}

	mux := NewRouter(handlers)
	return middleware.Chain(
		middleware.RequestID(),
		middleware.Auth(authService),
	)(mux)
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// login runs the two-step flow and returns the issued access token.
func login(t *testing.T, h http.Handler, code string) string {
	t.Helper()

	rec := doJSON(t, h, http.MethodPost, "/api/auth/start", "", map[string]string{
		"phone": "01712345678",
		"nid":   "19902692500001",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var start startResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&start))

	rec = doJSON(t, h, http.MethodPost, "/api/auth/verify", "", map[string]string{
		"challengeId": start.ChallengeID,
		"code":        code,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var verify verifyResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&verify))
	require.NotEmpty(t, verify.AccessToken)
	return verify.AccessToken
}

func TestAPI_LoginFlow(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)

	token := login(t, h, "1234")

	rec := doJSON(t, h, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var dash profilesvc.Dashboard
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&dash))
	assert.Equal(t, "voter", dash.User.Role.String())

	rec = doJSON(t, h, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "the session is gone after logout")
}

func TestAPI_WrongCode(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)

	rec := doJSON(t, h, http.MethodPost, "/api/auth/start", "", map[string]string{
		"phone": "01712345678",
		"nid":   "19902692500001",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var start startResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&start))

	rec = doJSON(t, h, http.MethodPost, "/api/auth/verify", "", map[string]string{
		"challengeId": start.ChallengeID,
		"code":        "9999",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_StartValidation(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)

	rec := doJSON(t, h, http.MethodPost, "/api/auth/start", "", map[string]string{
		"phone": "123",
		"nid":   "x",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_Directory(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)

	rec := doJSON(t, h, http.MethodGet, "/api/candidates", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var candidates []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&candidates))
	assert.Len(t, candidates, 3)

	rec = doJSON(t, h, http.MethodGet, "/api/candidates/1", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/candidates/99", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/centers?q=Banani", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var centers []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&centers))
	require.Len(t, centers, 1)
	assert.Equal(t, "vc2", centers[0]["id"])

	rec = doJSON(t, h, http.MethodGet, "/api/events?candidate=2", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var events []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&events))
	require.Len(t, events, 1)
	assert.Equal(t, "e2", events[0]["id"])

	rec = doJSON(t, h, http.MethodGet, "/api/notices", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_VoterLookup(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)

	rec := doJSON(t, h, http.MethodPost, "/api/voters/lookup", "", map[string]string{
		"nid": "19902692500001",
		"dob": "1990-01-01",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result lookup.VoterLookupResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, "Rahim Ahmed", result.Voter.Name)
	assert.Equal(t, "vc1", result.Center.ID)
}

func TestAPI_VoterLookupMissIsBilingual404(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)

	rec := doJSON(t, h, http.MethodPost, "/api/voters/lookup", "", map[string]string{
		"nid": "19902692500001",
		"dob": "1999-09-09",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body bilingualError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.NotEmpty(t, body.Error)
	assert.NotEmpty(t, body.ErrorBN)
}

func TestAPI_FollowAndRSVP(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)
	token := login(t, h, "1234")

	rec := doJSON(t, h, http.MethodPost, "/api/candidates/1/follow", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var follow profilesvc.FollowResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&follow))
	assert.True(t, follow.Following)

	rec = doJSON(t, h, http.MethodPost, "/api/events/e1/rsvp", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var rsvp profilesvc.RSVPResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rsvp))
	assert.True(t, rsvp.Attending)
	assert.Equal(t, 1241, rsvp.AttendanceCount)

	rec = doJSON(t, h, http.MethodPost, "/api/events/e1/rsvp", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rsvp))
	assert.False(t, rsvp.Attending)
	assert.Equal(t, 1240, rsvp.AttendanceCount)

	// Anonymous callers cannot toggle.
	rec = doJSON(t, h, http.MethodPost, "/api/candidates/1/follow", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_AdminCenters(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)
	admin := login(t, h, "admin")

	rec := doJSON(t, h, http.MethodPost, "/api/admin/centers", admin, map[string]string{
		"name":   "Mohakhali Model School",
		"nameBn": "মহাখালী মডেল স্কুল",
		"area":   "Mohakhali",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	rec = doJSON(t, h, http.MethodPut, "/api/admin/centers/"+id, admin, map[string]string{
		"name":   "Mohakhali Model School (Main)",
		"nameBn": "মহাখালী মডেল স্কুল",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodDelete, "/api/admin/centers/"+id, admin, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Referenced centers cannot be removed.
	rec = doJSON(t, h, http.MethodDelete, "/api/admin/centers/vc1", admin, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAPI_AdminCenterValidation(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)
	admin := login(t, h, "admin")

	rec := doJSON(t, h, http.MethodPost, "/api/admin/centers", admin, map[string]string{
		"nameBn": "মহাখালী মডেল স্কুল",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// The collection is unchanged after the rejected save.
	rec = doJSON(t, h, http.MethodGet, "/api/centers", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var centers []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&centers))
	assert.Len(t, centers, 3)
}

func TestAPI_AdminRequiresAdminRole(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)
	voter := login(t, h, "1234")

	rec := doJSON(t, h, http.MethodPost, "/api/admin/centers", voter, map[string]string{
		"name":   "X",
		"nameBn": "ক",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/admin/centers", "", map[string]string{
		"name":   "X",
		"nameBn": "ক",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAPI_Assistant(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)

	rec := doJSON(t, h, http.MethodPost, "/api/assistant/ask", "", map[string]string{
		"query": "Where do I vote?",
		"lang":  "en",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result assistant.AskResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, "test answer", result.Answer)

	rec = doJSON(t, h, http.MethodPost, "/api/assistant/ask", "", map[string]string{
		"query": "  ",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_CallRequests(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)

	srv := httptest.NewServer(h)
	defer srv.Close()

	// Subscribe first so the published request has a listener.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	subReq, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/voice/call-requests", nil)
	require.NoError(t, err)
	subResp, err := http.DefaultClient.Do(subReq)
	require.NoError(t, err)
	defer subResp.Body.Close()
	require.Equal(t, http.StatusOK, subResp.StatusCode)
	require.Equal(t, "text/event-stream", subResp.Header.Get("Content-Type"))

	pubResp, err := http.Post(srv.URL+"/api/voice/call-requests", "application/json",
		strings.NewReader(`{"lang":"bn"}`))
	require.NoError(t, err)
	defer pubResp.Body.Close()
	require.Equal(t, http.StatusAccepted, pubResp.StatusCode)

	var published voice.CallRequest
	require.NoError(t, json.NewDecoder(pubResp.Body).Decode(&published))
	require.NotEmpty(t, published.ID)

	scanner := bufio.NewScanner(subResp.Body)
	var data string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "data: ") {
			data = strings.TrimPrefix(line, "data: ")
			break
		}
	}
	require.NotEmpty(t, data, "expected a call-request event on the stream")

	var received voice.CallRequest
	require.NoError(t, json.Unmarshal([]byte(data), &received))
	assert.Equal(t, published.ID, received.ID)
}

func TestAPI_Health(t *testing.T) {
	t.Parallel()
	h := newTestAPI(t)

	for _, path := range []string{"/health/live", "/health/ready", "/health"} {
		rec := doJSON(t, h, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
