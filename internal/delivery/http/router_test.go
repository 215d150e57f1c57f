package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amora-app/amora-backend/internal/delivery/http/handler"
	"github.com/amora-app/amora-backend/internal/delivery/http/middleware"
	"github.com/amora-app/amora-backend/internal/logging"
	"github.com/amora-app/amora-backend/internal/repository/memory"
	"github.com/amora-app/amora-backend/internal/usecase/auth"
	"github.com/amora-app/amora-backend/internal/usecase/feed"
	"github.com/amora-app/amora-backend/internal/usecase/match"
	"github.com/amora-app/amora-backend/internal/usecase/moderation"
	"github.com/amora-app/amora-backend/internal/usecase/profile"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	store := memory.NewStore()
	log := logging.New("error")

	authUC := auth.NewAuthUseCase(store.UserRepo(), store.SessionRepo(),
		"0123456789abcdef0123456789abcdef", time.Hour)
	profileUC := profile.NewProfileUseCase(store.ProfileRepo(), store.UserRepo())
	matchUC := match.NewMatchUseCase(store.LikeRepo(), store.MatchRepo(), store.ProfileRepo(), log)
	feedUC := feed.NewFeedUseCase(store.ProfileRepo(), store.BlockRepo())
	moderationUC := moderation.NewModerationUseCase(store.BlockRepo(), store.ReportRepo(), store.UserRepo(), log)

	router := NewRouter(
		handler.NewAuthHandler(authUC),
		handler.NewProfileHandler(profileUC),
		handler.NewFeedHandler(feedUC),
		handler.NewMatchHandler(matchUC),
		handler.NewModerationHandler(moderationUC),
		middleware.NewAuthMiddleware(authUC),
	)
	return router.Setup()
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// registerUser creates an account with a profile and returns (token, userID).
func registerUser(t *testing.T, engine *gin.Engine, email, gender, preferredGender string) (string, int) {
	t.Helper()

	w := doJSON(t, engine, "POST", "/api/v1/auth/register", "", gin.H{
		"email":    email,
		"password": "secret-pass",
	})
	require.Equal(t, nethttp.StatusCreated, w.Code, w.Body.String())
	resp := decode(t, w)
	token := resp["token"].(string)
	userID := int(resp["user"].(map[string]any)["id"].(float64))

	w = doJSON(t, engine, "POST", "/api/v1/profile/complete-onboarding", token, gin.H{
		"gender":           gender,
		"preferred_gender": preferredGender,
		"location":         "Berlin",
	})
	require.Equal(t, nethttp.StatusCreated, w.Code, w.Body.String())

	return token, userID
}

func TestHealth(t *testing.T) {
	engine := setupTestServer(t)
	w := doJSON(t, engine, "GET", "/health", "", nil)
	assert.Equal(t, nethttp.StatusOK, w.Code)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	engine := setupTestServer(t)
	for _, path := range []string{"/api/v1/profiles", "/api/v1/matches", "/api/v1/profile/me"} {
		w := doJSON(t, engine, "GET", path, "", nil)
		assert.Equal(t, nethttp.StatusUnauthorized, w.Code, path)
	}
}

func TestVisibleProfilesEndpoint(t *testing.T) {
	engine := setupTestServer(t)
	token1, _ := registerUser(t, engine, "u1@example.com", "male", "female")
	_, u2 := registerUser(t, engine, "u2@example.com", "female", "any")
	registerUser(t, engine, "u3@example.com", "male", "any")

	w := doJSON(t, engine, "GET", "/api/v1/profiles", token1, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)

	var profiles []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profiles))
	require.Len(t, profiles, 1)
	assert.Equal(t, float64(u2), profiles[0]["user_id"])
}

func TestLikeAndMatchFlow(t *testing.T) {
	engine := setupTestServer(t)
	token1, u1 := registerUser(t, engine, "u1@example.com", "male", "any")
	token2, u2 := registerUser(t, engine, "u2@example.com", "female", "any")

	// U1 likes U2: one-way.
	w := doJSON(t, engine, "POST", fmt.Sprintf("/api/v1/like/%d", u2), token1, nil)
	require.Equal(t, nethttp.StatusCreated, w.Code)
	assert.Equal(t, "liked", decode(t, w)["outcome"])

	// Duplicate like conflicts.
	w = doJSON(t, engine, "POST", fmt.Sprintf("/api/v1/like/%d", u2), token1, nil)
	assert.Equal(t, nethttp.StatusConflict, w.Code)

	// Self-like is invalid input.
	w = doJSON(t, engine, "POST", fmt.Sprintf("/api/v1/like/%d", u1), token1, nil)
	assert.Equal(t, nethttp.StatusBadRequest, w.Code)

	// Liking a user without a profile is not found.
	w = doJSON(t, engine, "POST", "/api/v1/like/999", token1, nil)
	assert.Equal(t, nethttp.StatusNotFound, w.Code)

	// U2 likes back: match.
	w = doJSON(t, engine, "POST", fmt.Sprintf("/api/v1/like/%d", u1), token2, nil)
	require.Equal(t, nethttp.StatusCreated, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "matched", resp["outcome"])
	require.NotNil(t, resp["match"])

	// Both sides list the same single match.
	for _, token := range []string{token1, token2} {
		w = doJSON(t, engine, "GET", "/api/v1/matches", token, nil)
		require.Equal(t, nethttp.StatusOK, w.Code)
		var matches []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &matches))
		assert.Len(t, matches, 1)
	}
}

func TestBlockEndpoint(t *testing.T) {
	engine := setupTestServer(t)
	token1, _ := registerUser(t, engine, "u1@example.com", "male", "any")
	token2, u2 := registerUser(t, engine, "u2@example.com", "female", "any")

	w := doJSON(t, engine, "POST", fmt.Sprintf("/api/v1/block/%d", u2), token1, nil)
	require.Equal(t, nethttp.StatusCreated, w.Code)

	w = doJSON(t, engine, "POST", fmt.Sprintf("/api/v1/block/%d", u2), token1, nil)
	assert.Equal(t, nethttp.StatusConflict, w.Code)

	// Blocker no longer sees the blocked profile.
	w = doJSON(t, engine, "GET", "/api/v1/profiles", token1, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	var profiles []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profiles))
	assert.Empty(t, profiles)

	// The blocked user still sees the blocker.
	w = doJSON(t, engine, "GET", "/api/v1/profiles", token2, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profiles))
	assert.Len(t, profiles, 1)
}

func TestReportEndpoint(t *testing.T) {
	engine := setupTestServer(t)
	token1, _ := registerUser(t, engine, "u1@example.com", "male", "any")
	_, u2 := registerUser(t, engine, "u2@example.com", "female", "any")

	w := doJSON(t, engine, "POST", fmt.Sprintf("/api/v1/report/%d", u2), token1, gin.H{
		"reason":      "spam",
		"description": "keeps sending links",
	})
	require.Equal(t, nethttp.StatusCreated, w.Code, w.Body.String())
	resp := decode(t, w)
	assert.Equal(t, "spam", resp["reason"])
	assert.Equal(t, false, resp["is_resolved"])

	// Unknown reason is rejected by request binding.
	w = doJSON(t, engine, "POST", fmt.Sprintf("/api/v1/report/%d", u2), token1, gin.H{
		"reason": "rudeness",
	})
	assert.Equal(t, nethttp.StatusBadRequest, w.Code)
}

func TestLogoutRevokesAccess(t *testing.T) {
	engine := setupTestServer(t)
	token1, _ := registerUser(t, engine, "u1@example.com", "male", "any")

	w := doJSON(t, engine, "POST", "/api/v1/auth/logout", token1, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)

	w = doJSON(t, engine, "GET", "/api/v1/profile/me", token1, nil)
	assert.Equal(t, nethttp.StatusUnauthorized, w.Code)
}

func TestDeleteAccountSweepsProfile(t *testing.T) {
	engine := setupTestServer(t)
	token1, u1 := registerUser(t, engine, "u1@example.com", "male", "any")
	token2, _ := registerUser(t, engine, "u2@example.com", "female", "any")

	w := doJSON(t, engine, "DELETE", "/api/v1/auth/me", token1, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)

	// The deleted user's profile is gone from the other user's feed.
	w = doJSON(t, engine, "GET", "/api/v1/profiles", token2, nil)
	require.Equal(t, nethttp.StatusOK, w.Code)
	var profiles []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profiles))
	for _, p := range profiles {
		assert.NotEqual(t, float64(u1), p["user_id"])
	}
}
