package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"main/dto"
	"main/model"
	"main/repository"
	"main/store"
	"main/usecase"

	"github.com/gin-gonic/gin"
)

func setupSessionsRouter(t *testing.T, logged int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	repo, err := repository.NewSessionsRepo(ctx, store.NewMemoryStore())
	if err != nil {
		t.Fatal("failed to create sessions repo:", err)
	}
	service := usecase.NewSessionsService(repo)
	for i := 0; i < logged; i++ {
		err := service.Append(ctx, model.StudySession{
			SessionID:       fmt.Sprintf("s%02d", i),
			Subject:         "Math",
			DurationSeconds: 60,
			Date:            "2024-01-01",
		})
		if err != nil {
			t.Fatal("append failed:", err)
		}
	}

	router := gin.New()
	router.GET("/api/sessions/recent", NewSessionsHandler(service).GetRecentSessions)
	return router
}

func decodeSessions(t *testing.T, w *httptest.ResponseRecorder) []dto.SessionResponse {
	t.Helper()
	var resp struct {
		Data []dto.SessionResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal("response did not decode:", err)
	}
	return resp.Data
}

func TestSessionsHandlerRecent(t *testing.T) {
	t.Run("DefaultWindow", func(t *testing.T) {
		router := setupSessionsRouter(t, 25)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sessions/recent", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		got := decodeSessions(t, w)
		if len(got) != usecase.DefaultRecentSessions {
			t.Fatalf("returned %d sessions, want %d", len(got), usecase.DefaultRecentSessions)
		}
		// Oldest of the window first, newest last.
		if got[0].ID != "s05" || got[len(got)-1].ID != "s24" {
			t.Errorf("window = %s..%s, want s05..s24", got[0].ID, got[len(got)-1].ID)
		}
	})

	t.Run("ExplicitLimit", func(t *testing.T) {
		router := setupSessionsRouter(t, 5)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sessions/recent?limit=2", nil))

		got := decodeSessions(t, w)
		if len(got) != 2 || got[1].ID != "s04" {
			t.Errorf("got %+v, want the final two sessions", got)
		}
	})

	t.Run("RejectsBadLimit", func(t *testing.T) {
		router := setupSessionsRouter(t, 1)
		for _, raw := range []string{"0", "-3", "abc"} {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sessions/recent?limit="+raw, nil))
			if w.Code != http.StatusBadRequest {
				t.Errorf("limit=%s: status = %d, want 400", raw, w.Code)
			}
		}
	})
}
