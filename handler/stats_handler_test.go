package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"main/model"
	"main/repository"
	"main/store"
	"main/usecase"

	"github.com/gin-gonic/gin"
)

func TestStatsHandlerReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	kv := store.NewMemoryStore()
	repo, err := repository.NewSessionsRepo(ctx, kv)
	if err != nil {
		t.Fatal("failed to create sessions repo:", err)
	}
	sessions := usecase.NewSessionsService(repo)

	for _, s := range []model.StudySession{
		{SessionID: "a", Subject: "Math", DurationSeconds: 1500, Date: "2024-01-01"},
		{SessionID: "b", Subject: "Math", DurationSeconds: 900, Date: "2024-01-02"},
	} {
		if err := sessions.Append(ctx, s); err != nil {
			t.Fatal("append failed:", err)
		}
	}

	clk := &fakeClock{now: time.Date(2024, 1, 2, 12, 0, 0, 0, time.Local)}
	router := gin.New()
	router.GET("/api/stats", NewStatsHandler(usecase.NewStatsService(sessions, clk)).GetStats)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Data model.StatsReport `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal("response did not decode:", err)
	}

	if resp.Data.Overall.TotalHours != "0.7" {
		t.Errorf("total hours = %q, want 0.7", resp.Data.Overall.TotalHours)
	}
	if resp.Data.Overall.Count != 2 {
		t.Errorf("count = %d, want 2", resp.Data.Overall.Count)
	}
	if resp.Data.Overall.AvgMinutes != 20 {
		t.Errorf("avg minutes = %d, want 20", resp.Data.Overall.AvgMinutes)
	}
	if len(resp.Data.Daily) != 7 {
		t.Fatalf("daily points = %d, want 7", len(resp.Data.Daily))
	}
	if last := resp.Data.Daily[6]; last.FullDate != "2024-01-02" || last.Minutes != 15 {
		t.Errorf("last daily point = %+v", last)
	}
	if len(resp.Data.Subjects) != 1 || resp.Data.Subjects[0].Minutes != 40 {
		t.Errorf("subject totals = %+v", resp.Data.Subjects)
	}
}
