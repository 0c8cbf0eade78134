package syncer

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/donikhodjaev/misbaha/internal/engine"
	"github.com/donikhodjaev/misbaha/internal/storage"
)

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "misbaha.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("store init failed: %v", err)
	}

	eng := engine.New(store)
	eng.Hydrate()
	return eng
}

func TestBuild_ProjectsEngineState(t *testing.T) {
	eng := newTestEngine(t)
	eng.SetDailyGoal(200)
	for i := 0; i < 35; i++ {
		eng.Increment()
	}

	now := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
	payload := Build(eng, now)

	if payload.TodayCount != 35 {
		t.Errorf("expected todayCount 35, got %d", payload.TodayCount)
	}
	if payload.TotalAllTime != 35 {
		t.Errorf("expected totalAllTime 35, got %d", payload.TotalAllTime)
	}
	if payload.DailyGoal != 200 {
		t.Errorf("expected dailyGoal 200, got %d", payload.DailyGoal)
	}
	if payload.StreakDays != 1 {
		t.Errorf("expected streak 1, got %d", payload.StreakDays)
	}
	if payload.LastSync != "2026-08-31T15:04:05Z" {
		t.Errorf("expected RFC3339 timestamp, got %q", payload.LastSync)
	}
	if payload.Counts["subhanallah"] != 35 {
		t.Errorf("expected counts projected, got %v", payload.Counts)
	}
	if len(payload.Achievements) == 0 {
		t.Error("expected first_steps in achievements")
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	source := newTestEngine(t)
	source.SetDailyGoal(250)
	for i := 0; i < 42; i++ {
		source.Increment()
	}
	source.SelectType("astaghfirullah")
	for i := 0; i < 8; i++ {
		source.Increment()
	}

	var buf bytes.Buffer
	if err := Export(&buf, Build(source, time.Now())); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	fresh := newTestEngine(t)
	if err := Import(&buf, fresh); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if fresh.Settings().DailyGoal != 250 {
		t.Errorf("expected imported goal 250, got %d", fresh.Settings().DailyGoal)
	}
	if fresh.TodayTotal() != 50 {
		t.Errorf("expected imported today total 50, got %d", fresh.TodayTotal())
	}
	if !reflect.DeepEqual(fresh.LifetimeCounts(), source.LifetimeCounts()) {
		t.Errorf("counts mismatch: %v vs %v", fresh.LifetimeCounts(), source.LifetimeCounts())
	}
	if !reflect.DeepEqual(fresh.TodayCounts(), source.TodayCounts()) {
		t.Errorf("today counts mismatch: %v vs %v", fresh.TodayCounts(), source.TodayCounts())
	}
	if !reflect.DeepEqual(fresh.Unlocked(), source.Unlocked()) {
		t.Errorf("achievements mismatch: %v vs %v", fresh.Unlocked(), source.Unlocked())
	}

	sourceHistory := source.History().Entries()
	freshHistory := fresh.History().Entries()
	if !reflect.DeepEqual(freshHistory, sourceHistory) {
		t.Errorf("history mismatch: %v vs %v", freshHistory, sourceHistory)
	}
}

func TestImport_RejectsMalformedJSON(t *testing.T) {
	eng := newTestEngine(t)
	for i := 0; i < 5; i++ {
		eng.Increment()
	}

	err := Import(strings.NewReader("{not json"), eng)
	if err == nil {
		t.Fatal("expected format error")
	}
	if !IsFormat(err) {
		t.Errorf("expected a FormatError, got %v", err)
	}
	if eng.TodayTotal() != 5 {
		t.Errorf("expected state untouched by failed import, got %d", eng.TodayTotal())
	}
}

func TestImport_RejectsBadHistoryWithoutMutation(t *testing.T) {
	eng := newTestEngine(t)
	for i := 0; i < 5; i++ {
		eng.Increment()
	}

	bad := `{"dailyGoal": 999, "history": [{"total": 3}]}`
	err := Import(strings.NewReader(bad), eng)
	if err == nil {
		t.Fatal("expected format error for dateless history entry")
	}
	if !IsFormat(err) {
		t.Errorf("expected a FormatError, got %v", err)
	}
	if eng.Settings().DailyGoal == 999 {
		t.Error("expected no partial mutation from a rejected import")
	}
}

func TestImport_AbsentFieldsLeaveStateUntouched(t *testing.T) {
	eng := newTestEngine(t)
	eng.SetDailyGoal(500)
	for i := 0; i < 9; i++ {
		eng.Increment()
	}

	if err := Import(strings.NewReader(`{"dailyGoal": 150}`), eng); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if eng.Settings().DailyGoal != 150 {
		t.Errorf("expected imported goal 150, got %d", eng.Settings().DailyGoal)
	}
	if eng.TodayTotal() != 9 {
		t.Errorf("expected today total untouched, got %d", eng.TodayTotal())
	}
}

func TestRelay_SendPostsPayload(t *testing.T) {
	var gotPath string
	var gotText string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		values, _ := url.ParseQuery(string(body))
		gotText = values.Get("text")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	relay := NewRelay(RelayConfig{BotToken: "token", ChatID: "42", APIBase: server.URL})

	eng := newTestEngine(t)
	eng.Increment()

	if err := relay.Send(context.Background(), Build(eng, time.Now())); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if gotPath != "/bottoken/sendMessage" {
		t.Errorf("unexpected request path %q", gotPath)
	}
	if !strings.Contains(gotText, `"todayCount":1`) {
		t.Errorf("expected payload JSON in text field, got %q", gotText)
	}
}

func TestRelay_ThrottlesRapidSends(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	relay := NewRelay(RelayConfig{BotToken: "token", ChatID: "42", APIBase: server.URL})
	eng := newTestEngine(t)
	payload := Build(eng, time.Now())

	for i := 0; i < 3; i++ {
		if err := relay.Send(context.Background(), payload); err != nil {
			t.Fatalf("Send failed: %v", err)
		}
	}

	if calls != 1 {
		t.Errorf("expected rapid sends throttled to 1 request, got %d", calls)
	}
}
