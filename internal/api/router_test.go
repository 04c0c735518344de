package api

import (
    "bytes"
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "testing"

    "tutorhub/signal/internal/config"
    "tutorhub/signal/internal/registry"
    "tutorhub/signal/internal/rooms"
)

type nullSender struct{}

func (nullSender) Send(connID string, v any) {}

func newTestServer(t *testing.T) (*httptest.Server, *registry.Store, *rooms.Coordinator) {
    t.Helper()
    var cfg config.Config
    cfg.Room.DefaultTitle = "Live Class"
    cfg.Room.DefaultSubject = "General"
    classes := registry.NewStore()
    coord := rooms.NewCoordinator(classes, nullSender{}, cfg.Room.DefaultTitle, cfg.Room.DefaultSubject)
    srv := httptest.NewServer(NewRouter(NewHandlers(cfg, classes, coord)))
    t.Cleanup(srv.Close)
    return srv, classes, coord
}

func TestScheduleAndGetClass(t *testing.T) {
    srv, _, _ := newTestServer(t)

    body := bytes.NewBufferString(`{"title":"Algebra II","subject":"Math","instructor":"tutor-7"}`)
    resp, err := http.Post(srv.URL+"/api/classes/schedule", "application/json", body)
    if err != nil {
        t.Fatalf("request: %v", err)
    }
    defer resp.Body.Close()
    if resp.StatusCode != http.StatusOK {
        t.Fatalf("expected 200, got %d", resp.StatusCode)
    }
    var sched struct {
        Success   bool               `json:"success"`
        ClassID   string             `json:"classId"`
        ClassInfo registry.ClassInfo `json:"classInfo"`
    }
    if err := json.NewDecoder(resp.Body).Decode(&sched); err != nil {
        t.Fatalf("decode: %v", err)
    }
    if !sched.Success || sched.ClassID == "" || sched.ClassInfo.Title != "Algebra II" {
        t.Fatalf("unexpected schedule response: %#v", sched)
    }

    resp, err = http.Get(srv.URL + "/api/classes/" + sched.ClassID)
    if err != nil {
        t.Fatalf("request: %v", err)
    }
    defer resp.Body.Close()
    var got struct {
        Title        string           `json:"title"`
        IsActive     bool             `json:"isActive"`
        Participants []map[string]any `json:"participants"`
    }
    if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
        t.Fatalf("decode: %v", err)
    }
    if got.Title != "Algebra II" || got.IsActive || len(got.Participants) != 0 {
        t.Fatalf("expected inactive scheduled class, got %#v", got)
    }
}

func TestGetClassMergesLiveRoom(t *testing.T) {
    srv, classes, coord := newTestServer(t)

    info := classes.Schedule(registry.ClassSpec{Title: "Chemistry"})
    coord.Join(info.ID, "conn-1", "Alice", nil)

    resp, err := http.Get(srv.URL + "/api/classes/" + info.ID)
    if err != nil {
        t.Fatalf("request: %v", err)
    }
    defer resp.Body.Close()
    var got struct {
        IsActive     bool             `json:"isActive"`
        Participants []map[string]any `json:"participants"`
    }
    if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
        t.Fatalf("decode: %v", err)
    }
    if !got.IsActive || len(got.Participants) != 1 || got.Participants[0]["name"] != "Alice" {
        t.Fatalf("expected live member list, got %#v", got)
    }

    coord.Disconnect("conn-1")

    resp, err = http.Get(srv.URL + "/api/classes/" + info.ID)
    if err != nil {
        t.Fatalf("request: %v", err)
    }
    defer resp.Body.Close()
    if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
        t.Fatalf("decode: %v", err)
    }
    if got.IsActive || len(got.Participants) != 0 {
        t.Fatalf("expected inactive class after disconnect, got %#v", got)
    }
}

func TestGetUnscheduledActiveRoom(t *testing.T) {
    srv, _, coord := newTestServer(t)
    coord.Join("class_adhoc", "conn-1", "Alice", nil)

    resp, err := http.Get(srv.URL + "/api/classes/class_adhoc")
    if err != nil {
        t.Fatalf("request: %v", err)
    }
    defer resp.Body.Close()
    if resp.StatusCode != http.StatusOK {
        t.Fatalf("expected 200 for live unscheduled room, got %d", resp.StatusCode)
    }
    var got struct {
        Title    string `json:"title"`
        IsActive bool   `json:"isActive"`
    }
    if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
        t.Fatalf("decode: %v", err)
    }
    if !got.IsActive || got.Title != "Live Class" {
        t.Fatalf("expected placeholder metadata, got %#v", got)
    }
}

func TestGetUnknownClass404(t *testing.T) {
    srv, _, _ := newTestServer(t)

    resp, err := http.Get(srv.URL + "/api/classes/class_missing")
    if err != nil {
        t.Fatalf("request: %v", err)
    }
    defer resp.Body.Close()
    if resp.StatusCode != http.StatusNotFound {
        t.Fatalf("expected 404, got %d", resp.StatusCode)
    }
    var body map[string]any
    if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
        t.Fatalf("decode: %v", err)
    }
    if _, ok := body["error"]; !ok {
        t.Fatalf("expected error body, got %#v", body)
    }
}

func TestListClasses(t *testing.T) {
    srv, classes, _ := newTestServer(t)
    classes.Schedule(registry.ClassSpec{Title: "A"})
    classes.Schedule(registry.ClassSpec{Title: "B"})

    resp, err := http.Get(srv.URL + "/api/classes")
    if err != nil {
        t.Fatalf("request: %v", err)
    }
    defer resp.Body.Close()
    var list []registry.ClassInfo
    if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
        t.Fatalf("decode: %v", err)
    }
    if len(list) != 2 || list[0].Title != "A" || list[1].Title != "B" {
        t.Fatalf("expected both classes in order, got %#v", list)
    }
}

func TestScheduleEmptyBodyDefaults(t *testing.T) {
    srv, _, _ := newTestServer(t)

    resp, err := http.Post(srv.URL+"/api/classes/schedule", "application/json", bytes.NewBufferString(`{}`))
    if err != nil {
        t.Fatalf("request: %v", err)
    }
    defer resp.Body.Close()
    if resp.StatusCode != http.StatusOK {
        t.Fatalf("permissive scheduling must accept an empty body, got %d", resp.StatusCode)
    }
    var sched struct {
        ClassInfo registry.ClassInfo `json:"classInfo"`
    }
    if err := json.NewDecoder(resp.Body).Decode(&sched); err != nil {
        t.Fatalf("decode: %v", err)
    }
    if sched.ClassInfo.Students == nil || sched.ClassInfo.Tutors == nil {
        t.Fatalf("participant lists must default to empty, got %#v", sched.ClassInfo)
    }
}
