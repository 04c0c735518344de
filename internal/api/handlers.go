package api

import (
    "encoding/json"
    "log"
    "net/http"

    "tutorhub/signal/internal/config"
    "tutorhub/signal/internal/registry"
    "tutorhub/signal/internal/rooms"
)

type Handlers struct {
    cfg     config.Config
    classes *registry.Store
    coord   *rooms.Coordinator
}

func NewHandlers(cfg config.Config, classes *registry.Store, coord *rooms.Coordinator) *Handlers {
    return &Handlers{cfg: cfg, classes: classes, coord: coord}
}

// classResponse is a scheduled class record merged with the live room
// state the coordinator knows about.
type classResponse struct {
    *registry.ClassInfo
    Participants []map[string]any `json:"participants"`
    IsActive     bool             `json:"isActive"`
}

// HandleScheduleClass stores a new class record. The body is taken as-is;
// missing fields default rather than reject, validation belongs to the
// surrounding application.
func (h *Handlers) HandleScheduleClass(w http.ResponseWriter, r *http.Request) {
    var spec registry.ClassSpec
    _ = json.NewDecoder(r.Body).Decode(&spec)

    info := h.classes.Schedule(spec)
    log.Printf("class scheduled: %s %q", info.ID, info.Title)

    w.Header().Set("Content-Type", "application/json")
    _ = json.NewEncoder(w).Encode(map[string]any{
        "success":   true,
        "classId":   info.ID,
        "classInfo": info,
    })
}

// HandleGetClass returns class metadata merged with live participants.
// A class unknown to the registry is still reported if a room for it is
// live (rooms can be joined without being scheduled); otherwise 404.
func (h *Handlers) HandleGetClass(w http.ResponseWriter, r *http.Request, id string) {
    info, scheduled := h.classes.Get(id)
    participants, active := h.coord.Snapshot(id)

    if !scheduled && !active {
        w.Header().Set("Content-Type", "application/json")
        w.WriteHeader(http.StatusNotFound)
        _ = json.NewEncoder(w).Encode(map[string]any{"error": "Class not found"})
        return
    }
    if info == nil {
        info = &registry.ClassInfo{
            ID:      id,
            Title:   h.cfg.Room.DefaultTitle,
            Subject: h.cfg.Room.DefaultSubject,
        }
    }

    w.Header().Set("Content-Type", "application/json")
    _ = json.NewEncoder(w).Encode(classResponse{
        ClassInfo:    info,
        Participants: participants,
        IsActive:     active,
    })
}

func (h *Handlers) HandleListClasses(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "application/json")
    _ = json.NewEncoder(w).Encode(h.classes.List())
}
