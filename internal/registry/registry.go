package registry

import (
    "crypto/rand"
    "encoding/hex"
    "fmt"
    "sync"
    "time"
)

// ClassInfo is the administrative record for one scheduled class. It is
// written once by the scheduling endpoint and only read afterwards.
type ClassInfo struct {
    ID          string    `json:"classId"`
    Title       string    `json:"title"`
    Subject     string    `json:"subject"`
    Instructor  string    `json:"instructor"`
    Students    []string  `json:"students"`
    Tutors      []string  `json:"tutors"`
    StartTime   string    `json:"startTime"`
    Duration    int       `json:"duration"`
    Description string    `json:"description"`
    Status      string    `json:"status"`
    CreatedAt   time.Time `json:"createdAt"`
}

// ClassSpec carries the fields accepted by Schedule. Missing participant
// lists default to empty rather than being rejected.
type ClassSpec struct {
    Title       string   `json:"title"`
    Subject     string   `json:"subject"`
    Instructor  string   `json:"instructor"`
    Students    []string `json:"students"`
    Tutors      []string `json:"tutors"`
    StartTime   string   `json:"startTime"`
    Duration    int      `json:"duration"`
    Description string   `json:"description"`
}

// Store holds scheduled classes for the process lifetime.
type Store struct {
    mu      sync.RWMutex
    classes map[string]*ClassInfo
    order   []string
}

func NewStore() *Store {
    return &Store{classes: make(map[string]*ClassInfo)}
}

// Schedule stores a new class record and returns it with a generated ID.
func (s *Store) Schedule(spec ClassSpec) *ClassInfo {
    info := &ClassInfo{
        ID:          newClassID(),
        Title:       spec.Title,
        Subject:     spec.Subject,
        Instructor:  spec.Instructor,
        Students:    spec.Students,
        Tutors:      spec.Tutors,
        StartTime:   spec.StartTime,
        Duration:    spec.Duration,
        Description: spec.Description,
        Status:      "scheduled",
        CreatedAt:   time.Now().UTC(),
    }
    if info.Students == nil {
        info.Students = []string{}
    }
    if info.Tutors == nil {
        info.Tutors = []string{}
    }

    s.mu.Lock()
    s.classes[info.ID] = info
    s.order = append(s.order, info.ID)
    s.mu.Unlock()
    return info
}

func (s *Store) Get(id string) (*ClassInfo, bool) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    info, ok := s.classes[id]
    return info, ok
}

// List returns all records in insertion order.
func (s *Store) List() []*ClassInfo {
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make([]*ClassInfo, 0, len(s.order))
    for _, id := range s.order {
        out = append(out, s.classes[id])
    }
    return out
}

// newClassID combines wall-clock millis with a random suffix so IDs are
// unique across the process lifetime and sort roughly by creation time.
func newClassID() string {
    var b [4]byte
    _, _ = rand.Read(b[:])
    return fmt.Sprintf("class_%d_%s", time.Now().UnixMilli(), hex.EncodeToString(b[:]))
}
