package api

import (
    "net/http"
    "strings"
)

func NewRouter(h *Handlers) http.Handler {
    mux := http.NewServeMux()

    mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusOK)
        w.Write([]byte("ok"))
    })

    mux.HandleFunc("/api/classes/schedule", func(w http.ResponseWriter, r *http.Request) {
        if r.Method != http.MethodPost {
            http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
            return
        }
        h.HandleScheduleClass(w, r)
    })

    mux.HandleFunc("/api/classes", func(w http.ResponseWriter, r *http.Request) {
        if r.Method != http.MethodGet {
            http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
            return
        }
        h.HandleListClasses(w, r)
    })

    mux.HandleFunc("/api/classes/", func(w http.ResponseWriter, r *http.Request) {
        // /api/classes/{classId}
        path := strings.TrimSuffix(r.URL.Path, "/")
        const prefix = "/api/classes/"
        id := strings.TrimPrefix(path, prefix)
        if id == "" || strings.Contains(id, "/") {
            http.NotFound(w, r)
            return
        }
        if r.Method != http.MethodGet {
            http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
            return
        }
        h.HandleGetClass(w, r, id)
    })

    return mux
}
