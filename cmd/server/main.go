package main

import (
    "context"
    "log"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/joho/godotenv"
    "github.com/prometheus/client_golang/prometheus/promhttp"

    "tutorhub/signal/internal/api"
    "tutorhub/signal/internal/config"
    "tutorhub/signal/internal/registry"
    "tutorhub/signal/internal/rooms"
    "tutorhub/signal/internal/ws"
)

func main() {
    // Load .env file if present (ignored if missing)
    _ = godotenv.Load()

    cfg := config.Load()

    classes := registry.NewStore()
    connReg := ws.NewRegistry(time.Duration(cfg.WS.WriteTimeoutSecs) * time.Second)
    coord := rooms.NewCoordinator(classes, connReg, cfg.Room.DefaultTitle, cfg.Room.DefaultSubject)

    h := api.NewHandlers(cfg, classes, coord)
    mux := http.NewServeMux()
    mux.Handle("/", api.NewRouter(h))
    mux.Handle("/metrics", promhttp.Handler())

    wsh := ws.NewHandler(cfg, connReg, coord)
    mux.HandleFunc("/ws", wsh.HandleClientWS)

    addr := ":" + cfg.Server.Port
    srv := &http.Server{
        Addr:              addr,
        Handler:           logMiddleware(mux),
        ReadHeaderTimeout: 5 * time.Second,
    }

    // Graceful shutdown on SIGINT/SIGTERM
    sigc := make(chan os.Signal, 1)
    signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
    go func() {
        <-sigc
        log.Printf("shutdown signal received; stopping server...")
        ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        _ = srv.Shutdown(ctx)
    }()

    log.Printf("signaling server starting on %s", addr)
    if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
        log.Println("server error:", err)
        os.Exit(1)
    }
}

func logMiddleware(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        start := time.Now()
        next.ServeHTTP(w, r)
        log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
    })
}
