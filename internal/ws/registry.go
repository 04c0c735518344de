package ws

import (
    "context"
    "encoding/json"
    "sync"
    "time"

    "nhooyr.io/websocket"
)

// Registry tracks one websocket connection per connection ID and is the
// delivery path for all outbound events. It satisfies rooms.Sender.
type Registry struct {
    mu           sync.Mutex
    conns        map[string]*websocket.Conn
    writeTimeout time.Duration
}

func NewRegistry(writeTimeout time.Duration) *Registry {
    return &Registry{
        conns:        make(map[string]*websocket.Conn),
        writeTimeout: writeTimeout,
    }
}

func (r *Registry) Add(connID string, c *websocket.Conn) {
    r.mu.Lock()
    defer r.mu.Unlock()
    r.conns[connID] = c
}

func (r *Registry) Remove(connID string) {
    r.mu.Lock()
    defer r.mu.Unlock()
    delete(r.conns, connID)
}

func (r *Registry) Count() int {
    r.mu.Lock()
    defer r.mu.Unlock()
    return len(r.conns)
}

// Send writes v as a JSON text message to the named connection. Unknown
// connections and write failures are dropped: signaling is best-effort
// and the read loop handles dead-connection cleanup.
func (r *Registry) Send(connID string, v any) {
    r.mu.Lock()
    c := r.conns[connID]
    r.mu.Unlock()
    if c == nil {
        return
    }
    ctx, cancel := context.WithTimeout(context.Background(), r.writeTimeout)
    defer cancel()
    _ = c.Write(ctx, websocket.MessageText, mustJSON(v))
}

func mustJSON(v any) []byte {
    b, _ := json.Marshal(v)
    return b
}
