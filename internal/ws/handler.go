package ws

import (
    "encoding/json"
    "log"
    "net/http"

    "github.com/google/uuid"
    "nhooyr.io/websocket"

    "tutorhub/signal/internal/config"
    "tutorhub/signal/internal/rooms"
)

type Handler struct {
    cfg   config.Config
    reg   *Registry
    coord *rooms.Coordinator
}

func NewHandler(cfg config.Config, reg *Registry, coord *rooms.Coordinator) *Handler {
    return &Handler{cfg: cfg, reg: reg, coord: coord}
}

// HandleClientWS upgrades the connection, assigns it an opaque connection
// ID, and runs the read loop until the transport closes. Connection loss,
// clean or not, ends in the same cleanup path: unregister the connection
// and pull it out of every room it joined.
func (h *Handler) HandleClientWS(w http.ResponseWriter, r *http.Request) {
    opts := &websocket.AcceptOptions{OriginPatterns: h.cfg.WS.OriginPatterns}
    if len(h.cfg.WS.OriginPatterns) == 0 {
        opts.InsecureSkipVerify = true
    }
    c, err := websocket.Accept(w, r, opts)
    if err != nil {
        log.Printf("ws accept: %v", err)
        return
    }

    connID := uuid.New().String()
    h.reg.Add(connID, c)
    log.Printf("client connected: %s", connID)

    ctx := r.Context()
    for {
        typ, data, err := c.Read(ctx)
        if err != nil {
            break
        }
        if typ != websocket.MessageText && typ != websocket.MessageBinary {
            continue
        }
        h.dispatch(connID, data)
    }
    _ = c.Close(websocket.StatusNormalClosure, "done")
    h.reg.Remove(connID)
    h.coord.Disconnect(connID)
    log.Printf("client disconnected: %s", connID)
}

// dispatch decodes one inbound message and routes it to the coordinator.
// Malformed messages and unknown kinds are dropped; the real-time layer
// never pushes errors back to the client.
func (h *Handler) dispatch(connID string, data []byte) {
    var env envelope
    if err := json.Unmarshal(data, &env); err != nil {
        log.Printf("invalid message from %s: %v", connID, err)
        return
    }

    switch env.Type {
    case KindJoinRoom:
        var m joinRoomMsg
        if err := json.Unmarshal(data, &m); err != nil {
            return
        }
        name, extra := splitInfo(m.ParticipantInfo)
        h.coord.Join(m.RoomID, connID, name, extra)

    case KindOffer, KindAnswer, KindICECandidate:
        var m signalMsg
        if err := json.Unmarshal(data, &m); err != nil {
            return
        }
        h.coord.Relay(env.Type, connID, m.To, m.Payload)

    case KindToggleAudio:
        var m toggleAudioMsg
        if err := json.Unmarshal(data, &m); err != nil {
            return
        }
        h.coord.ToggleAudio(m.RoomID, connID, m.IsMuted)

    case KindToggleVideo:
        var m toggleVideoMsg
        if err := json.Unmarshal(data, &m); err != nil {
            return
        }
        h.coord.ToggleVideo(m.RoomID, connID, m.IsVideoOff)

    case KindStartScreenShare:
        var m screenShareMsg
        if err := json.Unmarshal(data, &m); err != nil {
            return
        }
        h.coord.StartScreenShare(m.RoomID, connID)

    case KindStopScreenShare:
        var m screenShareMsg
        if err := json.Unmarshal(data, &m); err != nil {
            return
        }
        h.coord.StopScreenShare(m.RoomID, connID)

    case KindChatMessage:
        var m chatMsg
        if err := json.Unmarshal(data, &m); err != nil {
            return
        }
        h.coord.Chat(m.RoomID, connID, m.Message)

    case KindLeaveRoom:
        var m leaveRoomMsg
        if err := json.Unmarshal(data, &m); err != nil {
            return
        }
        h.coord.Leave(m.RoomID, connID)

    default:
        log.Printf("unknown message type %q from %s", env.Type, connID)
    }
}

// splitInfo pulls the display name out of the join info and keeps the
// remaining fields for echoing back on the wire.
func splitInfo(info map[string]any) (string, map[string]any) {
    if info == nil {
        return "", nil
    }
    name, _ := info["name"].(string)
    extra := make(map[string]any, len(info))
    for k, v := range info {
        if k == "name" {
            continue
        }
        extra[k] = v
    }
    if len(extra) == 0 {
        return name, nil
    }
    return name, extra
}
