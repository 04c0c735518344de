package rooms

import (
    "encoding/json"
    "log"
    "sync"
    "time"

    "tutorhub/signal/internal/registry"
)

// Sender delivers one event to one connection. Delivery is best-effort:
// a send to a connection that no longer exists is silently dropped.
type Sender interface {
    Send(connID string, v any)
}

// ClassSource provides scheduling metadata for a room ID. Satisfied by
// *registry.Store.
type ClassSource interface {
    Get(id string) (*registry.ClassInfo, bool)
}

// Coordinator owns the live Room/Participant graph. All state mutation
// happens under its mutex; network sends are issued after the critical
// section so a slow consumer cannot stall the maps.
type Coordinator struct {
    classes ClassSource
    send    Sender

    defaultTitle   string
    defaultSubject string

    mu          sync.Mutex
    rooms       map[string]*Room
    roomsByConn map[string]map[string]bool
}

func NewCoordinator(classes ClassSource, send Sender, defaultTitle, defaultSubject string) *Coordinator {
    return &Coordinator{
        classes:        classes,
        send:           send,
        defaultTitle:   defaultTitle,
        defaultSubject: defaultSubject,
        rooms:          make(map[string]*Room),
        roomsByConn:    make(map[string]map[string]bool),
    }
}

// envelope pairs an event with its recipient so handlers can collect
// notifications under the lock and deliver them after releasing it.
type envelope struct {
    to string
    v  any
}

func (c *Coordinator) deliver(evs []envelope) {
    for _, e := range evs {
        c.send.Send(e.to, e.v)
    }
}

// Join registers connID in roomID, creating the room lazily. The joiner
// receives the member list as it stood before the join; everyone else is
// told about the newcomer; the whole room gets a fresh room-info.
func (c *Coordinator) Join(roomID, connID, name string, extra map[string]any) {
    c.mu.Lock()
    room, ok := c.rooms[roomID]
    if !ok {
        title, subject := c.defaultTitle, c.defaultSubject
        if info, found := c.classes.Get(roomID); found {
            title, subject = info.Title, info.Subject
        }
        room = newRoom(roomID, title, subject)
        c.rooms[roomID] = room
        metricActiveRooms.Inc()
        log.Printf("room created: %s (%s)", roomID, title)
    }

    existing := room.wireList(connID)

    p := &Participant{
        ConnID:   connID,
        Name:     name,
        JoinedAt: time.Now().UTC(),
        Extra:    extra,
    }
    fresh := room.add(p)
    if c.roomsByConn[connID] == nil {
        c.roomsByConn[connID] = make(map[string]bool)
    }
    c.roomsByConn[connID][roomID] = true

    evs := make([]envelope, 0, 2*room.size())
    evs = append(evs, envelope{connID, ExistingParticipantsEvent{
        Type:         "existing-participants",
        Participants: existing,
    }})
    if fresh {
        joined := UserJoinedEvent{Type: "user-joined", Participant: room.get(connID).wire()}
        for _, id := range room.memberIDs(connID) {
            evs = append(evs, envelope{id, joined})
        }
    }
    evs = append(evs, c.roomInfoLocked(room)...)
    c.mu.Unlock()

    if fresh {
        metricJoins.Inc()
        metricActiveParticipants.Inc()
    }
    log.Printf("join: room=%s conn=%s name=%q", roomID, connID, name)
    c.deliver(evs)
}

// roomInfoLocked builds a room-info broadcast for every current member.
func (c *Coordinator) roomInfoLocked(room *Room) []envelope {
    info := RoomInfoEvent{
        Type:             "room-info",
        ParticipantCount: room.size(),
        Participants:     room.wireList(""),
    }
    evs := make([]envelope, 0, room.size())
    for _, id := range room.memberIDs("") {
        evs = append(evs, envelope{id, info})
    }
    return evs
}

// Relay forwards a signaling payload to exactly one target connection.
// Membership is not checked; a vanished target means a silent drop.
func (c *Coordinator) Relay(kind, from, to string, payload json.RawMessage) {
    metricSignalsRelayed.WithLabelValues(kind).Inc()
    c.send.Send(to, SignalEvent{Type: kind, From: from, Payload: payload})
}

// ToggleAudio updates the sender's muted flag and tells everyone else.
// Unknown room or non-member: no-op.
func (c *Coordinator) ToggleAudio(roomID, connID string, isMuted bool) {
    c.mu.Lock()
    room, ok := c.rooms[roomID]
    if !ok || room.get(connID) == nil {
        c.mu.Unlock()
        return
    }
    room.get(connID).IsMuted = isMuted
    ev := AudioChangedEvent{Type: "participant-audio-changed", ConnectionID: connID, IsMuted: isMuted}
    evs := make([]envelope, 0, room.size())
    for _, id := range room.memberIDs(connID) {
        evs = append(evs, envelope{id, ev})
    }
    c.mu.Unlock()

    metricMediaToggles.WithLabelValues("audio").Inc()
    c.deliver(evs)
}

// ToggleVideo updates the sender's video-off flag and tells everyone else.
func (c *Coordinator) ToggleVideo(roomID, connID string, isVideoOff bool) {
    c.mu.Lock()
    room, ok := c.rooms[roomID]
    if !ok || room.get(connID) == nil {
        c.mu.Unlock()
        return
    }
    room.get(connID).IsVideoOff = isVideoOff
    ev := VideoChangedEvent{Type: "participant-video-changed", ConnectionID: connID, IsVideoOff: isVideoOff}
    evs := make([]envelope, 0, room.size())
    for _, id := range room.memberIDs(connID) {
        evs = append(evs, envelope{id, ev})
    }
    c.mu.Unlock()

    metricMediaToggles.WithLabelValues("video").Inc()
    c.deliver(evs)
}

// StartScreenShare marks connID as the room's active sharer. Last writer
// wins; a concurrent start from another participant simply overwrites.
// The whole room, actor included, hears about it.
func (c *Coordinator) StartScreenShare(roomID, connID string) {
    c.broadcastShare(roomID, connID, connID, "screen-share-started")
}

// StopScreenShare clears the room's active sharer unconditionally.
func (c *Coordinator) StopScreenShare(roomID, connID string) {
    c.broadcastShare(roomID, "", connID, "screen-share-stopped")
}

func (c *Coordinator) broadcastShare(roomID, sharer, actor, typ string) {
    c.mu.Lock()
    room, ok := c.rooms[roomID]
    if !ok {
        c.mu.Unlock()
        return
    }
    room.ScreenSharer = sharer
    ev := ScreenShareEvent{Type: typ, ConnectionID: actor}
    evs := make([]envelope, 0, room.size())
    for _, id := range room.memberIDs("") {
        evs = append(evs, envelope{id, ev})
    }
    c.mu.Unlock()
    c.deliver(evs)
}

// Chat broadcasts a chat line to the whole room, sender included, so the
// sender's UI renders its own message through the same channel.
func (c *Coordinator) Chat(roomID, connID, text string) {
    c.mu.Lock()
    room, ok := c.rooms[roomID]
    if !ok {
        c.mu.Unlock()
        return
    }
    sender := "Unknown"
    if p := room.get(connID); p != nil {
        sender = p.Name
    }
    now := time.Now()
    ev := ChatEvent{
        Type:      "chat-message",
        Sender:    sender,
        Text:      text,
        Time:      now.Format("15:04"),
        Timestamp: now.UnixMilli(),
    }
    evs := make([]envelope, 0, room.size())
    for _, id := range room.memberIDs("") {
        evs = append(evs, envelope{id, ev})
    }
    c.mu.Unlock()

    metricChatMessages.Inc()
    c.deliver(evs)
}

// Leave removes connID from roomID, notifies the rest, and deletes the
// room if it is now empty. Calling it for a pair already removed is a
// no-op.
func (c *Coordinator) Leave(roomID, connID string) {
    c.mu.Lock()
    evs := c.removeLocked(roomID, connID)
    c.mu.Unlock()
    c.deliver(evs)
}

// Disconnect applies Leave semantics to every room the connection had
// joined, using the connection index rather than a scan of all rooms.
func (c *Coordinator) Disconnect(connID string) {
    c.mu.Lock()
    var evs []envelope
    for roomID := range c.roomsByConn[connID] {
        evs = append(evs, c.removeLocked(roomID, connID)...)
    }
    c.mu.Unlock()
    c.deliver(evs)
}

// removeLocked performs the remove / notify / room-info / cleanup sequence
// for one room. "Remove, check emptiness, delete room" stays atomic under
// the coordinator mutex so a racing join cannot resurrect a dead room.
func (c *Coordinator) removeLocked(roomID, connID string) []envelope {
    room, ok := c.rooms[roomID]
    if !ok {
        return nil
    }
    p := room.get(connID)
    if !room.remove(connID) {
        return nil
    }
    if set := c.roomsByConn[connID]; set != nil {
        delete(set, roomID)
        if len(set) == 0 {
            delete(c.roomsByConn, connID)
        }
    }
    metricLeaves.Inc()
    metricActiveParticipants.Dec()

    var evs []envelope

    // A departing sharer must not leave a dangling "X is sharing" state.
    if room.ScreenSharer == connID {
        room.ScreenSharer = ""
        stopped := ScreenShareEvent{Type: "screen-share-stopped", ConnectionID: connID}
        for _, id := range room.memberIDs("") {
            evs = append(evs, envelope{id, stopped})
        }
    }

    if room.size() == 0 {
        delete(c.rooms, roomID)
        metricActiveRooms.Dec()
        log.Printf("room deleted: %s", roomID)
        return evs
    }

    name := ""
    if p != nil {
        name = p.Name
    }
    left := UserLeftEvent{Type: "user-left", ConnectionID: connID, Name: name}
    for _, id := range room.memberIDs("") {
        evs = append(evs, envelope{id, left})
    }
    evs = append(evs, c.roomInfoLocked(room)...)
    log.Printf("leave: room=%s conn=%s remaining=%d", roomID, connID, room.size())
    return evs
}

// Snapshot returns the live member list for a room, or active=false with
// an empty list when the room does not exist.
func (c *Coordinator) Snapshot(roomID string) ([]map[string]any, bool) {
    c.mu.Lock()
    defer c.mu.Unlock()
    room, ok := c.rooms[roomID]
    if !ok {
        return []map[string]any{}, false
    }
    return room.wireList(""), true
}
