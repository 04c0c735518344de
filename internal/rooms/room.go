package rooms

import "time"

// Participant is one connected client's membership record within a Room.
// It is owned by the Room that contains it and mutated in place by
// media-state toggles.
type Participant struct {
    ConnID     string
    Name       string
    JoinedAt   time.Time
    IsMuted    bool
    IsVideoOff bool
    // Extra holds any additional fields the client sent at join time.
    // They are echoed back verbatim on the wire.
    Extra map[string]any
}

// wire returns the participant's wire shape. The connection ID is exposed
// as "id" for client compatibility; extra join fields are merged in but
// never shadow the core fields.
func (p *Participant) wire() map[string]any {
    out := make(map[string]any, 5+len(p.Extra))
    for k, v := range p.Extra {
        out[k] = v
    }
    out["id"] = p.ConnID
    out["name"] = p.Name
    out["joinedAt"] = p.JoinedAt
    out["isMuted"] = p.IsMuted
    out["isVideoOff"] = p.IsVideoOff
    return out
}

// Room is the live state for one class session. It exists only while it
// has at least one participant; the Coordinator deletes it in the same
// step that empties it.
type Room struct {
    ID           string
    Title        string
    Subject      string
    ScreenSharer string
    CreatedAt    time.Time

    participants map[string]*Participant
    order        []string
}

func newRoom(id, title, subject string) *Room {
    return &Room{
        ID:           id,
        Title:        title,
        Subject:      subject,
        CreatedAt:    time.Now().UTC(),
        participants: make(map[string]*Participant),
    }
}

// add registers a participant, or refreshes the stored info when the
// connection is already a member. The join-order slice gains each connID
// at most once so it never disagrees with the participants map.
func (r *Room) add(p *Participant) bool {
    if cur, ok := r.participants[p.ConnID]; ok {
        cur.Name = p.Name
        cur.Extra = p.Extra
        return false
    }
    r.participants[p.ConnID] = p
    r.order = append(r.order, p.ConnID)
    return true
}

func (r *Room) remove(connID string) bool {
    if _, ok := r.participants[connID]; !ok {
        return false
    }
    delete(r.participants, connID)
    for i, id := range r.order {
        if id == connID {
            r.order = append(r.order[:i], r.order[i+1:]...)
            break
        }
    }
    return true
}

func (r *Room) get(connID string) *Participant {
    return r.participants[connID]
}

func (r *Room) size() int { return len(r.participants) }

// memberIDs returns connection IDs in join order, optionally excluding one.
func (r *Room) memberIDs(except string) []string {
    out := make([]string, 0, len(r.order))
    for _, id := range r.order {
        if id == except {
            continue
        }
        out = append(out, id)
    }
    return out
}

// wireList returns participant wire records in join order, optionally
// excluding one connection.
func (r *Room) wireList(except string) []map[string]any {
    out := make([]map[string]any, 0, len(r.order))
    for _, id := range r.order {
        if id == except {
            continue
        }
        out = append(out, r.participants[id].wire())
    }
    return out
}
