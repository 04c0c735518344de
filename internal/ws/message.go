package ws

import "encoding/json"

// Inbound message kinds. The client-to-server protocol is a closed set;
// anything else is logged and ignored.
const (
    KindJoinRoom         = "join-room"
    KindOffer            = "offer"
    KindAnswer           = "answer"
    KindICECandidate     = "ice-candidate"
    KindToggleAudio      = "toggle-audio"
    KindToggleVideo      = "toggle-video"
    KindStartScreenShare = "start-screen-share"
    KindStopScreenShare  = "stop-screen-share"
    KindChatMessage      = "chat-message"
    KindLeaveRoom        = "leave-room"
)

// envelope carries only the tag; the full message is re-decoded into the
// kind-specific struct once the tag is known.
type envelope struct {
    Type string `json:"type"`
}

type joinRoomMsg struct {
    RoomID          string         `json:"roomId"`
    ParticipantInfo map[string]any `json:"participantInfo"`
}

type signalMsg struct {
    To      string          `json:"to"`
    Payload json.RawMessage `json:"payload"`
}

type toggleAudioMsg struct {
    RoomID  string `json:"roomId"`
    IsMuted bool   `json:"isMuted"`
}

type toggleVideoMsg struct {
    RoomID     string `json:"roomId"`
    IsVideoOff bool   `json:"isVideoOff"`
}

type screenShareMsg struct {
    RoomID string `json:"roomId"`
}

type chatMsg struct {
    RoomID  string `json:"roomId"`
    Message string `json:"message"`
}

type leaveRoomMsg struct {
    RoomID string `json:"roomId"`
}
