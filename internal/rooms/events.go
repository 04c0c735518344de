package rooms

import "encoding/json"

// Outbound event shapes. Each carries its own "type" tag so the transport
// layer can write them directly as the wire envelope.

type ExistingParticipantsEvent struct {
    Type         string           `json:"type"`
    Participants []map[string]any `json:"participants"`
}

type UserJoinedEvent struct {
    Type        string         `json:"type"`
    Participant map[string]any `json:"participant"`
}

type RoomInfoEvent struct {
    Type             string           `json:"type"`
    ParticipantCount int              `json:"participantCount"`
    Participants     []map[string]any `json:"participants"`
}

type SignalEvent struct {
    Type    string          `json:"type"`
    From    string          `json:"from"`
    Payload json.RawMessage `json:"payload"`
}

type AudioChangedEvent struct {
    Type         string `json:"type"`
    ConnectionID string `json:"connectionId"`
    IsMuted      bool   `json:"isMuted"`
}

type VideoChangedEvent struct {
    Type         string `json:"type"`
    ConnectionID string `json:"connectionId"`
    IsVideoOff   bool   `json:"isVideoOff"`
}

type ScreenShareEvent struct {
    Type         string `json:"type"`
    ConnectionID string `json:"connectionId"`
}

type ChatEvent struct {
    Type      string `json:"type"`
    Sender    string `json:"sender"`
    Text      string `json:"text"`
    Time      string `json:"time"`
    Timestamp int64  `json:"timestamp"`
}

type UserLeftEvent struct {
    Type         string `json:"type"`
    ConnectionID string `json:"connectionId"`
    Name         string `json:"name"`
}
