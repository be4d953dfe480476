package realtime

import (
	"encoding/json"

	"ideaproof/internal/core/domain"
)

// Frame types of the push channel. Clients send join and leave; the server
// answers with joined, left and error and pushes campaign-update.
const (
	FrameJoin           = "join"
	FrameLeave          = "leave"
	FrameJoined         = "joined"
	FrameLeft           = "left"
	FrameCampaignUpdate = "campaign-update"
	FrameError          = "error"
)

// Frame is the envelope of every websocket message in both directions.
type Frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// AccountPayload is the payload of join, leave, joined and left.
type AccountPayload struct {
	AccountID string `json:"account_id"`
}

// ErrorPayload is the payload of error frames.
type ErrorPayload struct {
	Error string      `json:"error"`
	Kind  domain.Kind `json:"kind,omitempty"`
}

// NewFrame encodes payload into a frame of the given type.
func NewFrame(frameType string, payload any) (Frame, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Frame{}, err
	}
	return Frame{Type: frameType, Payload: raw}, nil
}
