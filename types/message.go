package types

import "encoding/json"

// Message is the transaction message. Proto messages carry the TypeURL, amino messages the Type.
type Message struct {
	TypeURL string          `json:"typeUrl,omitempty"`
	Type    string          `json:"type,omitempty"`
	Value   json.RawMessage `json:"value,omitempty"`
}
