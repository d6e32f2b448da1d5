package types

import "github.com/goccy/go-json"

type MessageType string

const (
	LogMessage              MessageType = "LOG"
	ConnectionStatusMessage MessageType = "CONNECTION_STATUS"
	StateMessage            MessageType = "STATE"
	RecordMessage           MessageType = "RECORD"
	CatalogMessage          MessageType = "CATALOG"
	SpecMessage             MessageType = "SPEC"
)

type ConnectionStatus string

const (
	ConnectionSucceed ConnectionStatus = "SUCCEEDED"
	ConnectionFailed  ConnectionStatus = "FAILED"
)

type Log struct {
	Level   string `json:"level,omitempty"`
	Message string `json:"message,omitempty"`
}

type StatusRow struct {
	Status  ConnectionStatus `json:"status,omitempty"`
	Message string           `json:"message,omitempty"`
}

type RecordRow struct {
	Stream string `json:"stream"`
	Data   Record `json:"data"`
}

// Message is the single envelope emitted on stdout; exactly one payload
// field is set per message, matching Type.
type Message struct {
	Type             MessageType     `json:"type"`
	Log              *Log            `json:"log,omitempty"`
	ConnectionStatus *StatusRow      `json:"connectionStatus,omitempty"`
	State            *State          `json:"state,omitempty"`
	Record           *RecordRow      `json:"record,omitempty"`
	Catalog          *Catalog        `json:"catalog,omitempty"`
	Spec             json.RawMessage `json:"spec,omitempty"`
}
