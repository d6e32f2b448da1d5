package types

import (
	"sync"

	"github.com/goccy/go-json"

	"github.com/openledgerio/booksync/utils/typeutils"
)

type StateType string

const (
	StreamType StateType = "STREAM"
)

// State tracks replication progress across all streams. Cursors are
// partitioned per stream name and per request-context signature so sibling
// parents never clobber each other's progress.
type State struct {
	*sync.RWMutex
	Type    StateType      `json:"type"`
	Streams []*StreamState `json:"streams"`
}

type StreamState struct {
	Stream string `json:"stream"`
	// Context is the signature of the request context the cursors belong
	// to; empty for root streams and for streams that track a single
	// global cursor.
	Context string            `json:"context,omitempty"`
	Cursors map[string]string `json:"cursors"`
}

func NewState() *State {
	return &State{
		RWMutex: &sync.RWMutex{},
		Type:    StreamType,
	}
}

// Init must be called after unmarshalling state from disk; the mutex is not
// part of the serialized form.
func (s *State) Init() {
	if s.RWMutex == nil {
		s.RWMutex = &sync.RWMutex{}
	}
	if s.Type == "" {
		s.Type = StreamType
	}
}

func (s *State) find(stream, context string) *StreamState {
	for _, ss := range s.Streams {
		if ss.Stream == stream && ss.Context == context {
			return ss
		}
	}
	return nil
}

// GetCursor returns the stored cursor for the stream under the given context
// signature, or empty when no progress has been recorded yet.
func (s *State) GetCursor(stream, context, key string) string {
	s.RLock()
	defer s.RUnlock()

	if ss := s.find(stream, context); ss != nil {
		return ss.Cursors[key]
	}
	return ""
}

// SetCursor records cursor progress. Values only ever advance; a candidate
// older than the stored cursor is discarded so a failed window can be
// replayed without regressing state.
func (s *State) SetCursor(stream, context, key, value string) {
	if value == "" {
		return
	}
	s.Lock()
	defer s.Unlock()

	ss := s.find(stream, context)
	if ss == nil {
		ss = &StreamState{Stream: stream, Context: context, Cursors: map[string]string{}}
		s.Streams = append(s.Streams, ss)
	}
	if ss.Cursors == nil {
		ss.Cursors = map[string]string{}
	}
	ss.Cursors[key] = typeutils.MaxCursor(ss.Cursors[key], value)
}

func (s *State) IsZero() bool {
	s.RLock()
	defer s.RUnlock()
	return len(s.Streams) == 0
}

func (s *State) MarshalJSON() ([]byte, error) {
	s.RLock()
	defer s.RUnlock()

	type alias struct {
		Type    StateType      `json:"type"`
		Streams []*StreamState `json:"streams"`
	}
	return json.Marshal(alias{Type: s.Type, Streams: s.Streams})
}

func (s *State) String() string {
	data, _ := json.Marshal(s)
	return string(data)
}
