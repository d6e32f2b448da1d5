package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/openledgerio/booksync/constants"
)

// Stream is the immutable definition of one entity extracted from the API.
// Instances are created once at process start by the driver's registry and
// never mutated afterwards.
type Stream struct {
	Name string `json:"name"`
	// Path may contain {placeholders} bound from the parent request context,
	// e.g. "/journals/{journal_id}".
	Path           string   `json:"path"`
	PrimaryKeys    []string `json:"primary_keys"`
	ReplicationKey string   `json:"replication_key,omitempty"` // empty for full-refresh streams
	// RecordsPath locates the record array (or single object) inside the
	// response envelope, e.g. "invoices" or "journal".
	RecordsPath string `json:"records_path"`
	// ContextKey is the record field copied into the request context handed
	// to child streams.
	ContextKey string `json:"context_key,omitempty"`

	RequiresDetailEnrichment bool `json:"requires_detail_enrichment,omitempty"`
	IsReportStream           bool `json:"is_report_stream,omitempty"`
	CashBased                bool `json:"cash_based,omitempty"`
	IgnoreParentCursor       bool `json:"ignore_parent_cursor,omitempty"`
	// Paced marks endpoints with an observed per-entity request cost; every
	// request to them is spaced out regardless of rate-limit headers.
	Paced bool `json:"-"`

	Detail *DetailSpec `json:"-"`

	Parent   *Stream   `json:"-"`
	Children []*Stream `json:"-"`
}

// DetailSpec describes the secondary per-entity endpoint used to fill in
// fields the list endpoint omits.
type DetailSpec struct {
	Path        string // detail endpoint, no placeholders
	IDParam     string // delimited identifier parameter, e.g. "item_ids"
	RecordsPath string // location of detail records in the response
	Toggle      string // config flag name gating the enrichment
}

func (s *Stream) ID() string {
	return s.Name
}

// SyncMode reports how the stream replicates, derived from its definition.
func (s *Stream) SyncMode() string {
	if s.ReplicationKey == "" {
		return constants.FullRefresh
	}
	return constants.Incremental
}

func (s *Stream) AddChild(child *Stream) *Stream {
	child.Parent = s
	s.Children = append(s.Children, child)
	return child
}

// Flatten returns the stream and all its descendants depth-first.
func (s *Stream) Flatten() []*Stream {
	out := []*Stream{s}
	for _, child := range s.Children {
		out = append(out, child.Flatten()...)
	}
	return out
}

// RequestContext carries the parent-derived key/value bindings needed to
// address a child stream's endpoint. It is built fresh per parent record and
// owned exclusively by the invocation that created it.
type RequestContext map[string]string

// Fork copies the context and overlays the given key; the receiver is left
// untouched so sibling invocations never share state.
func (c RequestContext) Fork(key, value string) RequestContext {
	next := make(RequestContext, len(c)+1)
	for k, v := range c {
		next[k] = v
	}
	if key != "" {
		next[key] = value
	}
	return next
}

// Signature renders a stable identity for the context, used to partition
// per-stream cursors. Keys are sorted so equal contexts always collide.
func (c RequestContext) Signature() string {
	if len(c) == 0 {
		return ""
	}
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, c[k]))
	}
	return strings.Join(parts, ",")
}

// Catalog is the discover-command output envelope.
type Catalog struct {
	Streams []*Stream `json:"streams"`
}

func StreamsToMap(streams ...*Stream) map[string]*Stream {
	out := make(map[string]*Stream, len(streams))
	for _, s := range streams {
		out[s.ID()] = s
	}
	return out
}
