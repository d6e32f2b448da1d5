package destination

import (
	"context"

	"github.com/openledgerio/booksync/types"
)

type WriterType string

const (
	StdoutWriter WriterType = "stdout"
)

// Writer receives extracted records. Implementations own their buffering;
// Close must flush anything pending before returning.
type Writer interface {
	Setup(ctx context.Context) error
	Write(ctx context.Context, stream string, record types.Record) error
	Close() error
}

// RegisteredWriters holds constructor functions keyed by writer type.
var RegisteredWriters = map[WriterType]func() Writer{}

func NewWriter(typ WriterType) (Writer, bool) {
	constructor, ok := RegisteredWriters[typ]
	if !ok {
		return nil, false
	}
	return constructor(), true
}
