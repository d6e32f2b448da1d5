package stdout

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"

	"github.com/goccy/go-json"

	"github.com/openledgerio/booksync/destination"
	"github.com/openledgerio/booksync/types"
)

// Stdout emits one RECORD message per line on standard output. It is the
// default sink; downstream loaders consume the line stream.
type Stdout struct {
	mu  sync.Mutex
	out *bufio.Writer
}

func New(out io.Writer) *Stdout {
	return &Stdout{out: bufio.NewWriter(out)}
}

func (s *Stdout) Setup(_ context.Context) error {
	return nil
}

func (s *Stdout) Write(_ context.Context, stream string, record types.Record) error {
	message := types.Message{
		Type:   types.RecordMessage,
		Record: &types.RecordRow{Stream: stream, Data: record},
	}
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.out.Write(data); err != nil {
		return err
	}
	return s.out.WriteByte('\n')
}

func (s *Stdout) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.Flush()
}

func init() {
	destination.RegisteredWriters[destination.StdoutWriter] = func() destination.Writer {
		return New(os.Stdout)
	}
}
