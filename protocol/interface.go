package protocol

import (
	"context"

	"github.com/openledgerio/booksync/destination"
	"github.com/openledgerio/booksync/types"
)

// Config is any driver configuration; Validate applies defaults and rejects
// unusable input.
type Config interface {
	Validate() error
}

// Driver is the contract a source connector implements to be runnable
// through the command surface.
type Driver interface {
	Type() string
	// GetConfigRef returns the struct the config file is unmarshalled into.
	GetConfigRef() Config
	Spec() map[string]any
	Setup(ctx context.Context) error
	Check(ctx context.Context) error
	Discover() (*types.Catalog, error)
	Sync(ctx context.Context, writer destination.Writer, state *types.State, selected []string) error
}
