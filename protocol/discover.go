package protocol

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openledgerio/booksync/utils/logger"
)

// discoverCmd represents the discover command
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "discover command",
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return loadConfig()
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := connector.Setup(cmd.Context()); err != nil {
			return err
		}
		catalog, err := connector.Discover()
		if err != nil {
			return fmt.Errorf("failed to discover streams: %s", err)
		}
		if len(catalog.Streams) == 0 {
			return fmt.Errorf("no streams found in connector")
		}
		logger.LogCatalog(catalog)
		return nil
	},
}
