package protocol

import (
	"github.com/spf13/cobra"

	"github.com/openledgerio/booksync/utils/logger"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "check command",
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return loadConfig()
	},
	Run: func(cmd *cobra.Command, _ []string) {
		err := func() error {
			if err := connector.Setup(cmd.Context()); err != nil {
				return err
			}
			return connector.Check(cmd.Context())
		}()
		logger.LogConnectionStatus(err)
	},
}
