package protocol

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/openledgerio/booksync/destination"
	"github.com/openledgerio/booksync/utils/logger"
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "sync command",
	PreRunE: func(_ *cobra.Command, _ []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		return loadState()
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := connector.Setup(cmd.Context()); err != nil {
			return err
		}
		selected, err := loadSelection()
		if err != nil {
			return err
		}

		writer, ok := destination.NewWriter(destination.StdoutWriter)
		if !ok {
			return fmt.Errorf("stdout writer is not registered")
		}
		if err := writer.Setup(cmd.Context()); err != nil {
			return err
		}

		start := time.Now()
		syncID := uuid.New().String()
		logger.Infof("starting sync run %s for connector %s", syncID, connector.Type())
		syncErr := connector.Sync(cmd.Context(), writer, state, selected)
		if err := writer.Close(); err != nil {
			return fmt.Errorf("failed to flush writer: %s", err)
		}

		// cursors gained before a failure are still worth persisting
		logger.LogState(state)
		if syncErr != nil {
			return syncErr
		}
		logger.Infof("sync finished in %s", time.Since(start).String())
		return nil
	},
}
