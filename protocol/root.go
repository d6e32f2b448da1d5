package protocol

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openledgerio/booksync/constants"
	"github.com/openledgerio/booksync/types"
	"github.com/openledgerio/booksync/utils"
	"github.com/openledgerio/booksync/utils/logger"
	"github.com/openledgerio/booksync/utils/safego"
)

var (
	configPath  string
	statePath   string
	streamsPath string
	debug       bool

	state     *types.State
	commands  = []*cobra.Command{}
	connector Driver
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "booksync",
	Short: "root command",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		viper.SetDefault(constants.ConfigFolder, os.TempDir())

		configFolder := utils.Ternary(configPath == "not-set", os.TempDir(), filepath.Dir(configPath))
		viper.Set(constants.ConfigFolder, configFolder)
		viper.Set(constants.StatePath, utils.Ternary(statePath == "", filepath.Join(configFolder, "state.json"), statePath))
		viper.Set(constants.StreamsPath, utils.Ternary(streamsPath == "", filepath.Join(configFolder, "streams.json"), streamsPath))

		// logger writes its file sink next to the config artifacts
		logger.Init(configFolder, debug)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		if _, ok := utils.ArrayContains(commands, func(elem *cobra.Command) bool { return elem.Name() == args[0] }); !ok {
			return fmt.Errorf("'%s' is an invalid command. Use 'booksync --help' to display usage guide", args[0])
		}
		return nil
	},
}

// loadConfig unmarshals the --config file into the driver's config struct.
func loadConfig() error {
	if configPath == "not-set" {
		return fmt.Errorf("--config not passed")
	}
	return utils.UnmarshalFile(configPath, connector.GetConfigRef())
}

// loadState reads persisted cursors; a missing file starts a fresh sync.
func loadState() error {
	state = types.NewState()
	path := viper.GetString(constants.StatePath)
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := utils.UnmarshalFile(path, state); err != nil {
		return err
	}
	state.Init()
	return nil
}

// loadSelection reads the streams file; absent file selects every stream.
func loadSelection() ([]string, error) {
	path := viper.GetString(constants.StreamsPath)
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	catalog := &types.Catalog{}
	if err := utils.UnmarshalFile(path, catalog); err != nil {
		return nil, err
	}
	selected := make([]string, 0, len(catalog.Streams))
	for _, stream := range catalog.Streams {
		selected = append(selected, stream.Name)
	}
	return selected, nil
}

// RegisterDriver wires the driver into the command surface and runs it.
func RegisterDriver(driver Driver) {
	defer safego.Recovery(true)

	connector = driver
	RootCmd.AddCommand(commands...)
	if err := RootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}

func init() {
	commands = append(commands, specCmd, checkCmd, discoverCmd, syncCmd)
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "", "not-set", "(Required) Config for connector")
	RootCmd.PersistentFlags().StringVarP(&streamsPath, "streams", "", "", "Path to the streams file for the connector")
	RootCmd.PersistentFlags().StringVarP(&statePath, "state", "", "", "(Optional) State for connector")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "", false, "(Optional) Enable debug logging")

	RootCmd.SilenceUsage = true
	RootCmd.SilenceErrors = true
}
