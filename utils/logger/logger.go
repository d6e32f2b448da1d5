package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/openledgerio/booksync/types"
)

var logger zerolog.Logger

// stdout is reserved for protocol messages; human logs go to stderr and the
// rotating file sink.
var protocolOut io.Writer = os.Stdout

func init() {
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	logger = zerolog.New(console).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

// Init attaches the rotating file sink under logDir and applies the level.
func Init(logDir string, debug bool) {
	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}}
	if logDir != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   filepath.Join(logDir, "booksync.log"),
			MaxSize:    100, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		})
	}
	level := zerolog.InfoLevel
	if debug || strings.EqualFold(os.Getenv("BOOKSYNC_DEBUG"), "true") {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger().Level(level)
}

func Debug(v ...any) {
	logger.Debug().Msg(fmt.Sprint(v...))
}

func Debugf(format string, v ...any) {
	logger.Debug().Msgf(format, v...)
}

func Info(v ...any) {
	logger.Info().Msg(fmt.Sprint(v...))
}

func Infof(format string, v ...any) {
	logger.Info().Msgf(format, v...)
}

func Warn(v ...any) {
	logger.Warn().Msg(fmt.Sprint(v...))
}

func Warnf(format string, v ...any) {
	logger.Warn().Msgf(format, v...)
}

func Error(v ...any) {
	logger.Error().Msg(fmt.Sprint(v...))
}

func Errorf(format string, v ...any) {
	logger.Error().Msgf(format, v...)
}

func Fatal(v ...any) {
	logger.Fatal().Msg(fmt.Sprint(v...))
}

func Fatalf(format string, v ...any) {
	logger.Fatal().Msgf(format, v...)
}

func emit(message types.Message) {
	data, err := json.Marshal(message)
	if err != nil {
		Fatalf("failed to marshal %s message: %s", message.Type, err)
	}
	fmt.Fprintln(protocolOut, string(data))
}

func LogState(state *types.State) {
	emit(types.Message{Type: types.StateMessage, State: state})
}

func LogCatalog(catalog *types.Catalog) {
	emit(types.Message{Type: types.CatalogMessage, Catalog: catalog})
}

func LogConnectionStatus(err error) {
	row := &types.StatusRow{Status: types.ConnectionSucceed}
	if err != nil {
		row.Status = types.ConnectionFailed
		row.Message = err.Error()
	}
	emit(types.Message{Type: types.ConnectionStatusMessage, ConnectionStatus: row})
}

func LogSpec(spec map[string]any) {
	data, err := json.Marshal(spec)
	if err != nil {
		Fatalf("failed to marshal spec: %s", err)
	}
	emit(types.Message{Type: types.SpecMessage, Spec: data})
}
