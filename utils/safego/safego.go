package safego

import (
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/openledgerio/booksync/utils/logger"
)

var startTime = time.Now()

// Recovery turns a panic into logged output; with exit set the process
// terminates with a non-zero code after reporting.
func Recovery(exit bool) {
	if err := recover(); err != nil {
		logger.Error(err)
		for _, str := range strings.Split(string(debug.Stack()), "\n") {
			logger.Error(strings.ReplaceAll(str, "\t", ""))
		}
		if exit {
			logger.Infof("Time of execution %v", time.Since(startTime).String())
			os.Exit(1)
		}
	}
}
