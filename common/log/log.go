package log

import (
	"fmt"
	"io"
	"os"

	"github.com/inconshreveable/log15"
	"github.com/inconshreveable/log15/term"
	"github.com/mattn/go-colorable"
)

var srvLog = log15.New()

const (
	LevelCrit  = log15.LvlCrit
	LevelError = log15.LvlError
	LevelWarn  = log15.LvlWarn
	LevelInfo  = log15.LvlInfo
	LevelDebug = log15.LvlDebug
)

func init() {
	Setup(LevelInfo, "")
}

// Setup changes the log config immediately.
// The lv is higher the more logs would be visible. If logFile is not empty
// logs are also appended to the file in JSON format.
func Setup(lv log15.Lvl, logFile string) {
	useColor := term.IsTty(os.Stdout.Fd()) && os.Getenv("TERM") != "dumb"
	output := io.Writer(os.Stderr)
	if useColor {
		output = colorable.NewColorableStderr()
	}
	handler := log15.StreamHandler(output, log15.TerminalFormat())
	if logFile != "" {
		handler = log15.MultiHandler(
			handler,
			log15.Must.FileHandler(logFile, log15.JsonFormat()),
		)
	}
	srvLog.SetHandler(log15.LvlFilterHandler(lv, handler))
}

func Debug(msg string, ctx ...interface{}) {
	srvLog.Debug(msg, ctx...)
}

func Debugf(format string, values ...interface{}) {
	srvLog.Debug(fmt.Sprintf(format, values...))
}

func Info(msg string, ctx ...interface{}) {
	srvLog.Info(msg, ctx...)
}

func Infof(format string, values ...interface{}) {
	srvLog.Info(fmt.Sprintf(format, values...))
}

func Warn(msg string, ctx ...interface{}) {
	srvLog.Warn(msg, ctx...)
}

func Warnf(format string, values ...interface{}) {
	srvLog.Warn(fmt.Sprintf(format, values...))
}

func Error(msg string, ctx ...interface{}) {
	srvLog.Error(msg, ctx...)
}

func Errorf(format string, values ...interface{}) {
	srvLog.Error(fmt.Sprintf(format, values...))
}

func Crit(msg string, ctx ...interface{}) {
	srvLog.Crit(msg, ctx...)
	os.Exit(1)
}

func Critf(format string, values ...interface{}) {
	srvLog.Crit(fmt.Sprintf(format, values...))
	os.Exit(1)
}

// Lazy allows you to defer calculation of a logged value that is expensive
// to compute until it is certain that it must be evaluated with the given filters.
type Lazy = log15.Lazy
