package sim

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Logger emits one structured status line per iteration, reproducing
// three of the fields the teacher's run.go:Log prints with fmt.Fprintf
// (iteration, walltime, Δwalltime; its timestep field is not logged) as
// logrus fields instead of a formatted string. debug_mode promotes the line to Debug level with the full
// observable dump left to the caller (sim does not itself print
// per-node values; report.Console does).
type Logger struct {
	entry     *logrus.Entry
	startTime time.Time
	lastTime  time.Time
	iteration int
	debug     bool
}

// NewLogger builds a Logger on top of logrus's standard logger, matching
// the teacher's cmd/inmapweb/main.go setup (TextFormatter with forced
// colours and a full RFC3339Nano timestamp).
func NewLogger(debug bool) *Logger {
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	now := time.Now()
	return &Logger{
		entry:     logrus.NewEntry(logrus.StandardLogger()),
		startTime: now,
		lastTime:  now,
		debug:     debug,
	}
}

// Step logs one iteration's status line.
func (l *Logger) Step() {
	l.iteration++
	now := time.Now()
	fields := logrus.Fields{
		"iteration": l.iteration,
		"walltime":  now.Sub(l.startTime).Seconds(),
		"dwalltime": now.Sub(l.lastTime).Seconds(),
	}
	level := logrus.InfoLevel
	if l.debug {
		level = logrus.DebugLevel
	}
	l.entry.WithFields(fields).Log(level, "timestep complete")
	l.lastTime = now
}
