package game

import (
	"fmt"
	"io"
	"time"
)

// logWriter is the destination for log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log message.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// logPerfStats logs per-phase timing over the rolling window.
func (g *Game) logPerfStats() {
	total := g.perf.Total()
	Logf("=== Perf @ Frame %d ===", g.frame)
	Logf("Total frame time: %s", total.Round(time.Microsecond))

	for _, name := range g.perf.Phases() {
		avg := g.perf.Avg(name)
		pct := float64(0)
		if total > 0 {
			pct = float64(avg) / float64(total) * 100
		}
		Logf("  %-14s %10s  %5.1f%%", name, avg.Round(time.Microsecond), pct)
	}
	Logf("")
}
