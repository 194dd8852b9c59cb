// Package metrics provides process level observability counters. The
// counters live beside the ledger state machine and never feed back into
// its results.
package metrics

import (
	"os"
	"strings"

	"github.com/rcrowley/go-metrics"
)

// MetricsEnabledFlag is the CLI flag name to use to enable metrics collections.
var MetricsEnabledFlag = "metrics"

// Enabled is the flag specifying if metrics are enabled or not.
var Enabled = false

// Init enables or disables the metrics system. Since we need this to run
// before any other code gets to create meters and timers, we peek into the
// command line args for the metrics flag.
func init() {
	for _, arg := range os.Args {
		if strings.TrimLeft(arg, "-") == MetricsEnabledFlag {
			Enabled = true
		}
	}
}

// NewCounter creates a new metrics Counter, either a real one or a NOP stub
// depending on the metrics flag.
func NewCounter(name string) metrics.Counter {
	if !Enabled {
		return new(metrics.NilCounter)
	}
	return metrics.GetOrRegisterCounter(name, metrics.DefaultRegistry)
}

// NewGauge creates a new metrics Gauge, either a real one or a NOP stub
// depending on the metrics flag.
func NewGauge(name string) metrics.Gauge {
	if !Enabled {
		return new(metrics.NilGauge)
	}
	return metrics.GetOrRegisterGauge(name, metrics.DefaultRegistry)
}

// NewMeter creates a new metrics Meter, either a real one or a NOP stub
// depending on the metrics flag.
func NewMeter(name string) metrics.Meter {
	if !Enabled {
		return new(metrics.NilMeter)
	}
	return metrics.GetOrRegisterMeter(name, metrics.DefaultRegistry)
}
