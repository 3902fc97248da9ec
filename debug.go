package birch

import (
	"fmt"
	"os"
	"time"
)

// globalDebug gates the package debug checks and redraw timing logs. It is a
// package-level flag rather than per-chart state so that node operations
// (which lack a chart pointer) can check it cheaply. Multiple charts with
// differing Debug settings reflect whichever was configured last.
var globalDebug bool

// SetDebug enables or disables debug mode: disposed-node access panics and
// redraw timing stats on stderr. ScatterConfig.Debug sets this at New.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// debugLogRedraw prints per-redraw timing stats to stderr.
func debugLogRedraw(points int, mode string, rug, mount, index time.Duration) {
	total := rug + mount + index
	_, _ = fmt.Fprintf(os.Stderr,
		"[birch] redraw: points: %d | rugs: %v | mount: %v | index: %v (%s) | total: %v\n",
		points, rug, mount, index, mode, total)
}

// debugCheckDisposed panics with a descriptive message when a disposed node
// is used in a tree operation. Only called when debug mode is on; in release
// mode callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("birch debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckShapes panics when the mounted registry and the point index
// disagree about the per-series point counts. Both are built from the same
// normalized data in the same redraw, so a mismatch is a bug in the mount or
// build path, and picking against it would restyle the wrong points.
func debugCheckShapes(registry, index []int) {
	if len(registry) != len(index) {
		panic(fmt.Sprintf("birch debug: registry has %d series, index has %d", len(registry), len(index)))
	}
	for i := range registry {
		if registry[i] != index[i] {
			panic(fmt.Sprintf("birch debug: series %d has %d handles but %d indexed points", i, registry[i], index[i]))
		}
	}
}
