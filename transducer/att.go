package transducer

import (
	"fmt"
	"io"
	"strings"
)

// WriteATT writes t in AT&T textual form (specification §4.7): one arc per
// line as "src dst ilabel olabel", states and arcs in the order defined by
// the arc schema of §4.5 (ascending state id, ascending input label within
// a state), followed by one standalone line per final state — every state
// of T_V is final (length-preservation, §3/§8 property 3), so every state
// id appears exactly once more on its own line.
//
// Compilation is deterministic (specification §5): two calls against the
// same rule and alphabet produce byte-identical output, since state
// numbering, arc order and label assignment are pure functions of V_order
// and P_order.
func WriteATT(w io.Writer, t *Transducer) error {
	var b strings.Builder
	numStates := t.PFrame.Size() + 1
	numLabels := t.VFrame.Size()
	for state := 0; state < numStates; state++ {
		for label := 1; label <= numLabels; label++ {
			next, output := t.Table.Value(state, label)
			fmt.Fprintf(&b, "%d %d %d %d\n", state, next, label, output)
		}
	}
	for state := 0; state < numStates; state++ {
		fmt.Fprintf(&b, "%d\n", state)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
