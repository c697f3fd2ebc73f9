/*
Package arctable implements the arc storage for a compiled transducer: a
dense, total table of (state, label) → (nextState, outputLabel).

T_V is total and deterministic by construction (specification §4.5/§8
property 1-2): every (state, label) pair has exactly one arc. That makes a
dense flat array the right representation — unlike the teacher's own
IntMatrix (lr/sparse.go), which is a COO-encoded *sparse* matrix for
ACTION/GOTO tables that are mostly empty. Dense adapts the same accessor
shape (Set/Value, row/column count, a reserved null value for
"not yet written", used only for the builder's own internal consistency
checks — by the time Build returns, no null entries remain).
*/
package arctable

// DefaultNull marks a cell that has not yet been written. A fully built
// Dense table must contain no DefaultNull cells; InternalInvariantViolated
// is raised by the builder if one is found.
const DefaultNull int32 = -1

// Dense is a total arc table with Rows states and Cols labels per state
// (labels 1..Cols map to slots 0..Cols-1).
type Dense struct {
	rows, cols int
	next       []int32
	output     []int32
}

// NewDense allocates a Dense table for the given state and label counts,
// with every cell initialized to DefaultNull.
func NewDense(rows, cols int) *Dense {
	d := &Dense{
		rows:   rows,
		cols:   cols,
		next:   make([]int32, rows*cols),
		output: make([]int32, rows*cols),
	}
	for i := range d.next {
		d.next[i] = DefaultNull
		d.output[i] = DefaultNull
	}
	return d
}

// M returns the row (state) count.
func (d *Dense) M() int { return d.rows }

// N returns the column (label) count.
func (d *Dense) N() int { return d.cols }

func (d *Dense) idx(state, label int) int {
	return state*d.cols + (label - 1)
}

// Set writes the arc for (state, label): transition to next, emitting
// outputLabel.
func (d *Dense) Set(state, label int, next, outputLabel int32) {
	i := d.idx(state, label)
	d.next[i] = next
	d.output[i] = outputLabel
}

// Value returns the arc for (state, label), or (DefaultNull, DefaultNull)
// if never written.
func (d *Dense) Value(state, label int) (next, outputLabel int32) {
	i := d.idx(state, label)
	return d.next[i], d.output[i]
}

// AllWritten reports whether every cell of the table has been set — the
// totality property (§8 property 1) checked once after construction.
func (d *Dense) AllWritten() bool {
	for _, v := range d.next {
		if v == DefaultNull {
			return false
		}
	}
	return true
}
