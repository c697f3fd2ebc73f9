package transducer

import (
	"fmt"
	"io"
	"strings"

	"github.com/kappaphon/sncfst/witness"
)

// SymbolEntry is one "name id" line of the AT&T symbol table.
type SymbolEntry struct {
	Name string
	ID   int
}

// SymbolTable renders the shared input/output label table of specification
// §4.7: label 0 is "<eps>", every other label in use (1..3^|V|) is named by
// concatenating each V_order feature's name with its ternary suffix
// ('+', '-', '0'), separated by '_'.
//
// This mirrors runtime/symtable.go's SymbolTable (a name→id table attached
// to a transducer the way the teacher's SymbolTable attaches to a scope),
// but the direction is reversed: here the id (the witness label) is
// primary and the name is derived from it, since every Σ_V tuple already
// has a canonical label before it needs a name.
func (t *Transducer) SymbolTable() []SymbolEntry {
	entries := make([]SymbolEntry, 0, t.VFrame.Size()+1)
	entries = append(entries, SymbolEntry{Name: "<eps>", ID: 0})
	for label := 1; label <= t.VFrame.Size(); label++ {
		tuple := t.VFrame.Decode(label)
		entries = append(entries, SymbolEntry{Name: labelName(t.VFrame.Order, tuple), ID: label})
	}
	return entries
}

func labelName(order []string, tuple witness.Tuple) string {
	parts := make([]string, len(order))
	for i, name := range order {
		parts[i] = name + tuple[i].String()
	}
	return strings.Join(parts, "_")
}

// WriteSymbols writes the symbol table as "name id" lines, one per entry,
// in ascending id order — as a sibling file to the AT&T output
// (specification §6).
func WriteSymbols(w io.Writer, entries []SymbolEntry) error {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s %d\n", e.Name, e.ID)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
