// Package polybori writes ANF formulas in the text format produced by
// PolyBoRi, for consumption by Gröbner-basis solvers. Grounded on
// ple/anf/polybori.hpp's PolyBoRiStreamWriter: a header line, parameters,
// named variables, then one rendered equation per line.
package polybori

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vsklad/cgen-sub001/anf"
)

// Write renders f as a PolyBoRi-compatible stream.
func Write(w io.Writer, f *anf.Formula) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "c variables: %d, equations: %d\n", f.VariablesSize(), f.EquationsSize())

	for _, key := range f.SortedParameterKeys() {
		fmt.Fprintf(bw, "c var .%s = {%s}\n", key, f.Parameters()[key])
	}

	for _, line := range f.FormatNamedVariableLines() {
		fmt.Fprintln(bw, line)
	}

	for i := 0; i < f.EquationsSize(); i++ {
		if _, err := fmt.Fprintln(bw, f.FormatEquation(i)); err != nil {
			return err
		}
	}

	return bw.Flush()
}
