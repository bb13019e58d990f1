package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/birips/bimodule"
)

// printSummary writes the module header, the density profile and one row
// per non-empty threshold: generator counts per radius, the ranks of the
// vertical maps (generators persisting to r+1) and the radius at which S(a)
// becomes connected.
func printSummary(w io.Writer, runID string, m *bimodule.Module) error {
	g := m.Grid()
	fmt.Fprintf(w, "run %s\n", runID)
	fmt.Fprintf(w, "N=%d RMax=%d p=%g max_density=%d\n", m.N(), m.RMax(), g.Radius(), g.Filter().MaxGamma())

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "a\t|S(a)|\tdims\tvertical ranks\tconnected at")
	for a := 0; a <= m.N(); a++ {
		s, err := g.Subset(a)
		if err != nil {
			return err
		}
		if len(s) == 0 {
			continue
		}
		dims := make([]int, m.RMax()+1)
		ranks := make([]int, m.RMax()+1)
		for r := 0; r <= m.RMax(); r++ {
			cell, err := m.Cell(a, r)
			if err != nil {
				return err
			}
			dims[r] = cell.Dim()
			if _, ranks[r], err = m.Ranks(a, r); err != nil {
				return err
			}
		}
		connect, err := g.ConnectivityRadius(a)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%d\t%d\t%v\t%v\t%.4g\n", a, len(s), dims, ranks, connect)
	}

	return tw.Flush()
}
