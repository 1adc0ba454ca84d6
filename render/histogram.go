// Package render draws simulation results as text tables. It consumes the
// plain data the qsim core returns and is never used by the core.
package render

import (
	"fmt"
	"io"
	"math/cmplx"
	"sort"
	"strings"

	"github.com/markkurossi/tabulate"
	"github.com/theapemachine/qsim"
)

// BarWidth is the number of cells a probability of 1 fills.
const BarWidth = 40

func bar(fraction float64) string {
	cells := int(fraction*BarWidth + 0.5)
	if cells < 0 {
		cells = 0
	}
	return strings.Repeat("█", cells)
}

func title(w io.Writer, text string) {
	if text != "" {
		fmt.Fprintln(w, text)
	}
}

// Histogram prints a probability map as a table with one bar per label.
func Histogram(w io.Writer, heading string, pm qsim.ProbabilityMap) {
	title(w, heading)

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Outcome").SetAlign(tabulate.ML)
	tab.Header("P").SetAlign(tabulate.MR)
	tab.Header("").SetAlign(tabulate.ML)

	for _, label := range pm.Labels() {
		row := tab.Row()
		row.Column(label)
		row.Column(fmt.Sprintf("%.4f", pm[label]))
		row.Column(bar(pm[label]))
	}
	tab.Print(w)
}

// Counts prints shot counts as a table, most frequent outcome first.
func Counts(w io.Writer, heading string, counts qsim.Counts) {
	title(w, heading)

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return labels[i] < labels[j]
	})

	shots := counts.Shots()

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Outcome").SetAlign(tabulate.ML)
	tab.Header("Count").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("").SetAlign(tabulate.ML)

	for _, label := range labels {
		fraction := float64(counts[label]) / float64(shots)

		row := tab.Row()
		row.Column(label)
		row.Column(fmt.Sprintf("%d", counts[label]))
		row.Column(fmt.Sprintf("%.2f%%", fraction*100))
		row.Column(bar(fraction))
	}
	tab.Print(w)
}

// State prints every amplitude of a state with its magnitude and phase.
func State(w io.Writer, heading string, state *qsim.QuantumState) {
	title(w, heading)

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Basis").SetAlign(tabulate.ML)
	tab.Header("Amplitude").SetAlign(tabulate.MR)
	tab.Header("|a|²").SetAlign(tabulate.MR)
	tab.Header("Phase").SetAlign(tabulate.MR)

	for i, amplitude := range state.Vector {
		magnitude := cmplx.Abs(amplitude)

		row := tab.Row()
		row.Column("|" + state.Label(i) + "⟩")
		row.Column(fmt.Sprintf("%.4f%+.4fi", real(amplitude), imag(amplitude)))
		row.Column(fmt.Sprintf("%.4f", magnitude*magnitude))
		row.Column(fmt.Sprintf("%.4f", cmplx.Phase(amplitude)))
	}
	tab.Print(w)
}

// Circuit prints the gate listing of a circuit.
func Circuit(w io.Writer, circuit *qsim.Circuit) {
	fmt.Fprint(w, circuit.String())
}
