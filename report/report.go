// Package report serializes driver results to the run-directory artifacts
// consumed by external tooling: a per-step CSV trace and a JSON record of
// the best conformation found.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hpfold/lattice"
)

// WriteTraceCSV writes the per-step trace with header "step,energy,best_energy",
// steps numbered from 1, per spec.md §6.
//
// Complexity: O(len(energies)).
func WriteTraceCSV(w io.Writer, energies, bestEnergies []int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "energy", "best_energy"}); err != nil {
		return err
	}
	for i := range energies {
		row := []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", energies[i]),
			fmt.Sprintf("%d", bestEnergies[i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteTraceCSVFile opens path and delegates to WriteTraceCSV.
func WriteTraceCSVFile(path string, energies, bestEnergies []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteTraceCSV(f, energies, bestEnergies)
}

// bestFold is the JSON shape of a best-conformation record: {"energy": int,
// "coords": [[x,y], ...]}, per spec.md §6.
type bestFold struct {
	Energy int     `json:"energy"`
	Coords [][]int `json:"coords"`
}

// WriteBestFoldJSON writes the best-energy record for coords, in residue
// order, per spec.md §6.
func WriteBestFoldJSON(w io.Writer, bestEnergy int, coords lattice.Conformation) error {
	rec := bestFold{
		Energy: bestEnergy,
		Coords: make([][]int, len(coords)),
	}
	for i, p := range coords {
		rec.Coords[i] = []int{p.X, p.Y}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(rec)
}

// WriteBestFoldJSONFile opens path and delegates to WriteBestFoldJSON.
func WriteBestFoldJSONFile(path string, bestEnergy int, coords lattice.Conformation) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteBestFoldJSON(f, bestEnergy, coords)
}

// WriteRunConfigYAML writes cfg's effective parameters as YAML, so a run
// directory carries a record of exactly what produced it, reproducible via
// `--config`.
func WriteRunConfigYAML(w io.Writer, cfg RunConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}

	return enc.Close()
}

// WriteRunConfigYAMLFile opens path and delegates to WriteRunConfigYAML.
func WriteRunConfigYAMLFile(path string, cfg RunConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteRunConfigYAML(f, cfg)
}
