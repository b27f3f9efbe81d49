// Package parsers loads DIMACS CNF instances and DIMACS-style model
// files into this module's sat.Formula representation. It wraps
// github.com/rhartert/dimacs, the teacher's own external parser
// dependency, rather than hand-rolling a scanner (internal/dimacs's
// former hand-rolled parser is dropped, see DESIGN.md).
package parsers

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"

	"github.com/nikgaevoy/yass/sat"
)

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadDIMACS parses a DIMACS CNF file and returns the number of
// variables and the resulting sat.Formula, ready to hand to
// sat.NewEngine.
func LoadDIMACS(filename string, gzipped bool) (int, sat.Formula, error) {
	r, err := reader(filename, gzipped)
	if err != nil {
		return 0, nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()

	b := &formulaBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return 0, nil, err
	}
	return b.numVars, b.formula, nil
}

// formulaBuilder implements dimacs.Builder, translating DIMACS's
// 1-indexed signed integers into sat.Literal's one's-complement
// encoding.
type formulaBuilder struct {
	numVars int
	formula sat.Formula
}

func (b *formulaBuilder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("instances of type %q are not supported", problem)
	}
	b.numVars = nVars
	b.formula = make(sat.Formula, 0, nClauses)
	return nil
}

func (b *formulaBuilder) Clause(tmpClause []int) error {
	clause := make(sat.Clause, len(tmpClause))
	for i, l := range tmpClause {
		clause[i] = sat.FromDIMACS(l)
	}
	b.formula = append(b.formula, clause)
	return nil
}

func (b *formulaBuilder) Comment(_ string) error {
	return nil
}

// ReadModels returns the list of models contained in a DIMACS-style
// model file: one line per model, DIMACS literals whose sign gives the
// corresponding variable's truth value.
func ReadModels(filename string) ([][]bool, error) {
	r, err := reader(filename, false)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, err
	}
	return b.models, nil
}

type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("model files should not have problem lines")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := make([]bool, len(tmpClause))
	for i, l := range tmpClause {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
