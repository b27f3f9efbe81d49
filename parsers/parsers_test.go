package parsers

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nikgaevoy/yass/sat"
)

func lit(x int) sat.Literal { return sat.FromDIMACS(x) }

func TestLoadDIMACS(t *testing.T) {
	numVars, formula, err := LoadDIMACS("testdata/small.cnf", false)
	if err != nil {
		t.Fatalf("LoadDIMACS() error = %v", err)
	}
	if numVars != 3 {
		t.Errorf("LoadDIMACS() numVars = %d, want 3", numVars)
	}

	want := sat.Formula{
		{lit(1), lit(-2)},
		{lit(-1), lit(2), lit(3)},
		{lit(-3)},
	}
	if diff := cmp.Diff(want, formula); diff != "" {
		t.Errorf("LoadDIMACS() formula mismatch (-want +got):\n%s", diff)
	}
}

func TestReadModels(t *testing.T) {
	_, err := ReadModels("testdata/small.cnf")
	if err == nil {
		t.Fatalf("ReadModels() on a problem-line file: want error, got nil")
	}
}
