package solver

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kmarr21/sudoku-solver/internal/domain"
)

func TestMRVPicksSmallestDomain(t *testing.T) {
	e := mustEngine(t, pinnedSample)
	pos, ok := e.nextVariable()
	if !ok {
		t.Fatalf("no variable selected")
	}
	// (0,0) is the only singleton domain on the board.
	if want := (domain.CellCoord{Row: 0, Col: 0}); pos != want {
		t.Fatalf("want %v, got %v", want, pos)
	}
}

func TestMRVTieBreaksRowMajor(t *testing.T) {
	// doomedSample has two singleton domains, (0,0) and (0,1); row-major
	// tie-break picks the first.
	e := mustEngine(t, doomedSample)
	pos, ok := e.nextVariable()
	if !ok {
		t.Fatalf("no variable selected")
	}
	if want := (domain.CellCoord{Row: 0, Col: 0}); pos != want {
		t.Fatalf("want %v, got %v", want, pos)
	}
}

func TestFirstEmptyWhenMRVDisabled(t *testing.T) {
	e := mustEngine(t, easySample, WithMRV(false))
	pos, ok := e.nextVariable()
	if !ok {
		t.Fatalf("no variable selected")
	}
	// (0,0) and (0,1) hold clues; the scan lands on (0,2) regardless of
	// domain sizes.
	if want := (domain.CellCoord{Row: 0, Col: 2}); pos != want {
		t.Fatalf("want %v, got %v", want, pos)
	}
}

func TestNextVariableNoneLeft(t *testing.T) {
	e := mustEngine(t, easySolution)
	if pos, ok := e.nextVariable(); ok {
		t.Fatalf("complete board yielded variable %v", pos)
	}
}

func TestLCVOrdersByPeerSupport(t *testing.T) {
	e := mustEngine(t, pinnedSample)
	pos := domain.CellCoord{Row: 0, Col: 1} // domain {1,2}

	// 1 survives in more peer domains than 2 (the column and box around
	// (0,1) have already lost 2 to the clues), so LCV tries 2 first.
	got := e.orderedValues(pos)
	if diff := cmp.Diff([]uint8{2, 1}, got); diff != "" {
		t.Fatalf("LCV order (-want +got):\n%s", diff)
	}
}

func TestAscendingValuesWhenLCVDisabled(t *testing.T) {
	e := mustEngine(t, pinnedSample, WithLCV(false))
	pos := domain.CellCoord{Row: 0, Col: 1}

	got := e.orderedValues(pos)
	if diff := cmp.Diff([]uint8{1, 2}, got); diff != "" {
		t.Fatalf("ascending order (-want +got):\n%s", diff)
	}
}
