package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/kmarr21/sudoku-solver/internal/domain"
	"github.com/kmarr21/sudoku-solver/internal/validator"
)

// A classic, solvable Sudoku (0 = empty) with exactly one solution.
var easySample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var easySolution = [9][9]uint8{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

// The "AI Escargot" puzzle, 23 givens, exactly one solution.
var hardSample = [9][9]uint8{
	{1, 0, 0, 0, 0, 7, 0, 9, 0},
	{0, 3, 0, 0, 2, 0, 0, 0, 8},
	{0, 0, 9, 6, 0, 0, 5, 0, 0},
	{0, 0, 5, 3, 0, 0, 9, 0, 0},
	{0, 1, 0, 0, 8, 0, 0, 0, 2},
	{6, 0, 0, 0, 0, 4, 0, 0, 0},
	{3, 0, 0, 0, 0, 0, 0, 1, 0},
	{0, 4, 0, 0, 0, 0, 0, 0, 7},
	{0, 0, 7, 0, 0, 0, 3, 0, 0},
}

// Two empty cells in row 0 are both forced down to the single value 1: the
// column clues at (3,0) and (6,1) knock 2 out of both domains.
var doomedSample = [9][9]uint8{
	{0, 0, 3, 4, 5, 6, 7, 8, 9},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{2, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 2, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
}

func boardOf(values [9][9]uint8) *domain.Board {
	b := &domain.Board{Values: values}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Fixed[r][c] = values[r][c] != 0
		}
	}
	return b
}

func TestSolveEasyAllTechniques(t *testing.T) {
	b := boardOf(easySample)
	e, err := New(b)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	solved, st, err := e.Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !solved {
		t.Fatalf("expected a solution (nodes=%d dur=%v)", st.Nodes, st.Duration)
	}
	if diff := cmp.Diff(easySolution, b.Values); diff != "" {
		t.Fatalf("wrong solution (-want +got):\n%s", diff)
	}
	t.Logf("solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestSolveAllTechniqueCombinations(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		mrv := mask&1 != 0
		fc := mask&2 != 0
		ac3 := mask&4 != 0
		lcv := mask&8 != 0
		name := map[bool]string{true: "on", false: "off"}
		t.Run(
			"mrv="+name[mrv]+",fc="+name[fc]+",ac3="+name[ac3]+",lcv="+name[lcv],
			func(t *testing.T) {
				b := boardOf(easySample)
				e, err := New(b,
					WithMRV(mrv),
					WithForwardChecking(fc),
					WithAC3(ac3),
					WithLCV(lcv),
				)
				if err != nil {
					t.Fatalf("New failed: %v", err)
				}
				solved, st, err := e.Solve(context.Background())
				if err != nil {
					t.Fatalf("Solve failed: %v", err)
				}
				if !solved {
					t.Fatalf("no solution found (nodes=%d)", st.Nodes)
				}
				// The puzzle has a single solution, so every configuration
				// must land on the same grid.
				if diff := cmp.Diff(easySolution, b.Values); diff != "" {
					t.Fatalf("wrong solution (-want +got):\n%s", diff)
				}
				for r := 0; r < 9; r++ {
					for c := 0; c < 9; c++ {
						if b.Fixed[r][c] && b.Values[r][c] != easySample[r][c] {
							t.Fatalf("clue overwritten at r=%d c=%d", r, c)
						}
					}
				}
			})
	}
}

func TestSolveHardAllOnMatchesPlainBacktracking(t *testing.T) {
	full := boardOf(hardSample)
	e, err := New(full)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	solved, st, err := e.Solve(context.Background())
	if err != nil || !solved {
		t.Fatalf("full-technique solve failed: solved=%v err=%v (nodes=%d)", solved, err, st.Nodes)
	}
	if !validator.ValidateSolution(full) {
		t.Fatalf("full-technique solution is invalid")
	}

	plain := boardOf(hardSample)
	e2, err := New(plain,
		WithMRV(false), WithForwardChecking(false), WithAC3(false), WithLCV(false))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	solved, st, err = e2.Solve(context.Background())
	if err != nil || !solved {
		t.Fatalf("plain backtracking failed: solved=%v err=%v (nodes=%d)", solved, err, st.Nodes)
	}
	if diff := cmp.Diff(full.Values, plain.Values); diff != "" {
		t.Fatalf("configurations disagree on a single-solution puzzle (-full +plain):\n%s", diff)
	}
}

func TestSolveAlreadySolvedBoard(t *testing.T) {
	b := boardOf(easySolution)
	e, err := New(b)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	solved, st, err := e.Solve(context.Background())
	if err != nil || !solved {
		t.Fatalf("solved board rejected: solved=%v err=%v", solved, err)
	}
	if st.Nodes != 0 {
		t.Fatalf("expected zero assignments on a complete board, got %d nodes", st.Nodes)
	}
	if diff := cmp.Diff(easySolution, b.Values); diff != "" {
		t.Fatalf("complete board mutated (-want +got):\n%s", diff)
	}
}

func TestSolveSingleEmptyCell(t *testing.T) {
	values := easySolution
	values[4][4] = 0 // the only legal value left is 5
	b := boardOf(values)
	e, err := New(b)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	solved, _, err := e.Solve(context.Background())
	if err != nil || !solved {
		t.Fatalf("single-cell solve failed: solved=%v err=%v", solved, err)
	}
	if b.Values[4][4] != 5 {
		t.Fatalf("want 5 at (4,4), got %d", b.Values[4][4])
	}
}

func TestSolveUnsolvableDetectedBeforeSearch(t *testing.T) {
	b := boardOf(doomedSample)
	e, err := New(b)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	solved, st, err := e.Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if solved {
		t.Fatalf("contradictory puzzle reported solvable")
	}
	if st.Nodes != 0 {
		t.Fatalf("AC-3 pre-pass should fail before any assignment, got %d nodes", st.Nodes)
	}
	if diff := cmp.Diff(doomedSample, b.Values); diff != "" {
		t.Fatalf("board not restored (-want +got):\n%s", diff)
	}
}

func TestSolveUnsolvableRestoresBoard(t *testing.T) {
	// All techniques off so the search actually assigns before it fails.
	b := boardOf(doomedSample)
	e, err := New(b,
		WithMRV(false), WithForwardChecking(false), WithAC3(false), WithLCV(false))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	solved, _, err := e.Solve(context.Background())
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if solved {
		t.Fatalf("contradictory puzzle reported solvable")
	}
	if diff := cmp.Diff(doomedSample, b.Values); diff != "" {
		t.Fatalf("tentative assignments left behind (-want +got):\n%s", diff)
	}
}

func TestSolveCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b := boardOf(hardSample)
	e, err := New(b)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	solved, _, err := e.Solve(ctx)
	if solved {
		t.Fatalf("canceled solve reported success")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if diff := cmp.Diff(hardSample, b.Values); diff != "" {
		t.Fatalf("board not restored after cancellation (-want +got):\n%s", diff)
	}
}

func TestNewRejectsInvalidBoards(t *testing.T) {
	var invErr *domain.InvalidInputError

	if _, err := New(nil); !errors.As(err, &invErr) {
		t.Fatalf("nil board: want InvalidInputError, got %v", err)
	}

	bad := boardOf(easySample)
	bad.Values[0][2] = 12
	if _, err := New(bad); !errors.As(err, &invErr) {
		t.Fatalf("out-of-range value: want InvalidInputError, got %v", err)
	}
}

func TestUniqueSamples(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	unique, st, err := Unique(ctx, boardOf(easySample))
	if err != nil {
		t.Fatalf("Unique(easy) failed: %v", err)
	}
	if !unique {
		t.Fatalf("easy sample should have exactly one solution (nodes=%d)", st.Nodes)
	}

	unique, st, err = Unique(ctx, boardOf(hardSample))
	if err != nil {
		t.Fatalf("Unique(hard) failed: %v", err)
	}
	if !unique {
		t.Fatalf("hard sample should have exactly one solution (nodes=%d)", st.Nodes)
	}
}

func TestCSPAdapter(t *testing.T) {
	s := NewCSP(domain.AllTechniques())
	b := boardOf(easySample)
	solved, st, err := s.Solve(context.Background(), b)
	if err != nil || !solved {
		t.Fatalf("adapter solve failed: solved=%v err=%v (nodes=%d)", solved, err, st.Nodes)
	}
	if !validator.ValidateSolution(b) {
		t.Fatalf("adapter produced an invalid solution")
	}
}
