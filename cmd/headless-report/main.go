package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/Garsondee/Reversi-Board/internal/board"
)

type runStats struct {
	runIndex int
	seed     int64

	events     int
	accepted   int
	rejected   int
	misses     int // presses that landed off the board
	resizes    int
	degenerate int // resizes that produced an undrawable layout

	finalTurn     board.Color
	turnOK        bool
	maxHighlights int
	pieceLeaks    int // piece visuals not matching occupancy at the end

	// Smallest number of draws between two uses of the same face, per color.
	minRepeatGap map[board.Color]int
	faceUse      map[board.Color]map[board.FaceID]int
}

func main() {
	var runs int
	var events int
	var cells int
	var seedBase int64
	var seedStep int64

	flag.IntVar(&runs, "runs", 5, "number of headless sessions")
	flag.IntVar(&events, "events", 2000, "input events per session")
	flag.IntVar(&cells, "cells", board.DefaultCells, "cells per board side")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if events <= 0 {
		fmt.Println("error: -events must be > 0")
		return
	}
	if cells <= 0 || cells > 26 {
		fmt.Println("error: -cells must be in 1..26")
		return
	}

	fmt.Printf("=== Headless Board Report ===\n")
	fmt.Printf("runs=%d events=%d cells=%d seed_base=%d seed_step=%d\n\n", runs, events, cells, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runSession(i+1, seed, events, cells)
		all = append(all, stats)
		printRun(stats)
	}
	printAggregate(all)
}

// scriptEvents generates a random but plausible input stream: mostly
// pointer motion, some presses, occasional resizes. The first event is
// always a resize so the board has a layout.
func scriptEvents(rng *rand.Rand, n int) []board.Event {
	w, h := 800.0, 600.0
	out := make([]board.Event, 0, n)
	out = append(out, board.Resize(w, h))
	for len(out) < n {
		x := rng.Float64() * w
		y := rng.Float64() * h
		switch r := rng.Float64(); {
		case r < 0.01:
			w = float64(rng.Intn(1600))
			h = float64(rng.Intn(1200))
			if rng.Intn(10) == 0 {
				h = 0
			}
			out = append(out, board.Resize(w, h))
		case r < 0.25:
			out = append(out, board.PointerPress(x, y, board.ButtonLeft))
		case r < 0.40:
			out = append(out, board.PointerDrag(x, y, board.ButtonLeft))
		default:
			out = append(out, board.PointerMove(x, y))
		}
	}
	return out
}

func runSession(runIndex int, seed int64, events, cells int) runStats {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- deterministic report
	rec := board.NewRecorder()
	b := board.New(board.Context{Surface: rec, Rand: rng}, board.WithCells(cells))

	rs := runStats{
		runIndex: runIndex,
		seed:     seed,
		faceUse:  map[board.Color]map[board.FaceID]int{board.White: {}, board.Black: {}},
	}
	var faces []board.Placement
	for _, ev := range scriptEvents(rng, events) {
		rs.events++
		p, err := b.Apply(ev)
		switch ev.Kind {
		case board.EventResize:
			rs.resizes++
			if !b.Layout().Drawable() {
				rs.degenerate++
			}
		case board.EventPointerPress:
			switch {
			case err == nil:
				rs.accepted++
				faces = append(faces, p)
				rs.faceUse[p.Color][p.Face]++
			case errors.Is(err, board.ErrAlreadyOccupied):
				rs.rejected++
			default:
				rs.misses++
			}
			// Fill-ups restart the game so the pools keep rotating.
			if b.Moves() == cells*cells {
				b.Reset()
			}
		}
		if n := len(rec.Highlighted()); n > rs.maxHighlights {
			rs.maxHighlights = n
		}
	}
	rs.finalTurn = b.Turn()
	rs.turnOK = turnConsistent(b.Turn(), b.Moves())
	rs.minRepeatGap = repeatGaps(faces)
	rs.pieceLeaks = countLeaks(b, rec)
	return rs
}

// repeatGaps returns, per color, the fewest same-color draws between two
// uses of one face. Colors that never repeated report 0.
func repeatGaps(placements []board.Placement) map[board.Color]int {
	gaps := map[board.Color]int{}
	lastSeen := map[board.FaceID]int{}
	drawn := map[board.Color]int{}
	for _, p := range placements {
		n := drawn[p.Color]
		if prev, ok := lastSeen[p.Face]; ok {
			gap := n - prev
			if cur, ok := gaps[p.Color]; !ok || gap < cur {
				gaps[p.Color] = gap
			}
		}
		lastSeen[p.Face] = n
		drawn[p.Color] = n + 1
	}
	return gaps
}

func countLeaks(b *board.Board, rec *board.Recorder) int {
	if !b.Layout().Drawable() {
		return rec.Live(board.VisualPiece)
	}
	leaks := 0
	pieces := rec.Pieces()
	for c, v := range pieces {
		col, ok := b.Occupant(c)
		if !ok || col != v.Color {
			leaks++
		}
	}
	w, k := b.Counts()
	if len(pieces) != w+k {
		leaks += abs(w + k - len(pieces))
	}
	return leaks
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// turnConsistent reports whether the turn matches the parity of accepted
// moves since the last reset.
func turnConsistent(turn board.Color, movesSinceReset int) bool {
	if movesSinceReset%2 == 0 {
		return turn == board.First
	}
	return turn == board.Second
}

// spread returns the least and most used face counts.
func spread(use map[board.FaceID]int) (lo, hi int) {
	if len(use) == 0 {
		return 0, 0
	}
	counts := make([]int, 0, len(use))
	for _, n := range use {
		counts = append(counts, n)
	}
	sort.Ints(counts)
	return counts[0], counts[len(counts)-1]
}

func printRun(rs runStats) {
	fmt.Printf("--- run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("events=%d resizes=%d degenerate=%d\n", rs.events, rs.resizes, rs.degenerate)
	fmt.Printf("presses: accepted=%d rejected=%d off_board=%d\n", rs.accepted, rs.rejected, rs.misses)
	fmt.Printf("final_turn=%s turn_parity_ok=%v max_highlighted=%d piece_leaks=%d\n", rs.finalTurn, rs.turnOK, rs.maxHighlights, rs.pieceLeaks)
	for _, c := range []board.Color{board.White, board.Black} {
		lo, hi := spread(rs.faceUse[c])
		fmt.Printf("%s faces: used=%d min_use=%d max_use=%d min_repeat_gap=%d\n",
			c, len(rs.faceUse[c]), lo, hi, rs.minRepeatGap[c])
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	var accepted, rejected, misses, leaks int
	maxHL := 0
	var problems []string
	for _, rs := range all {
		accepted += rs.accepted
		rejected += rs.rejected
		misses += rs.misses
		leaks += rs.pieceLeaks
		if rs.maxHighlights > maxHL {
			maxHL = rs.maxHighlights
		}
		if rs.maxHighlights > 1 {
			problems = append(problems, fmt.Sprintf("run %d: %d cells highlighted at once", rs.runIndex, rs.maxHighlights))
		}
		if !rs.turnOK {
			problems = append(problems, fmt.Sprintf("run %d: turn out of step with move parity", rs.runIndex))
		}
		if rs.pieceLeaks > 0 {
			problems = append(problems, fmt.Sprintf("run %d: %d piece visuals out of sync", rs.runIndex, rs.pieceLeaks))
		}
	}
	fmt.Printf("=== Aggregate ===\n")
	fmt.Printf("accepted=%d rejected=%d off_board=%d max_highlighted=%d piece_leaks=%d\n", accepted, rejected, misses, maxHL, leaks)
	if len(problems) == 0 {
		fmt.Println("invariants: ok")
		return
	}
	fmt.Printf("invariants: %d problem(s)\n  %s\n", len(problems), strings.Join(problems, "\n  "))
}
