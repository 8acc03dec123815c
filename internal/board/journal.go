package board

import (
	"fmt"
	"strings"
)

// JournalEntry is one placement attempt.
type JournalEntry struct {
	Move     int // accepted move number; 0 for a rejection
	Cell     Cell
	Color    Color  // color whose turn it was
	Face     FaceID // empty for a rejection
	Rejected bool
	Owner    Color // occupant that caused a rejection
}

// String formats the entry as a fixed-width log line.
//
//	#012 black d5 black7.png
//	---- white d5 rejected (black)
func (e JournalEntry) String() string {
	if e.Rejected {
		return fmt.Sprintf("---- %-5s %-4s rejected (%s)", e.Color, e.Cell, e.Owner)
	}
	return fmt.Sprintf("#%03d %-5s %-4s %s", e.Move, e.Color, e.Cell, e.Face)
}

// Journal is an unbounded record of placement attempts.
type Journal struct {
	entries []JournalEntry
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

func (j *Journal) accept(p Placement) {
	j.entries = append(j.entries, JournalEntry{
		Move:  p.Move,
		Cell:  p.Cell,
		Color: p.Color,
		Face:  p.Face,
	})
}

func (j *Journal) reject(c Cell, turn, owner Color) {
	j.entries = append(j.entries, JournalEntry{
		Cell:     c,
		Color:    turn,
		Rejected: true,
		Owner:    owner,
	})
}

// Entries returns all recorded entries.
func (j *Journal) Entries() []JournalEntry {
	return j.entries
}

// Accepted returns only accepted placements.
func (j *Journal) Accepted() []JournalEntry {
	var out []JournalEntry
	for _, e := range j.entries {
		if !e.Rejected {
			out = append(out, e)
		}
	}
	return out
}

// Rejections counts rejected attempts.
func (j *Journal) Rejections() int {
	n := 0
	for _, e := range j.entries {
		if e.Rejected {
			n++
		}
	}
	return n
}

// Last returns the most recent n entries, oldest first.
func (j *Journal) Last(n int) []JournalEntry {
	if n <= 0 {
		return nil
	}
	if n >= len(j.entries) {
		return j.entries
	}
	return j.entries[len(j.entries)-n:]
}

// Clear drops every entry.
func (j *Journal) Clear() {
	j.entries = nil
}

// Transcript renders accepted moves as numbered pairs, one per line:
//
//	1. d5 e5
//	2. c4
func (j *Journal) Transcript() string {
	var sb strings.Builder
	accepted := j.Accepted()
	for i := 0; i < len(accepted); i += 2 {
		fmt.Fprintf(&sb, "%d. %s", i/2+1, accepted[i].Cell)
		if i+1 < len(accepted) {
			fmt.Fprintf(&sb, " %s", accepted[i+1].Cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Format returns the full journal, one entry per line.
func (j *Journal) Format() string {
	var sb strings.Builder
	for _, e := range j.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
