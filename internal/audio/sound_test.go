package audio

import (
	"math"
	"testing"

	"github.com/Garsondee/Reversi-Board/internal/board"
	"github.com/gopxl/beep"
)

func peak(s beep.Streamer, n int) float64 {
	buf := make([][2]float64, n)
	got, _ := s.Stream(buf)
	m := 0.0
	for i := 0; i < got; i++ {
		m = math.Max(m, math.Abs(buf[i][0]))
	}
	return m
}

func TestClickGenerator_DecaysAndRespectsGain(t *testing.T) {
	loud := NewClickGenerator(sampleRate, 880, 1)
	first := peak(loud, 441)
	later := peak(loud, 441)
	if first == 0 {
		t.Fatal("expected audible click")
	}
	if later >= first {
		t.Fatalf("expected decay, got first=%.4f later=%.4f", first, later)
	}
	if p := peak(NewClickGenerator(sampleRate, 880, 0), 441); p != 0 {
		t.Fatalf("expected silence at zero gain, got %.4f", p)
	}
}

func TestBuzzGenerator_FadesIn(t *testing.T) {
	g := NewBuzzGenerator(sampleRate, 120, 1)
	buf := make([][2]float64, 2)
	g.Stream(buf)
	if buf[0][0] != 0 {
		t.Fatalf("expected first sample silent, got %.4f", buf[0][0])
	}
	if p := peak(g, sampleRate.N(buzzDuration)); p <= 0 || p > 0.2 {
		t.Fatalf("expected bounded buzz, got peak %.4f", p)
	}
}

func TestTakeLimitsLength(t *testing.T) {
	s := beep.Take(100, NewBuzzGenerator(sampleRate, 120, 1))
	buf := make([][2]float64, 512)
	n, ok := s.Stream(buf)
	if n != 100 || !ok {
		t.Fatalf("expected 100 samples, got %d ok=%v", n, ok)
	}
	if n, ok = s.Stream(buf); n != 0 || ok {
		t.Fatalf("expected drained streamer, got %d ok=%v", n, ok)
	}
}

func TestSoundManager_UninitializedIsSilent(t *testing.T) {
	sm := NewSoundManager(0.5)
	sm.Place(board.White)
	sm.Reject()
	sm.Close()
	var p Player = Silent{}
	p.Place(board.Black)
	p.Reject()
	p.Close()
}
