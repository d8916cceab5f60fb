package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/hashing"
)

func mustState(t *testing.T, moves ...string) *engine.BoardState {
	t.Helper()
	s, err := engine.ReplayNotation(moves...)
	if err != nil {
		t.Fatalf("ReplayNotation(%v) failed: %v", moves, err)
	}
	return s
}

const initialDiagram = `  +------------------------+
8 | r  n  b  q  k  b  n  r |
7 | p  p  p  p  p  p  p  p |
6 | .  .  .  .  .  .  .  . |
5 | .  .  .  .  .  .  .  . |
4 | .  .  .  .  .  .  .  . |
3 | .  .  .  .  .  .  .  . |
2 | P  P  P  P  P  P  P  P |
1 | R  N  B  Q  K  B  N  R |
  +------------------------+
    a  b  c  d  e  f  g  h
`

func TestRenderBoard_Plain(t *testing.T) {
	var buf bytes.Buffer
	RenderBoard(&buf, chess.StandardBoard(), false)

	if got := buf.String(); got != initialDiagram {
		t.Errorf("RenderBoard() =\n%s\nwant\n%s", got, initialDiagram)
	}
}

func TestRenderBoard_NoTrailingSpace(t *testing.T) {
	for _, colour := range []bool{false, true} {
		var buf bytes.Buffer
		RenderBoard(&buf, chess.StandardBoard(), colour)

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		last := lines[len(lines)-1]
		if last != "    a  b  c  d  e  f  g  h" {
			t.Errorf("colour=%v file labels = %q", colour, last)
		}
		for i, line := range lines {
			if strings.HasSuffix(line, " ") {
				t.Errorf("colour=%v line %d has trailing space: %q", colour, i+1, line)
			}
		}
	}
}

func TestRenderBoard_Colour(t *testing.T) {
	var buf bytes.Buffer
	RenderBoard(&buf, chess.StandardBoard(), true)
	got := buf.String()

	if !strings.Contains(got, "\x1b[") {
		t.Error("coloured diagram has no ANSI escape sequences")
	}
	for _, letter := range []string{"r", "K", "P"} {
		if !strings.Contains(got, " "+letter+" ") {
			t.Errorf("coloured diagram missing piece %q", letter)
		}
	}
}

func TestOutputMoves_Wrapping(t *testing.T) {
	tests := []struct {
		name    string
		moves   []string
		maxLine uint
		numbers bool
		want    string
	}{
		{"single ply", []string{"e2e4"}, 80, true, "1. e2e4\n"},
		{"three plies", []string{"e2e4", "e7e5", "g1f3"}, 80, true, "1. e2e4 e7e5 2. g1f3\n"},
		{"no numbers", []string{"e2e4", "e7e5", "g1f3"}, 80, false, "e2e4 e7e5 g1f3\n"},
		{"wrapped", []string{"e2e4", "e7e5", "g1f3", "b8c6"}, 16, true, "1. e2e4 e7e5 2.\ng1f3 b8c6\n"},
		{"no wrapping", []string{"e2e4", "e7e5", "g1f3", "b8c6"}, 0, true, "1. e2e4 e7e5 2. g1f3 b8c6\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfigBuilder().WithMaxLineLength(tt.maxLine).Build()
			cfg.Output.KeepMoveNumbers = tt.numbers

			var buf bytes.Buffer
			outputMoves(tt.moves, cfg, &buf)
			if got := buf.String(); got != tt.want {
				t.Errorf("outputMoves() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextWriter_WriteState(t *testing.T) {
	s := mustState(t, "e2e4", "e7e5")

	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithPlacement(true).WithOutput(&buf).Build()

	writer := NewStateWriter(&buf, cfg)
	if err := writer.WriteState(s, "game.txt"); err != nil {
		t.Fatalf("WriteState failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"[game.txt]\n",
		"1. e2e4 e7e5\n",
		"4 | .  .  .  .  P  .  .  . |",
		"5 | .  .  .  .  p  .  .  . |",
		"Placement: rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR\n",
		"White to move\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestTextWriter_Sections(t *testing.T) {
	s := mustState(t, "e2e4")

	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithBoard(false).WithMoves(false).Build()
	writer := NewTextWriter(&buf, cfg)

	if err := writer.WriteState(s, ""); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "Black to move\n" {
		t.Errorf("output = %q, want only the side to move", got)
	}

	buf.Reset()
	if err := writer.WriteState(engine.NewBoardState(), ""); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "\nWhite to move\n" {
		t.Errorf("second state output = %q, want blank separator", got)
	}
}

func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)

	if err := writer.WriteState(mustState(t, "e2e4", "d7d5", "e4d5"), "a.txt"); err != nil {
		t.Fatal(err)
	}
	if err := writer.WriteState(engine.NewBoardState(), "b.txt"); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Error("batch writer wrote before Close")
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var got JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(got.States) != 2 {
		t.Fatalf("len(States) = %d, want 2", len(got.States))
	}

	first := got.States[0]
	if first.Source != "a.txt" || first.PlyCount != 3 || first.SideToMove != "black" {
		t.Errorf("first state = %+v", first)
	}
	want := JSONMove{Ply: 3, Colour: "white", Notation: "e4d5", From: "e4", To: "d5", Piece: "wp", Captured: "bp"}
	if first.Moves[2] != want {
		t.Errorf("Moves[2] = %+v, want %+v", first.Moves[2], want)
	}
	if first.Moves[1].Colour != "black" || first.Moves[1].Captured != "" {
		t.Errorf("Moves[1] = %+v", first.Moves[1])
	}

	second := got.States[1]
	if second.PlyCount != 0 || len(second.Moves) != 0 || second.SideToMove != "white" {
		t.Errorf("second state = %+v", second)
	}
	if second.Placement != "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR" {
		t.Errorf("second placement = %q", second.Placement)
	}
}

func TestJSONWriter_SnapshotAtWrite(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)

	s := mustState(t, "e2e4")
	if err := writer.WriteState(s, ""); err != nil {
		t.Fatal(err)
	}
	s.Undo()
	if err := writer.Flush(); err != nil {
		t.Fatal(err)
	}

	var got JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.States[0].PlyCount != 1 {
		t.Errorf("PlyCount = %d, want 1 (state at time of write)", got.States[0].PlyCount)
	}
}

func TestJSONWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriterSingle(&buf)

	if err := writer.WriteState(mustState(t, "g1f3"), "inline"); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("single writer did not write immediately")
	}

	var got JSONState
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.Source != "inline" || got.Moves[0].Piece != "wN" {
		t.Errorf("state = %+v", got)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestNewStateWriter_Format(t *testing.T) {
	var buf bytes.Buffer
	if _, ok := NewStateWriter(&buf, config.NewConfig()).(*TextWriter); !ok {
		t.Error("default format should give a TextWriter")
	}
	cfg := config.NewConfigBuilder().WithOutputFormat(config.JSON).Build()
	if _, ok := NewStateWriter(&buf, cfg).(*JSONWriter); !ok {
		t.Error("JSON format should give a JSONWriter")
	}
}

func TestOutputState_Hash(t *testing.T) {
	s := mustState(t, "e2e4")

	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithBoard(false).WithMoves(false).WithHash(true).Build()
	OutputState(s, cfg, &buf)

	want := fmt.Sprintf("Hash: %016x\nBlack to move\n", hashing.StateHash(s))
	if got := buf.String(); got != want {
		t.Errorf("OutputState() = %q, want %q", got, want)
	}

	js := StateToJSON(s, "")
	if js.Hash != fmt.Sprintf("%016x", hashing.StateHash(s)) {
		t.Errorf("JSON hash = %q", js.Hash)
	}
}
