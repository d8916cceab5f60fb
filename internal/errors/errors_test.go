package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrOutOfBounds", ErrOutOfBounds, ErrOutOfBounds},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrInvalidNotation", ErrInvalidNotation, ErrInvalidNotation},
		{"ErrInvalidPlacement", ErrInvalidPlacement, ErrInvalidPlacement},
		{"ErrNothingToUndo", ErrNothingToUndo, ErrNothingToUndo},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrOutOfBounds, ErrInvalidSquare) {
		t.Error("ErrOutOfBounds should not match ErrInvalidSquare")
	}
	if errors.Is(ErrInvalidNotation, ErrInvalidSquare) {
		t.Error("ErrInvalidNotation should not match ErrInvalidSquare")
	}
}

func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:      ErrInvalidNotation,
				Ply:      7,
				MoveText: "e9e4",
				File:     "opening.txt",
				Line:     3,
			},
			contains: []string{"opening.txt:3", "ply 7", `"e9e4"`, "invalid move notation"},
		},
		{
			name:     "minimal context",
			err:      &MoveError{Err: ErrNothingToUndo},
			contains: []string{"nothing to undo"},
		},
		{
			name:     "file without line",
			err:      &MoveError{Err: ErrOutOfBounds, File: "stdin"},
			contains: []string{"stdin", "out of bounds"},
		},
		{
			name:     "no underlying error",
			err:      &MoveError{Ply: 2, MoveText: "undo"},
			contains: []string{"ply 2", "undo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestMoveError_Empty(t *testing.T) {
	if got := (&MoveError{}).Error(); got != "move error" {
		t.Errorf("empty MoveError.Error() = %q, want %q", got, "move error")
	}
}

func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{Err: ErrInvalidSquare, Ply: 1}

	if !errors.Is(errors.Unwrap(moveErr), ErrInvalidSquare) {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(moveErr), ErrInvalidSquare)
	}
	if !errors.Is(moveErr, ErrInvalidSquare) {
		t.Error("errors.Is(moveErr, ErrInvalidSquare) = false, want true")
	}
}

func TestMoveError_As(t *testing.T) {
	wrapped := fmt.Errorf("replay failed: %w", &MoveError{
		Err:      ErrOutOfBounds,
		Ply:      12,
		MoveText: "h8i9",
	})

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.Ply != 12 {
		t.Errorf("extracted.Ply = %d, want 12", extracted.Ply)
	}
	if extracted.MoveText != "h8i9" {
		t.Errorf("extracted.MoveText = %q, want %q", extracted.MoveText, "h8i9")
	}
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidPlacement, "reading board")

	if !errors.Is(wrapped, ErrInvalidPlacement) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !strings.Contains(wrapped.Error(), "reading board") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "anything") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrOutOfBounds, "row %d col %d", 8, 2)

	if !errors.Is(wrapped, ErrOutOfBounds) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !strings.Contains(wrapped.Error(), "row 8 col 2") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
	if Wrapf(nil, "%d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}
