package testutil

import "testing"

func TestReplayTestGame(t *testing.T) {
	tests := []struct {
		name    string
		pgn     string
		wantErr bool
	}{
		{
			name: "simple game with header",
			pgn: `[Event "Test"]
[Result "1-0"]

1. e4 e5 2. Nf3 1-0`,
		},
		{
			name: "game with castling",
			pgn:  `1. e4 e5 2. Nf3 Nc6 3. Bc4 Bc5 4. O-O *`,
		},
		{
			name: "game with a variation and a comment",
			pgn:  `1. e4 (1. d4 d5) {Ruy Lopez} e5 *`,
		},
		{
			name:    "unrecognized character is an error",
			pgn:     "1. e4 @oops *",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReplayTestGame(tt.pgn)
			if tt.wantErr && err == nil {
				t.Fatalf("ReplayTestGame() = nil error, want error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("ReplayTestGame() = %v, want no error", err)
			}
		})
	}
}

func TestMustReplayGame(t *testing.T) {
	b := MustReplayGame(t, "1. e4 e5 *")
	if b == nil {
		t.Fatal("MustReplayGame() returned nil for valid PGN")
	}
}
