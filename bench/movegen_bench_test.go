package bench

import (
	"testing"

	"github.com/corvidchess/corvid/internal/move"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
)

func benchGenerateMoves(b *testing.B, fen string) {
	pos, err := position.FromFEN(fen)
	if err != nil {
		b.Fatalf("FromFEN: %v", err)
	}
	buf := make([]move.Move, 0, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = movegen.Generate(pos, buf[:0])
	}
}

func BenchmarkGenerateMoves_Initial(b *testing.B) {
	benchGenerateMoves(b, position.StartFEN)
}

func BenchmarkGenerateMoves_Kiwipete(b *testing.B) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	benchGenerateMoves(b, fen)
}

func BenchmarkGenerateMoves_Pos6(b *testing.B) {
	fen := "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10"
	benchGenerateMoves(b, fen)
}

func benchCaptures(b *testing.B, fen string) {
	pos, err := position.FromFEN(fen)
	if err != nil {
		b.Fatalf("FromFEN: %v", err)
	}
	buf := make([]move.Move, 0, 64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = movegen.GenerateCaptures(pos, buf[:0])
	}
}

func BenchmarkGenerateCaptures_EP(b *testing.B) {
	fen := "k7/8/8/3pP3/8/8/8/7K w - d6 0 2"
	benchCaptures(b, fen)
}

func BenchmarkMakeUnmake_AllMoves_Initial(b *testing.B) {
	pos, err := position.FromFEN(position.StartFEN)
	if err != nil {
		b.Fatalf("FromFEN: %v", err)
	}
	moves := movegen.Generate(pos, make([]move.Move, 0, 32))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			pos.MakeMove(m)
			pos.UnmakeMove(m)
		}
	}
}
