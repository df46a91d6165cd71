package bench

import (
	"testing"

	"mailbox-chess/mailbox"
)

func benchLegalMoves(b *testing.B, fen string) {
	p, err := mailbox.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.LegalMoves()
	}
}

func BenchmarkLegalMoves_Initial(b *testing.B) {
	benchLegalMoves(b, mailbox.FENStartPos)
}

func BenchmarkLegalMoves_Kiwipete(b *testing.B) {
	benchLegalMoves(b, mailbox.FENKiwipete)
}

func BenchmarkLegalMoves_Pos6(b *testing.B) {
	benchLegalMoves(b, mailbox.FENPosition6)
}

func BenchmarkLegalMoves_EP(b *testing.B) {
	benchLegalMoves(b, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
}

func BenchmarkInCheck_Kiwipete(b *testing.B) {
	p := mailbox.MustParseFEN(mailbox.FENKiwipete)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.InCheck()
	}
}

// Rotation is paid once per generated successor.
func BenchmarkRotated(b *testing.B) {
	p := mailbox.MustParseFEN(mailbox.FENKiwipete)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Rotated()
	}
}

func BenchmarkEvaluate(b *testing.B) {
	p := mailbox.MustParseFEN(mailbox.FENKiwipete)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mailbox.Evaluate(&p)
	}
}
