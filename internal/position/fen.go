package position

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidchess/corvid/internal/bitboard"
	"github.com/corvidchess/corvid/internal/zobrist"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var pieceFromLetter = map[byte]bitboard.Piece{
	'P': bitboard.MakePiece(bitboard.White, bitboard.Pawn),
	'N': bitboard.MakePiece(bitboard.White, bitboard.Knight),
	'B': bitboard.MakePiece(bitboard.White, bitboard.Bishop),
	'R': bitboard.MakePiece(bitboard.White, bitboard.Rook),
	'Q': bitboard.MakePiece(bitboard.White, bitboard.Queen),
	'K': bitboard.MakePiece(bitboard.White, bitboard.King),
	'p': bitboard.MakePiece(bitboard.Black, bitboard.Pawn),
	'n': bitboard.MakePiece(bitboard.Black, bitboard.Knight),
	'b': bitboard.MakePiece(bitboard.Black, bitboard.Bishop),
	'r': bitboard.MakePiece(bitboard.Black, bitboard.Rook),
	'q': bitboard.MakePiece(bitboard.Black, bitboard.Queen),
	'k': bitboard.MakePiece(bitboard.Black, bitboard.King),
}

// ErrInvalidFEN is returned for any malformed FEN string, per spec.md §7.
var ErrInvalidFEN = errors.New("invalid FEN")

// FromFEN parses a standard FEN string into a new Position. It never
// leaves a partially initialized Position on failure.
func FromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: not enough fields", ErrInvalidFEN)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}

	p := New()
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pc, ok := pieceFromLetter[ch]
			if !ok {
				return nil, fmt.Errorf("%w: unrecognized piece %q", ErrInvalidFEN, ch)
			}
			if file >= 8 {
				return nil, fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, rank+1)
			}
			p.addPiece(pc, bitboard.SquareFromFileRank(file, rank))
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("%w: rank %d does not sum to 8 files", ErrInvalidFEN, rank+1)
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = bitboard.White
	case "b":
		p.sideToMove = bitboard.Black
		p.hash ^= zobrist.Side
	default:
		return nil, fmt.Errorf("%w: side to move must be 'w' or 'b'", ErrInvalidFEN)
	}

	p.castleMask = whiteShortMask | whiteLongMask | blackShortMask | blackLongMask
	if fields[2] != "-" {
		for _, ch := range []byte(fields[2]) {
			switch ch {
			case 'K':
				p.castleMask &^= whiteShortMask
			case 'Q':
				p.castleMask &^= whiteLongMask
			case 'k':
				p.castleMask &^= blackShortMask
			case 'q':
				p.castleMask &^= blackLongMask
			default:
				return nil, fmt.Errorf("%w: invalid castling rights character %q", ErrInvalidFEN, ch)
			}
		}
	}

	p.epSquare = bitboard.NoSquare
	if fields[3] != "-" {
		sq, err := parseSquare(fields[3])
		if err != nil {
			return nil, err
		}
		p.epSquare = sq
	}

	p.halfMove = 0
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("%w: half-move clock is not a number", ErrInvalidFEN)
		}
		p.halfMove = n
	}

	p.ply = 0
	p.history[0] = StateInfo{
		Hash:          p.hash,
		Captured:      bitboard.NoPiece,
		EPSquare:      p.epSquare,
		CastleMask:    p.castleMask,
		HalfMoveClock: p.halfMove,
	}
	return p, nil
}

func parseSquare(s string) (bitboard.Square, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: invalid square %q", ErrInvalidFEN, s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return 0, fmt.Errorf("%w: square out of range %q", ErrInvalidFEN, s)
	}
	return bitboard.SquareFromFileRank(file, rank), nil
}

// ToFEN renders the position, excluding the full-move counter which is
// not tracked, per spec.md §4.2.
func (p *Position) ToFEN() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.mailbox[bitboard.SquareFromFileRank(file, rank)]
			if pc == bitboard.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte(byte('0' + empty))
				empty = 0
			}
			b.WriteByte(pc.Letter())
		}
		if empty > 0 {
			b.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	if p.sideToMove == bitboard.White {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}

	b.WriteByte(' ')
	rights := ""
	if p.castleMask&whiteShortMask == 0 {
		rights += "K"
	}
	if p.castleMask&whiteLongMask == 0 {
		rights += "Q"
	}
	if p.castleMask&blackShortMask == 0 {
		rights += "k"
	}
	if p.castleMask&blackLongMask == 0 {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	b.WriteString(rights)

	b.WriteByte(' ')
	if p.epSquare == bitboard.NoSquare {
		b.WriteByte('-')
	} else {
		b.WriteString(p.epSquare.String())
	}

	fmt.Fprintf(&b, " %d", p.halfMove)
	return b.String()
}
