// Package position implements the bitboard position representation:
// incremental Zobrist hash, castle/en-passant/half-move state, and the
// reversible make/unmake pair the search relies on. Grounded on the
// teacher's goosemg/board.go and goosemg/makemove.go, adapted to the
// StateInfo-stack contract and 16-bit Move encoding spec.md §3/§4.2 name.
package position

import (
	"github.com/corvidchess/corvid/internal/bitboard"
	"github.com/corvidchess/corvid/internal/zobrist"
)

// MaxPly bounds the state stack depth, per spec.md §3.
const MaxPly = 256

// Named home squares for castling legality.
const (
	squareA1 bitboard.Square = 0
	squareE1 bitboard.Square = 4
	squareG1 bitboard.Square = 6
	squareH1 bitboard.Square = 7
	squareA8 bitboard.Square = 56
	squareC1 bitboard.Square = 2
	squareC8 bitboard.Square = 58
	squareD1 bitboard.Square = 3
	squareD8 bitboard.Square = 59
	squareE8 bitboard.Square = 60
	squareF1 bitboard.Square = 5
	squareF8 bitboard.Square = 61
	squareG8 bitboard.Square = 62
	squareH8 bitboard.Square = 63
)

var (
	whiteShortMask = squareE1.Bit() | squareH1.Bit()
	whiteLongMask  = squareE1.Bit() | squareA1.Bit()
	blackShortMask = squareE8.Bit() | squareH8.Bit()
	blackLongMask  = squareE8.Bit() | squareA8.Bit()
)

// StateInfo is the per-ply undo record described in spec.md §3.
type StateInfo struct {
	Hash          uint64
	Captured      bitboard.Piece
	EPSquare      bitboard.Square
	CastleMask    bitboard.Bitboard
	HalfMoveClock int
}

// Position is the live, mutable board state.
type Position struct {
	pieceBB    [12]bitboard.Bitboard
	colorBB    [2]bitboard.Bitboard
	mailbox    [64]bitboard.Piece
	sideToMove bitboard.Color
	ply        int
	hash       uint64

	castleMask bitboard.Bitboard // touched-squares accumulator, spec.md §3
	epSquare   bitboard.Square
	halfMove   int

	history [MaxPly * 2]StateInfo

	// Move-generator scratch, rebuilt by movegen on every call. Exported
	// fields so internal/movegen (a separate package) can fill
	// and read them without a dependency cycle.
	Checkers    bitboard.Bitboard
	Pinned      bitboard.Bitboard
	Danger      bitboard.Bitboard
	CaptureMask bitboard.Bitboard
	QuietMask   bitboard.Bitboard
}

// New returns an empty, zeroed position (all squares empty). Callers
// normally use FromFEN instead.
func New() *Position {
	p := &Position{epSquare: bitboard.NoSquare}
	for i := range p.mailbox {
		p.mailbox[i] = bitboard.NoPiece
	}
	return p
}

// SideToMove reports which color is to move.
func (p *Position) SideToMove() bitboard.Color { return p.sideToMove }

// Ply returns the number of half-moves made since construction.
func (p *Position) Ply() int { return p.ply }

// Hash returns the incrementally maintained Zobrist key.
func (p *Position) Hash() uint64 { return p.hash }

// HalfMoveClock returns the plies since the last capture or pawn move.
func (p *Position) HalfMoveClock() int { return p.halfMove }

// EPSquare returns the current en-passant target square, or NoSquare.
func (p *Position) EPSquare() bitboard.Square { return p.epSquare }

// PieceAt returns the piece occupying sq, or NoPiece.
func (p *Position) PieceAt(sq bitboard.Square) bitboard.Piece { return p.mailbox[sq] }

// PieceBB returns the bitboard for one color+type combination.
func (p *Position) PieceBB(c bitboard.Color, pt bitboard.PieceType) bitboard.Bitboard {
	return p.pieceBB[bitboard.MakePiece(c, pt)]
}

// PieceTypeBB returns the union of both colors' bitboards for pt.
func (p *Position) PieceTypeBB(pt bitboard.PieceType) bitboard.Bitboard {
	return p.pieceBB[bitboard.MakePiece(bitboard.White, pt)] | p.pieceBB[bitboard.MakePiece(bitboard.Black, pt)]
}

// ColorBB returns the occupancy of one color.
func (p *Position) ColorBB(c bitboard.Color) bitboard.Bitboard { return p.colorBB[c] }

// Occupied returns the full-board occupancy.
func (p *Position) Occupied() bitboard.Bitboard { return p.colorBB[bitboard.White] | p.colorBB[bitboard.Black] }

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c bitboard.Color) bitboard.Square {
	return p.pieceBB[bitboard.MakePiece(c, bitboard.King)].LSB()
}

// CastleMask exposes the touched-squares accumulator (read-only).
func (p *Position) CastleMask() bitboard.Bitboard { return p.castleMask }

// CanCastleShort reports whether c's short-castle squares are untouched.
func (p *Position) CanCastleShort(c bitboard.Color) bool {
	if c == bitboard.White {
		return p.castleMask&whiteShortMask == 0
	}
	return p.castleMask&blackShortMask == 0
}

// CanCastleLong reports whether c's long-castle squares are untouched.
func (p *Position) CanCastleLong(c bitboard.Color) bool {
	if c == bitboard.White {
		return p.castleMask&whiteLongMask == 0
	}
	return p.castleMask&blackLongMask == 0
}

func (p *Position) addPiece(pc bitboard.Piece, sq bitboard.Square) {
	p.mailbox[sq] = pc
	bit := sq.Bit()
	p.pieceBB[pc] |= bit
	p.colorBB[pc.Color()] |= bit
	p.hash ^= zobrist.PieceKey(pc, sq)
}

func (p *Position) removePiece(sq bitboard.Square) bitboard.Piece {
	pc := p.mailbox[sq]
	if pc == bitboard.NoPiece {
		return bitboard.NoPiece
	}
	bit := sq.Bit()
	p.mailbox[sq] = bitboard.NoPiece
	p.pieceBB[pc] &^= bit
	p.colorBB[pc.Color()] &^= bit
	p.hash ^= zobrist.PieceKey(pc, sq)
	return pc
}

func (p *Position) movePiece(from, to bitboard.Square) bitboard.Piece {
	pc := p.removePiece(from)
	p.addPiece(pc, to)
	return pc
}

// ComputeHash recomputes the Zobrist key from scratch, for invariant
// checks; must equal Hash() at every quiescent point, per spec.md §3.
//
// This engine uses the reduced form spec.md §3 invariant 3 explicitly
// allows: the incremental hash XORs in piece-square keys and the
// side-to-move key only, omitting castle-rights and en-passant-file
// keys. Applied consistently (here and in ComputeHash), this is a valid
// choice per the invariant's text; see DESIGN.md for the trade-off.
func (p *Position) ComputeHash() uint64 {
	var h uint64
	for sq := bitboard.Square(0); sq < 64; sq++ {
		if pc := p.mailbox[sq]; pc != bitboard.NoPiece {
			h ^= zobrist.PieceKey(pc, sq)
		}
	}
	if p.sideToMove == bitboard.Black {
		h ^= zobrist.Side
	}
	return h
}

// lastState returns the StateInfo most recently pushed.
func (p *Position) lastState() *StateInfo { return &p.history[p.ply] }
