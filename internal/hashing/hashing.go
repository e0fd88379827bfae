// Package hashing provides position hashing and duplicate detection for
// game sessions.
package hashing

import (
	"fmt"
	"log/slog"

	cchess "github.com/corentings/chess/v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

func logger() *slog.Logger {
	return slog.Default().With("package", "hashing")
}

// GenerateZobristHash returns the Polyglot-compatible Zobrist key of the
// position on b: placement, side to move, castling rights and en passant.
// Clocks are not part of the key.
func GenerateZobristHash(b *chess.Board) (uint64, error) {
	return hashFEN(engine.BoardToFEN(b, engine.InitialClocks))
}

func hashFEN(fen string) (uint64, error) {
	// A hasher keeps per-call state, so each call gets its own.
	h, err := cchess.NewZobristHasher().HashPosition(fen)
	if err != nil {
		return 0, fmt.Errorf("hashing %q: %w", fen, err)
	}
	return cchess.ZobristHashToUint64(h), nil
}

// DuplicateDetector tracks the final positions of finished games.
type DuplicateDetector struct {
	// hashTable stores seen signatures by final position key
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires equal ply counts
	useExactMatch bool
	// maxCapacity limits stored signatures; 0 means unlimited
	maxCapacity int
	entries     int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	hash           func(*chess.Board) (uint64, error)
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist key of the final position
	Hash uint64
	// MoveCount is the number of half-moves in the game
	MoveCount int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
		hash:          GenerateZobristHash,
	}
}

// CheckAndAdd checks if a game is a duplicate and remembers it.
// Returns true if the game is a duplicate. Once the detector is full new
// games are still checked but no longer stored. A game whose position
// cannot be hashed is never a duplicate and is not stored.
func (d *DuplicateDetector) CheckAndAdd(g *game.GameState) bool {
	if g == nil {
		return false
	}

	key, err := d.hash(g.Board())
	if err != nil {
		logger().Warn("duplicate check skipped", "error", err)
		return false
	}
	sig := GameSignature{
		Hash:      key,
		MoveCount: len(g.History()),
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if !d.IsFull() {
		d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
		d.entries++
	}
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash {
		return false
	}
	return !d.useExactMatch || a.MoveCount == b.MoveCount
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.entries
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.entries >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.entries = 0
	d.duplicateCount = 0
}
