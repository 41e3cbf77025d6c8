// Package labels loads the opaque per-round abstraction byte vectors the
// engine consumes by index: information-set labels produced offline by a
// bucketing/clustering pass (out of scope for this module — see
// SPEC_FULL.md §4.H). The nlth package never imports this one; only the
// outer CLI/demo code wires a Table in.
package labels

import (
	"fmt"
	"os"

	"github.com/floriskappen/nlth-engine/internal/fileutil"
)

// Table is one post-flop round's label bytes, one entry per
// isomorphism-indexed (hole, board) combination.
type Table struct {
	Round int
	Bytes []byte
}

// LoadTable reads a single round's label byte vector from path.
func LoadTable(round int, path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("labels: reading %s: %w", path, err)
	}
	return Table{Round: round, Bytes: data}, nil
}

// SaveTable atomically writes t.Bytes to path, for tooling that
// regenerates label tables offline.
func SaveTable(t Table, path string) error {
	if err := fileutil.WriteFileAtomic(path, t.Bytes, 0o644); err != nil {
		return fmt.Errorf("labels: writing %s: %w", path, err)
	}
	return nil
}

// Lookup returns the label byte at row, panicking if row is out of range;
// a label table is fixed-size reference data, so an out-of-range row is a
// programming error in the caller (typically a mismatched Indexer).
func (t Table) Lookup(row int) byte {
	if row < 0 || row >= len(t.Bytes) {
		panic(fmt.Sprintf("labels: row %d out of range for round %d (%d rows)", row, t.Round, len(t.Bytes)))
	}
	return t.Bytes[row]
}
