package labels

import (
	"fmt"
	"sort"

	"github.com/opencoff/go-chd"
	lru "github.com/opencoff/golang-lru"

	"github.com/floriskappen/nlth-engine/poker"
)

// Indexer canonicalizes a (hole cards, board cards) combination into a
// stable key and resolves it to a row index in a round's Table via a
// minimal perfect hash built once over the full key set, fronted by an
// LRU cache since CFR traversals revisit the same information sets
// often.
type Indexer struct {
	keys  []string
	hash  *chd.CHD
	cache *lru.Cache
}

// cacheSize bounds the LRU's resident set; repeated lookups during a
// single traversal pass hit it far more often than they miss.
const cacheSize = 1 << 16

// NewIndexer builds a minimal perfect hash over every canonical key the
// caller expects to look up (typically every isomorphism class for one
// round, precomputed offline). The row Index returns for a key is the
// slot the perfect hash assigns it; it does not follow the order in
// which keys are supplied.
func NewIndexer(keys []string) (*Indexer, error) {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)

	builder := chd.NewBuilder()
	for _, k := range sorted {
		builder.Add([]byte(k))
	}
	h, err := builder.Freeze(chd.DefaultLoadFactor)
	if err != nil {
		return nil, fmt.Errorf("labels: building perfect hash: %w", err)
	}

	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("labels: allocating lookup cache: %w", err)
	}

	return &Indexer{keys: sorted, hash: h, cache: cache}, nil
}

// Index resolves a canonical key to its row in the table the Indexer was
// built over.
func (idx *Indexer) Index(key string) uint32 {
	if v, ok := idx.cache.Get(key); ok {
		return v.(uint32)
	}
	row := idx.hash.Find([]byte(key))
	idx.cache.Add(key, row)
	return row
}

// CanonicalKey builds the stable string key for a (hole, board)
// combination: hole cards sorted ascending, then board cards in dealt
// order, so the same two hole cards given in either order map to the
// same key. Board order and suits are kept as given.
func CanonicalKey(hole [2]poker.Card, board []poker.Card) string {
	h0, h1 := hole[0], hole[1]
	if h1 < h0 {
		h0, h1 = h1, h0
	}
	buf := make([]byte, 0, 4+2*len(board))
	buf = append(buf, byte(h0), byte(h1))
	for _, c := range board {
		buf = append(buf, byte(c))
	}
	return string(buf)
}
