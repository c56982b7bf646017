package commutation

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/circuitkit/circuitkit/pkg/cache"
	"github.com/circuitkit/circuitkit/pkg/ops"
)

// Oracle decides whether two operations commute. IsCommuting is the
// canonical implementation; a Memo wraps any Oracle with a verdict cache.
type Oracle func(a, b *ops.Operation) (bool, error)

// Memo caches commutation verdicts. Building a DAG checks the same
// operation pairs against the oracle many times over; the memo keys each
// pair by a structural fingerprint so repeated checks are a map lookup.
// The key is order-independent, matching the symmetry of the verdict.
type Memo struct {
	oracle Oracle
	store  cache.Cache
}

// NewMemo wraps an oracle with a verdict cache. A nil oracle defaults to
// IsCommuting; a nil store defaults to a fresh in-memory cache.
func NewMemo(oracle Oracle, store cache.Cache) *Memo {
	if oracle == nil {
		oracle = IsCommuting
	}
	if store == nil {
		store = cache.NewMemoryCache()
	}
	return &Memo{oracle: oracle, store: store}
}

// IsCommuting returns the cached verdict for the pair, consulting the
// wrapped oracle on a miss. Oracle errors are never cached.
func (m *Memo) IsCommuting(a, b *ops.Operation) (bool, error) {
	ctx := context.Background()
	key := pairKey(a, b)

	if data, hit, err := m.store.Get(ctx, key); err == nil && hit && len(data) == 1 {
		return data[0] == 1, nil
	}

	verdict, err := m.oracle(a, b)
	if err != nil {
		return verdict, err
	}

	payload := []byte{0}
	if verdict {
		payload[0] = 1
	}
	// A failed write only costs a future oracle call.
	_ = m.store.Set(ctx, key, payload, 0)
	return verdict, nil
}

// pairKey builds an order-independent cache key from the two operations'
// structural fingerprints.
func pairKey(a, b *ops.Operation) string {
	fa, fb := Fingerprint(a), Fingerprint(b)
	if fb < fa {
		fa, fb = fb, fa
	}
	return cache.Key("verdict", fa, fb)
}

// Fingerprint returns a string that uniquely identifies an operation's
// kind, wires, parameters, and adjoint marker. Two operations with equal
// fingerprints are interchangeable for commutation purposes.
func Fingerprint(op *ops.Operation) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(int(op.Kind())))
	sb.WriteByte('|')
	for i, w := range op.TargetWires() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(w))
	}
	sb.WriteByte('|')
	if op.IsControlled() {
		for i, w := range op.ControlWires() {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(w))
		}
	}
	sb.WriteByte('|')
	for i, p := range op.Parameters() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(math.Float64bits(p), 16))
	}
	if op.IsAdjoint() {
		sb.WriteString("|adj")
	}
	return sb.String()
}
