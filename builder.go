package phonetic

import (
	"context"
	"fmt"

	pool "github.com/jolestar/go-commons-pool"
)

// Encoder represents a phonetic encoding algorithm. All encoders in the
// sub-packages of this module implement it.
//
// Encode must be a pure function: deterministic, total, and safe for
// concurrent use. Inputs without any Latin letter encode to an empty
// Result, never to an error.
type Encoder interface {
	Encode(word string) Result
}

// Result is the outcome of encoding a single word. Primary is the
// preferred code; Secondary is an alternate code for words whose
// pronunciation is ambiguous. For unambiguous words Secondary equals
// Primary.
type Result struct {
	Primary   string
	Secondary string
}

// Ambiguous reports whether the encoder detected a pronunciation
// ambiguity, i.e. whether Secondary differs from Primary.
func (r Result) Ambiguous() bool {
	return r.Primary != r.Secondary
}

// Codes returns the distinct non-empty codes of r, in primary-first
// order. Useful for building code sets for overlap matching.
func (r Result) Codes() []string {
	codes := make([]string, 0, 2)
	if r.Primary != "" {
		codes = append(codes, r.Primary)
	}
	if r.Secondary != "" && r.Secondary != r.Primary {
		codes = append(codes, r.Secondary)
	}
	return codes
}

// A Builder accumulates the primary and secondary symbol sequences of one
// encoding pass. Both sequences share a single cursor trajectory: a rule
// outcome appends to both of them at once, either the same symbols (Add)
// or diverging ones (AddAlt). Divergence is how "double" codes arise.
//
// A Builder is capped: once a sequence holds limit symbols, further
// symbols for it are dropped, so the first limit symbols in emission
// order always win. Encoders may stop dispatching as soon as Full()
// reports true.
type Builder struct {
	limit     int
	primary   []byte
	secondary []byte
}

// Add appends symbols to both the primary and the secondary sequence.
func (b *Builder) Add(symbols string) {
	b.AddAlt(symbols, symbols)
}

// AddAlt appends primary to the primary sequence and secondary to the
// secondary sequence. Either argument may be empty, which appends
// nothing to the respective sequence; the two codes may thus drift
// apart in length as well as in content.
func (b *Builder) AddAlt(primary, secondary string) {
	b.primary = appendCapped(b.primary, primary, b.limit)
	b.secondary = appendCapped(b.secondary, secondary, b.limit)
}

func appendCapped(buf []byte, symbols string, limit int) []byte {
	for i := 0; i < len(symbols); i++ {
		if limit > 0 && len(buf) >= limit {
			break
		}
		buf = append(buf, symbols[i])
	}
	return buf
}

// Full reports whether both sequences are at capacity. Builders without
// a positive limit never fill up.
func (b *Builder) Full() bool {
	return b.limit > 0 && len(b.primary) >= b.limit && len(b.secondary) >= b.limit
}

// Len returns the current length of the primary sequence.
func (b *Builder) Len() int {
	return len(b.primary)
}

// Result returns the accumulated codes. The returned strings are copies;
// the Builder may be discarded or reused afterwards.
func (b *Builder) Result() Result {
	return Result{
		Primary:   string(b.primary),
		Secondary: string(b.secondary),
	}
}

// Simple stringer for debugging purposes.
func (b *Builder) String() string {
	if b == nil {
		return "[nil builder]"
	}
	return fmt.Sprintf("[%s|%s]", b.primary, b.secondary)
}

// Builders are short-lived objects, one per call to Encode. To avoid
// multiple allocation of small objects we will pool them.
type builderPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBuilderPool *builderPool

func init() {
	globalBuilderPool = &builderPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			b := &Builder{}
			return b, nil
		})
	globalBuilderPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBuilderPool.opool = pool.NewObjectPool(globalBuilderPool.ctx, factory, config)
}

// NewPooledBuilder returns an empty Builder with the given symbol limit
// per sequence (limit <= 0 means unbounded). The Builder is pooled for
// efficiency; callers hand it back with Discard when the encoding pass
// is over.
func NewPooledBuilder(limit int) *Builder {
	o, _ := globalBuilderPool.opool.BorrowObject(globalBuilderPool.ctx)
	b := o.(*Builder)
	b.limit = limit
	b.primary = b.primary[:0]
	b.secondary = b.secondary[:0]
	return b
}

// Discard clears the Builder and puts it back into the pool.
func (b *Builder) Discard() {
	b.limit = 0
	b.primary = b.primary[:0]
	b.secondary = b.secondary[:0]
	_ = globalBuilderPool.opool.ReturnObject(globalBuilderPool.ctx, b)
}
