package reverso

import (
	"context"
	"unicode/utf8"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/reverso/casing"
)

// scratch is the work area for reversing a single run of letters.
type scratch struct {
	runes  []rune         // code-points of the run
	mask   []casing.Class // case classes of the run, before reversal
	pooled bool           // has been borrowed from the pool
}

// Scratch buffers larger than this will not be kept in the pool.
const maxPooledRunes = 4096

// Reversing letters produces a high fluctuation of short-lived scratch
// buffers. To avoid multiple allocation of small objects we will pool them.
type scratchPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScratchPool *scratchPool

func init() {
	globalScratchPool = &scratchPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			sc := &scratch{
				runes: make([]rune, 0, 32),
				mask:  make([]casing.Class, 0, 32),
			}
			return sc, nil
		})
	globalScratchPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScratchPool.opool = pool.NewObjectPool(globalScratchPool.ctx, factory, config)
}

// borrowScratch returns a scratch buffer from the pool. If the pool fails to
// deliver one, a fresh buffer is returned.
func borrowScratch() *scratch {
	o, err := globalScratchPool.opool.BorrowObject(globalScratchPool.ctx)
	if err != nil {
		CT().Errorf("reverso: cannot borrow scratch buffer: %v", err)
		return &scratch{}
	}
	sc := o.(*scratch)
	sc.pooled = true
	return sc
}

// release clears the scratch buffer and puts it back into the pool.
func (sc *scratch) release() {
	if !sc.pooled {
		return
	}
	if cap(sc.runes) > maxPooledRunes {
		sc.runes, sc.mask = nil, nil
	}
	sc.runes = sc.runes[:0]
	sc.mask = sc.mask[:0]
	sc.pooled = false
	_ = globalScratchPool.opool.ReturnObject(globalScratchPool.ctx, sc)
}

func (sc *scratch) loadString(word string) {
	sc.runes = sc.runes[:0]
	for _, r := range word {
		sc.runes = append(sc.runes, r)
	}
}

func (sc *scratch) loadBytes(word []byte) {
	sc.runes = sc.runes[:0]
	for len(word) > 0 {
		r, size := utf8.DecodeRune(word)
		sc.runes = append(sc.runes, r)
		word = word[size:]
	}
}

// reverse reverses the loaded code-points and re-applies the case pattern
// found before reversal, position by position.
func (sc *scratch) reverse() {
	sc.mask = casing.Mask(sc.mask, sc.runes)
	for i, j := 0, len(sc.runes)-1; i < j; i, j = i+1, j-1 {
		sc.runes[i], sc.runes[j] = sc.runes[j], sc.runes[i]
	}
	casing.ApplyMask(sc.mask, sc.runes)
}

// appendTo appends the UTF-8 encoding of the loaded code-points to b.
func (sc *scratch) appendTo(b []byte) []byte {
	var enc [utf8.UTFMax]byte
	for _, r := range sc.runes {
		n := utf8.EncodeRune(enc[:], r)
		b = append(b, enc[:n]...)
	}
	return b
}
