package spin

import "sync"

// HighlightSprite is one reusable win-highlight visual. Ownership moves
// to the caller on Acquire and back to the pool on Release; a sprite is
// never shared between two live usages
type HighlightSprite struct {
	Row    int
	Col    int
	Symbol Symbol
}

// SpritePool is a fixed-capacity arena of highlight sprites with
// explicit acquire/release. Release clears sprite state before the
// sprite becomes available again, so a reuse can never show stale
// position or symbol binding
type SpritePool struct {
	mu       sync.Mutex
	free     []*HighlightSprite
	capacity int
}

// NewSpritePool pre-allocates capacity sprites
func NewSpritePool(capacity int) *SpritePool {
	p := &SpritePool{
		free:     make([]*HighlightSprite, 0, capacity),
		capacity: capacity,
	}
	for i := 0; i < capacity; i++ {
		p.free = append(p.free, &HighlightSprite{})
	}
	return p
}

// Acquire takes a sprite out of the pool
func (p *SpritePool) Acquire() (*HighlightSprite, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.free) == 0 {
		return nil, ErrPoolExhausted
	}
	s := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	return s, nil
}

// Release clears the sprite and returns it to the pool. Releasing nil
// is a no-op
func (p *SpritePool) Release(s *HighlightSprite) {
	if s == nil {
		return
	}
	*s = HighlightSprite{}

	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.free) < p.capacity {
		p.free = append(p.free, s)
	}
}

// Available returns the number of sprites currently in the pool
func (p *SpritePool) Available() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}
