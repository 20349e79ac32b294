package navigation

import (
	"context"
	"sync"
)

// Tracker issues one token per navigation. Starting a navigation cancels
// the token of the previous one, so late fetches and pending scroll retries
// can tell they have been superseded.
type Tracker struct {
	mu      sync.Mutex
	gen     uint64
	current *Token
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Token identifies one navigation.
type Token struct {
	tracker *Tracker
	gen     uint64
	ctx     context.Context
	cancel  context.CancelFunc
}

// Begin cancels the active token and returns a new one derived from ctx.
func (t *Tracker) Begin(ctx context.Context) *Token {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current != nil {
		t.current.cancel()
	}
	t.gen++
	tokenCtx, cancel := context.WithCancel(ctx)
	t.current = &Token{tracker: t, gen: t.gen, ctx: tokenCtx, cancel: cancel}
	return t.current
}

// Close cancels the active token, as when the page unmounts.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current != nil {
		t.current.cancel()
		t.current = nil
	}
}

// Current reports whether tok is still the active navigation.
func (tok *Token) Current() bool {
	if tok == nil || tok.ctx.Err() != nil {
		return false
	}
	tok.tracker.mu.Lock()
	defer tok.tracker.mu.Unlock()
	return tok.tracker.current == tok
}

// Context is cancelled when the token is superseded.
func (tok *Token) Context() context.Context { return tok.ctx }

// Generation is the sequence number of the token.
func (tok *Token) Generation() uint64 { return tok.gen }

// Cancel abandons the navigation.
func (tok *Token) Cancel() { tok.cancel() }
