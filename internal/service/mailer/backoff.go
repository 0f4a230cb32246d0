package mailer

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

// linearBackOff waits base*n before the n-th retry.
type linearBackOff struct {
	base time.Duration
	n    int
}

var _ backoff.BackOff = (*linearBackOff)(nil)

func newLinearBackOff(base time.Duration) *linearBackOff {
	return &linearBackOff{base: base}
}

func (b *linearBackOff) NextBackOff() time.Duration {
	b.n++
	return b.base * time.Duration(b.n)
}

func (b *linearBackOff) Reset() { b.n = 0 }
