package pipeline

import "sync/atomic"

// Progress counts finished chunk tasks. Workers only ever increment it;
// readers (a progress bar, logs) poll Done. A nil *Progress is valid and
// ignores updates.
type Progress struct {
	done  atomic.Int64
	total atomic.Int64
}

// NewProgress returns a counter expecting total tasks.
func NewProgress(total int) *Progress {
	p := &Progress{}
	p.total.Store(int64(total))
	return p
}

// Advance records one finished task and returns the new count.
func (p *Progress) Advance() int64 {
	if p == nil {
		return 0
	}
	return p.done.Add(1)
}

// SetTotal replaces the expected task count once the plan is known.
func (p *Progress) SetTotal(total int) {
	if p != nil {
		p.total.Store(int64(total))
	}
}

// Done returns the number of finished tasks.
func (p *Progress) Done() int64 {
	if p == nil {
		return 0
	}
	return p.done.Load()
}

// Total returns the expected number of tasks.
func (p *Progress) Total() int64 {
	if p == nil {
		return 0
	}
	return p.total.Load()
}
