package rx

// This file holds the one shared poll-round engine behind CombineLatestN
// and ZipN for every arity N in [2,9]. Go has no macro system to stamp out
// eight hand-written state machines, so instead each upstream is type-
// erased to Pullable[any] and the round logic lives here once; the public
// CombineLatestN/ZipN constructors in combine_latest.go and zip.go are
// thin typed wrappers that box their inputs in and unbox the result.

type anyAdapter[T any] struct {
	up Pullable[T]
}

func (a anyAdapter[T]) Poll(cx Context) Poll[any] {
	p := a.up.Poll(cx)
	switch {
	case p.Pending:
		return PendingPoll[any]()
	case p.Done:
		return DonePoll[any]()
	default:
		return ReadyPoll[any](p.Value)
	}
}

func erase[T any](p Pullable[T]) Pullable[any] {
	return anyAdapter[T]{up: p}
}

// naryResult is the type-erased outcome of one combineLatestCore/zipCore
// poll round.
type naryResult struct {
	pending bool
	done    bool
	value   []any
}

// combineLatestCore implements the CombineLatest-N round logic (§4.2):
// every poll round visits every non-done upstream in index order; a tuple
// is emitted once every slot has a value and at least one slot was updated
// this round. An upstream completing before ever producing a value forces
// immediate completion of the whole combinator, since it can then never
// contribute to a full tuple.
type combineLatestCore struct {
	ups       []Pullable[any]
	latest    []any
	has       []bool
	done      []bool
	doneCount int
	earlyDone bool
}

func newCombineLatestCore(ups []Pullable[any]) *combineLatestCore {
	n := len(ups)
	return &combineLatestCore{
		ups:    ups,
		latest: make([]any, n),
		has:    make([]bool, n),
		done:   make([]bool, n),
	}
}

func (c *combineLatestCore) poll(cx Context) naryResult {
	if c.earlyDone || c.doneCount == len(c.ups) {
		return naryResult{done: true}
	}

	anyUpdated := false
	for i, up := range c.ups {
		if c.done[i] {
			continue
		}
		p := up.Poll(cx)
		switch {
		case p.Pending:
			continue
		case p.Done:
			c.done[i] = true
			c.doneCount++
			if !c.has[i] {
				c.earlyDone = true
			}
		default:
			c.latest[i] = p.Value
			c.has[i] = true
			anyUpdated = true
		}
	}

	if c.earlyDone || c.doneCount == len(c.ups) {
		return naryResult{done: true}
	}

	allHas := true
	for _, h := range c.has {
		if !h {
			allHas = false
			break
		}
	}
	if allHas && anyUpdated {
		out := make([]any, len(c.latest))
		copy(out, c.latest)
		return naryResult{value: out}
	}
	return naryResult{pending: true}
}

// zipCore implements the Zip-N round logic (§4.2): a per-upstream FIFO
// queue, filled by polling any non-done upstream with an empty queue; a
// tuple is popped and emitted once every queue is non-empty. An upstream
// completing while its queue is empty ends the zip immediately, discarding
// whatever is left in the other queues.
type zipCore struct {
	ups      []Pullable[any]
	queues   [][]any
	done     []bool
	finished bool
}

func newZipCore(ups []Pullable[any]) *zipCore {
	return &zipCore{
		ups:    ups,
		queues: make([][]any, len(ups)),
		done:   make([]bool, len(ups)),
	}
}

func (z *zipCore) poll(cx Context) naryResult {
	if z.finished {
		return naryResult{done: true}
	}

	for i, up := range z.ups {
		if z.done[i] || len(z.queues[i]) > 0 {
			continue
		}
		p := up.Poll(cx)
		switch {
		case p.Pending:
			continue
		case p.Done:
			z.done[i] = true
		default:
			z.queues[i] = append(z.queues[i], p.Value)
		}
	}

	for i := range z.ups {
		if z.done[i] && len(z.queues[i]) == 0 {
			z.finished = true
			return naryResult{done: true}
		}
	}

	for i := range z.ups {
		if len(z.queues[i]) == 0 {
			return naryResult{pending: true}
		}
	}

	out := make([]any, len(z.ups))
	for i := range z.ups {
		out[i] = z.queues[i][0]
		z.queues[i] = z.queues[i][1:]
	}
	return naryResult{value: out}
}
