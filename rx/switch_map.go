package rx

// SwitchMap replaces its inner stream every time upstream produces a new
// item, dropping whatever the previous inner was doing. It polls upstream
// first each round and then polls the current inner (if any), so with a
// synchronous upstream each inner emits one item before the next upstream
// item replaces it, and only the last inner drains fully (the pinned
// scenario in §8). It self-wakes after replacing an inner and after an
// inner is exhausted so a busy-poll executor keeps polling.
func SwitchMap[In, Out any](upstream Pullable[In], f func(In) Pullable[Out]) Pullable[Out] {
	var inner Pullable[Out]
	upstreamDone := false

	return Func[Out](func(cx Context) Poll[Out] {
		if !upstreamDone {
			up := upstream.Poll(cx)
			switch {
			case up.Done:
				upstreamDone = true
			case up.HasValue():
				inner = f(up.Value)
				cx.Wake()
			}
		}

		if inner != nil {
			ip := inner.Poll(cx)
			switch {
			case ip.Pending:
				return PendingPoll[Out]()
			case ip.Done:
				inner = nil
				if upstreamDone {
					return DonePoll[Out]()
				}
				cx.Wake()
				return PendingPoll[Out]()
			default:
				return ReadyPoll(ip.Value)
			}
		}

		if upstreamDone {
			return DonePoll[Out]()
		}
		return PendingPoll[Out]()
	})
}
