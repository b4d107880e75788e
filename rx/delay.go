package rx

// Delay arms a one-shot timer on the first poll and passes every item
// through unchanged once that initial delay has elapsed.
func Delay[T any](upstream Pullable[T], f func() Completable) Pullable[T] {
	var timer Completable
	elapsed := false

	return Func[T](func(cx Context) Poll[T] {
		if !elapsed {
			if timer == nil {
				timer = f()
			}
			if !timer.Poll(cx).Ready {
				return PendingPoll[T]()
			}
			elapsed = true
		}
		return upstream.Poll(cx)
	})
}
