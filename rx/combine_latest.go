package rx

// CombineLatest2 emits Tuple2(x1,x2) whenever both upstreams have produced
// at least one value and at least one of them updated this round. See
// combineLatestCore for the shared round logic.
func CombineLatest2[T1, T2 any](s1 Pullable[T1], s2 Pullable[T2]) Pullable[Tuple2[T1, T2]] {
	core := newCombineLatestCore([]Pullable[any]{erase(s1), erase(s2)})
	return Func[Tuple2[T1, T2]](func(cx Context) Poll[Tuple2[T1, T2]] {
		r := core.poll(cx)
		switch {
		case r.pending:
			return PendingPoll[Tuple2[T1, T2]]()
		case r.done:
			return DonePoll[Tuple2[T1, T2]]()
		default:
			return ReadyPoll(Tuple2[T1, T2]{
				V1: r.value[0].(T1),
				V2: r.value[1].(T2),
			})
		}
	})
}

func CombineLatest3[T1, T2, T3 any](s1 Pullable[T1], s2 Pullable[T2], s3 Pullable[T3]) Pullable[Tuple3[T1, T2, T3]] {
	core := newCombineLatestCore([]Pullable[any]{erase(s1), erase(s2), erase(s3)})
	return Func[Tuple3[T1, T2, T3]](func(cx Context) Poll[Tuple3[T1, T2, T3]] {
		r := core.poll(cx)
		switch {
		case r.pending:
			return PendingPoll[Tuple3[T1, T2, T3]]()
		case r.done:
			return DonePoll[Tuple3[T1, T2, T3]]()
		default:
			return ReadyPoll(Tuple3[T1, T2, T3]{
				V1: r.value[0].(T1),
				V2: r.value[1].(T2),
				V3: r.value[2].(T3),
			})
		}
	})
}

func CombineLatest4[T1, T2, T3, T4 any](s1 Pullable[T1], s2 Pullable[T2], s3 Pullable[T3], s4 Pullable[T4]) Pullable[Tuple4[T1, T2, T3, T4]] {
	core := newCombineLatestCore([]Pullable[any]{erase(s1), erase(s2), erase(s3), erase(s4)})
	return Func[Tuple4[T1, T2, T3, T4]](func(cx Context) Poll[Tuple4[T1, T2, T3, T4]] {
		r := core.poll(cx)
		switch {
		case r.pending:
			return PendingPoll[Tuple4[T1, T2, T3, T4]]()
		case r.done:
			return DonePoll[Tuple4[T1, T2, T3, T4]]()
		default:
			return ReadyPoll(Tuple4[T1, T2, T3, T4]{
				V1: r.value[0].(T1),
				V2: r.value[1].(T2),
				V3: r.value[2].(T3),
				V4: r.value[3].(T4),
			})
		}
	})
}

func CombineLatest5[T1, T2, T3, T4, T5 any](s1 Pullable[T1], s2 Pullable[T2], s3 Pullable[T3], s4 Pullable[T4], s5 Pullable[T5]) Pullable[Tuple5[T1, T2, T3, T4, T5]] {
	core := newCombineLatestCore([]Pullable[any]{erase(s1), erase(s2), erase(s3), erase(s4), erase(s5)})
	return Func[Tuple5[T1, T2, T3, T4, T5]](func(cx Context) Poll[Tuple5[T1, T2, T3, T4, T5]] {
		r := core.poll(cx)
		switch {
		case r.pending:
			return PendingPoll[Tuple5[T1, T2, T3, T4, T5]]()
		case r.done:
			return DonePoll[Tuple5[T1, T2, T3, T4, T5]]()
		default:
			return ReadyPoll(Tuple5[T1, T2, T3, T4, T5]{
				V1: r.value[0].(T1),
				V2: r.value[1].(T2),
				V3: r.value[2].(T3),
				V4: r.value[3].(T4),
				V5: r.value[4].(T5),
			})
		}
	})
}

func CombineLatest6[T1, T2, T3, T4, T5, T6 any](s1 Pullable[T1], s2 Pullable[T2], s3 Pullable[T3], s4 Pullable[T4], s5 Pullable[T5], s6 Pullable[T6]) Pullable[Tuple6[T1, T2, T3, T4, T5, T6]] {
	core := newCombineLatestCore([]Pullable[any]{erase(s1), erase(s2), erase(s3), erase(s4), erase(s5), erase(s6)})
	return Func[Tuple6[T1, T2, T3, T4, T5, T6]](func(cx Context) Poll[Tuple6[T1, T2, T3, T4, T5, T6]] {
		r := core.poll(cx)
		switch {
		case r.pending:
			return PendingPoll[Tuple6[T1, T2, T3, T4, T5, T6]]()
		case r.done:
			return DonePoll[Tuple6[T1, T2, T3, T4, T5, T6]]()
		default:
			return ReadyPoll(Tuple6[T1, T2, T3, T4, T5, T6]{
				V1: r.value[0].(T1),
				V2: r.value[1].(T2),
				V3: r.value[2].(T3),
				V4: r.value[3].(T4),
				V5: r.value[4].(T5),
				V6: r.value[5].(T6),
			})
		}
	})
}

func CombineLatest7[T1, T2, T3, T4, T5, T6, T7 any](s1 Pullable[T1], s2 Pullable[T2], s3 Pullable[T3], s4 Pullable[T4], s5 Pullable[T5], s6 Pullable[T6], s7 Pullable[T7]) Pullable[Tuple7[T1, T2, T3, T4, T5, T6, T7]] {
	core := newCombineLatestCore([]Pullable[any]{erase(s1), erase(s2), erase(s3), erase(s4), erase(s5), erase(s6), erase(s7)})
	return Func[Tuple7[T1, T2, T3, T4, T5, T6, T7]](func(cx Context) Poll[Tuple7[T1, T2, T3, T4, T5, T6, T7]] {
		r := core.poll(cx)
		switch {
		case r.pending:
			return PendingPoll[Tuple7[T1, T2, T3, T4, T5, T6, T7]]()
		case r.done:
			return DonePoll[Tuple7[T1, T2, T3, T4, T5, T6, T7]]()
		default:
			return ReadyPoll(Tuple7[T1, T2, T3, T4, T5, T6, T7]{
				V1: r.value[0].(T1),
				V2: r.value[1].(T2),
				V3: r.value[2].(T3),
				V4: r.value[3].(T4),
				V5: r.value[4].(T5),
				V6: r.value[5].(T6),
				V7: r.value[6].(T7),
			})
		}
	})
}

func CombineLatest8[T1, T2, T3, T4, T5, T6, T7, T8 any](s1 Pullable[T1], s2 Pullable[T2], s3 Pullable[T3], s4 Pullable[T4], s5 Pullable[T5], s6 Pullable[T6], s7 Pullable[T7], s8 Pullable[T8]) Pullable[Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]] {
	core := newCombineLatestCore([]Pullable[any]{erase(s1), erase(s2), erase(s3), erase(s4), erase(s5), erase(s6), erase(s7), erase(s8)})
	return Func[Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]](func(cx Context) Poll[Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]] {
		r := core.poll(cx)
		switch {
		case r.pending:
			return PendingPoll[Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]]()
		case r.done:
			return DonePoll[Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]]()
		default:
			return ReadyPoll(Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]{
				V1: r.value[0].(T1),
				V2: r.value[1].(T2),
				V3: r.value[2].(T3),
				V4: r.value[3].(T4),
				V5: r.value[4].(T5),
				V6: r.value[5].(T6),
				V7: r.value[6].(T7),
				V8: r.value[7].(T8),
			})
		}
	})
}

func CombineLatest9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any](s1 Pullable[T1], s2 Pullable[T2], s3 Pullable[T3], s4 Pullable[T4], s5 Pullable[T5], s6 Pullable[T6], s7 Pullable[T7], s8 Pullable[T8], s9 Pullable[T9]) Pullable[Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]] {
	core := newCombineLatestCore([]Pullable[any]{erase(s1), erase(s2), erase(s3), erase(s4), erase(s5), erase(s6), erase(s7), erase(s8), erase(s9)})
	return Func[Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]](func(cx Context) Poll[Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]] {
		r := core.poll(cx)
		switch {
		case r.pending:
			return PendingPoll[Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]]()
		case r.done:
			return DonePoll[Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]]()
		default:
			return ReadyPoll(Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]{
				V1: r.value[0].(T1),
				V2: r.value[1].(T2),
				V3: r.value[2].(T3),
				V4: r.value[3].(T4),
				V5: r.value[4].(T5),
				V6: r.value[5].(T6),
				V7: r.value[6].(T7),
				V8: r.value[7].(T8),
				V9: r.value[8].(T9),
			})
		}
	})
}
