// Command rxdemo drives a handful of rx primitives end to end: a
// BehaviorSubject and a PublishSubject combined with CombineLatest2, a
// PublishSubject debounced through pkg/rxtimer, and a broadcast.Hub
// channel fed with two messages. It exists only to give every wired
// package a runnable home; none of its output is meant to be parsed.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/streamkit/rxstream/pkg/broadcast"
	"github.com/streamkit/rxstream/pkg/config"
	"github.com/streamkit/rxstream/pkg/environment"
	"github.com/streamkit/rxstream/pkg/logger"
	"github.com/streamkit/rxstream/pkg/rxtimer"
	"github.com/streamkit/rxstream/rx"
)

func main() {
	var cfg demoConfig
	config.MustLoad(&cfg)

	log := logger.New(logger.WithEnvironment(cfg.Environment, cfg.ServiceName))
	logger.SetAsDefault(log)

	ctx := environment.WithContext(context.Background(), cfg.Environment)
	log.InfoContext(ctx, "starting rxdemo")

	runCombineLatestDemo(log)
	runDebounceDemo(log)
	runBroadcastDemo(log)

	log.InfoContext(ctx, "rxdemo finished")
}

// unwrapValues adapts an Observable's Pullable[Event[T]] shape down to a
// plain Pullable[T] by unwrapping each Event carrier to its payload, the
// element type operators like Debounce and CombineLatest take here.
func unwrapValues[T any](o rx.Observable[T]) rx.Pullable[T] {
	return rx.Func[T](func(cx rx.Context) rx.Poll[T] {
		p := o.Poll(cx)
		switch {
		case p.Done:
			return rx.DonePoll[T]()
		case p.Pending:
			return rx.PendingPoll[T]()
		default:
			return rx.ReadyPoll(p.Value.Value())
		}
	})
}

// drive polls p to exhaustion, calling onValue for every Ready value, and
// sleeping briefly between Pending polls so time-based operators in the
// other demos get a chance to fire.
func drive[T any](p rx.Pullable[T], onValue func(T)) {
	w := &rx.FlagWaker{}
	cx := rx.NewContext(w)
	for i := 0; i < 100000; i++ {
		poll := p.Poll(cx)
		if poll.Done {
			return
		}
		if poll.Pending {
			time.Sleep(time.Millisecond)
			continue
		}
		onValue(poll.Value)
	}
	panic("drive: exceeded iteration budget")
}

func runCombineLatestDemo(log *slog.Logger) {
	counter := rx.NewBehaviorSubject(0)
	events := rx.NewPublishSubject[string]()

	combined := rx.CombineLatest2(unwrapValues(counter.Subscribe()), unwrapValues(events.Subscribe()))

	go func() {
		for i := 1; i <= 3; i++ {
			counter.Next(i)
		}
		events.Next("tick")
		events.Next("tock")
		counter.Close()
		events.Close()
	}()

	drive[rx.Tuple2[int, string]](combined, func(v rx.Tuple2[int, string]) {
		log.Info("combine_latest2", "counter", v.V1, "event", v.V2)
	})
}

func runDebounceDemo(log *slog.Logger) {
	keystrokes := rx.NewPublishSubject[string]()
	debounced := rx.Debounce(unwrapValues(keystrokes.Subscribe()), rxtimer.AfterFactory[string](20*time.Millisecond))

	go func() {
		for _, word := range []string{"r", "rx", "rxs", "rxst", "rxstream"} {
			keystrokes.Next(word)
			time.Sleep(5 * time.Millisecond)
		}
		time.Sleep(30 * time.Millisecond)
		keystrokes.Close()
	}()

	drive[string](debounced, func(v string) {
		log.Info("debounce", "value", v)
	})
}

func runBroadcastDemo(log *slog.Logger) {
	hub := broadcast.NewHub[string]()
	defer hub.Close()

	_, room, err := hub.Subscribe("announcements")
	if err != nil {
		log.Error("subscribe failed", "error", err)
		return
	}

	go func() {
		_ = hub.Publish("announcements", "rx core online")
		_ = hub.Publish("announcements", "broadcast hub online")
		hub.Close()
	}()

	drive[string](unwrapValues(room), func(v string) {
		log.Info("broadcast", "message", v)
	})

	fmt.Println("rxdemo: combine_latest2, debounce, and broadcast.Hub all exercised")
}
