// Package rx implements a reactive-streams core over a cooperative,
// poll-based sequence abstraction (Pullable[T]). It provides Subjects
// (Publish/Behavior/Replay), share/share_behavior/share_replay broadcast
// adapters, N-ary combinators (CombineLatestN, ZipN for N in [2,9]), and
// the usual family of Rx-style operators: switch_map, race,
// with_latest_from, debounce, throttle variants, sample, delay,
// delay_every, timing, buffer, window, and the trivial adapters
// (start_with, end_with, pairwise, distinct, distinct_until_changed,
// inspect_done, materialize, dematerialize).
//
// Every sequence in this package is driven by polling, not by pushing:
// nothing moves until a consumer calls Poll. Operators compose by holding
// their upstream Pullable and presenting the same interface themselves, so
// chains are built by ordinary function composition rather than a
// fluent-builder DSL.
package rx
