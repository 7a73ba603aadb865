// meta/meta.go
package meta

import "time"

// GO_ROUTINES defines the number of goroutines to use. Zero uses one per CPU.
const GO_ROUTINES = 0

// DURATION defines the wall-clock budget of one search.
const DURATION = 2000 * time.Millisecond

// EPISODES defines the number of episodes per goroutine. Zero means unbounded.
const EPISODES = 0

// SEED defines the base seed of the rollout streams.
const SEED = 0

// MAX_TURNS caps the number of turns, passes included, of a self-play game.
const MAX_TURNS = 150

// DOT_DEPTH defines how many tree levels a DOT export renders.
const DOT_DEPTH = 2
