// Package brent implements Brent's improved cycle-detection algorithm: a
// tortoise-and-hare walk where the tortoise only resets at power-of-two
// intervals, which visits far fewer points than naive Floyd cycle
// detection before a repeat is found.
package brent

import "github.com/takakv/facto/intval"

// Mapper advances one step of the sequence whose cycle is being searched.
type Mapper[T any] interface {
	Run(x T) T
}

// ConditionChecker is consulted after every hare step and decides whether
// the search should stop. Implementations are free to accumulate state
// across calls (pollardrho's checker batches a running GCD accumulator),
// which is why FindCycle hands the checker back to the caller once it
// returns true instead of discarding it.
type ConditionChecker[T intval.Int[T]] interface {
	Check(tortoise, hare, count, power T) bool
}

// FindCycle walks the sequence x_{i+1} = mapper.Run(x_i) starting at start,
// advancing the tortoise to the hare's position every time power of steps
// have elapsed and doubling power, until checker reports a stopping
// condition. It returns the checker (so callers can read back whatever it
// accumulated) and the step count within the current power-of-two block at
// the moment the checker stopped the walk.
func FindCycle[T intval.Int[T]](mapper Mapper[T], checker ConditionChecker[T], start T) (ConditionChecker[T], T) {
	tortoise := start
	hare := mapper.Run(start)
	one := start.One()
	power := start.One()
	count := start.Zero()

	for !checker.Check(tortoise, hare, count, power) {
		count = count.Add(one)
		if power.Cmp(count) == 0 {
			tortoise = hare
			power = power.Lsh(1)
			count = start.Zero()
		}
		hare = mapper.Run(hare)
	}
	return checker, count
}
