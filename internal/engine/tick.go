// Package engine is the project timer and cost-accrual core: a set of
// reducers over the per-user project list plus a loop that advances the
// single running project once per second.
//
// Every mutation of timer state goes through this package, and each
// reducer operates on a freshly loaded state snapshot inside one
// serialized update path, so the at-most-one-running invariant is
// enforced in exactly one place.
package engine

import (
	"github.com/hafprodutora/editcostV3/internal/domain"
)

// Tick advances one second of simulated time for the project whose timer
// is running. All other projects pass through unchanged, and a tick that
// observes no running project mutates nothing.
//
// For the running project:
//   - an exhausted countdown stops the timer and clamps the countdown to
//     zero without accruing time or cost this tick;
//   - otherwise the countdown decrements, timeSpentSeconds increments,
//     the active deliverable (if any) accrues one tracked second, and the
//     cached total cost is recomputed.
func Tick(projects []*domain.Project, settings domain.Settings) {
	for _, p := range projects {
		if !p.IsTimerRunning {
			continue
		}

		remaining := p.RemainingSeconds(settings.PomodoroDuration)
		if remaining <= 0 {
			p.IsTimerRunning = false
			p.PomodoroTimeLeft = domain.IntPtr(0)
			continue
		}

		p.PomodoroTimeLeft = domain.IntPtr(remaining - 1)
		p.TimeSpentSeconds++

		if p.IsComplex() && p.ActiveDeliverableID != "" {
			if d := p.FindDeliverable(p.ActiveDeliverableID); d != nil {
				d.TrackedSeconds++
			}
		}

		p.RecalculateCost()
	}
}

// AnyRunning reports whether some project's timer is running. The tick
// loop's lifetime is bound to this predicate.
func AnyRunning(projects []*domain.Project) bool {
	for _, p := range projects {
		if p.IsTimerRunning {
			return true
		}
	}
	return false
}
