// Package timeutil provides Timer, a one-shot timer that keeps track of its own state.
//
// Transaction timers are scheduled with [AfterFunc]. The callback runs in its own goroutine
// and must not touch the transaction directly, it posts an event to the call worker instead:
//
//	tmr := timeutil.AfterFunc(timings.TimeB(), func() {
//	    worker.PostTimer(ev)
//	})
//	defer tmr.Stop()
//
// All timer operations are safe for concurrent use.
package timeutil
