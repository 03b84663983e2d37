// Package scheduler runs a job once per day at a fixed wall-clock time.
//
// Trigger computation is separated from the run loop so it can be tested
// without real time passing:
//
//	sched, err := scheduler.Parse("10:00")
//	next := sched.Next(time.Now()) // today at 10:00, or tomorrow if passed
//
// The loop waits for each trigger, runs the job, logs the outcome, and keeps
// going; a failed run never terminates the loop. Cancel the context to stop.
package scheduler
