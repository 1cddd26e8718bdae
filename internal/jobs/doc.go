// Package jobs implements background job processing for the Gambit API.
//
// The jobs package contains scheduled tasks that run independently of HTTP
// request handling.
//
// # Job Types
//
// Available background jobs:
//
//   - TokenCleanupJob: Expired and revoked refresh token removal
//
// # Lifecycle
//
// Jobs run on their own tickers and are started and stopped with the server:
//
//	job := jobs.NewTokenCleanupJob(tokenService, time.Hour)
//	job.Start()
//	defer job.Stop()
//
// Each sweep runs under a bounded context so a stuck database call cannot
// wedge the job loop.
//
// # Error Handling
//
// Jobs log errors but don't crash the application. A failed sweep is simply
// retried on the next tick.
package jobs
