package jobs

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/forgo/gambit/internal/service"
)

// TokenCleanupJob periodically removes stale refresh tokens
// - Deletes tokens past their expiry
// - Purges revoked tokens once reuse detection no longer needs them
type TokenCleanupJob struct {
	tokenService *service.TokenService
	interval     time.Duration
	stopCh       chan struct{}
	wg           sync.WaitGroup
	running      bool
	mu           sync.Mutex
}

// NewTokenCleanupJob creates a new token cleanup job
func NewTokenCleanupJob(tokenService *service.TokenService, interval time.Duration) *TokenCleanupJob {
	if interval == 0 {
		interval = 1 * time.Hour // Default hourly sweep
	}
	return &TokenCleanupJob{
		tokenService: tokenService,
		interval:     interval,
		stopCh:       make(chan struct{}),
	}
}

// Start begins the token cleanup job
func (j *TokenCleanupJob) Start() {
	j.mu.Lock()
	if j.running {
		j.mu.Unlock()
		return
	}
	j.running = true
	j.mu.Unlock()

	j.wg.Add(1)
	go j.run()
	log.Printf("Token cleanup job started (interval: %v)", j.interval)
}

// Stop gracefully stops the token cleanup job
func (j *TokenCleanupJob) Stop() {
	j.mu.Lock()
	if !j.running {
		j.mu.Unlock()
		return
	}
	j.running = false
	j.mu.Unlock()

	close(j.stopCh)
	j.wg.Wait()
	log.Println("Token cleanup job stopped")
}

// run is the main loop
func (j *TokenCleanupJob) run() {
	defer j.wg.Done()

	// Run immediately on start (but with a short delay to let services initialize)
	time.Sleep(5 * time.Second)
	j.cleanup()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.cleanup()
		case <-j.stopCh:
			return
		}
	}
}

// cleanup sweeps expired and revoked refresh tokens
func (j *TokenCleanupJob) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := j.tokenService.CleanupExpired(ctx); err != nil {
		log.Printf("Error cleaning up refresh tokens: %v", err)
	}
}

// RunOnce runs the cleanup once (for testing or manual trigger)
func (j *TokenCleanupJob) RunOnce(ctx context.Context) error {
	return j.tokenService.CleanupExpired(ctx)
}

// IsRunning returns whether the job is running
func (j *TokenCleanupJob) IsRunning() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running
}
