package bookings

import (
	"context"
	"log"
	"time"
)

// JobProcessor runs the pending-booking expiry sweep in the background.
type JobProcessor struct {
	service  Service
	interval time.Duration
	done     chan struct{}
}

func NewJobProcessor(service Service, interval time.Duration) *JobProcessor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &JobProcessor{
		service:  service,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start launches the expiry sweep loop.
func (jp *JobProcessor) Start(ctx context.Context) {
	log.Printf("Starting booking expiry sweep with %v interval", jp.interval)
	go jp.runExpirySweep(ctx)
}

// Stop stops the background sweep.
func (jp *JobProcessor) Stop() {
	close(jp.done)
	log.Println("Booking expiry sweep stopped")
}

func (jp *JobProcessor) runExpirySweep(ctx context.Context) {
	ticker := time.NewTicker(jp.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			jp.sweep(ctx)
		case <-jp.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (jp *JobProcessor) sweep(ctx context.Context) {
	expired, err := jp.service.ExpirePendingBookings(ctx)
	if err != nil {
		log.Printf("Error expiring pending bookings: %v", err)
		return
	}
	if expired > 0 {
		log.Printf("Expired %d pending bookings", expired)
	}
}
