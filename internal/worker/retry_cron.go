package worker

// retry_cron.go
// Background goroutine that periodically drains the ticket DLQ back onto the
// work queue. It only runs while the SMTP circuit breaker is not open, so a
// downed mail relay is never hammered with parked deliveries.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/CarlosLeonGaleas/EventRegistration/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	retryTickInterval = 60 * time.Second
	retryBatchSize    = 10

	// maxDLQAttempts is the total delivery budget per job across all DLQ
	// rounds; beyond it the entry is dropped for good.
	maxDLQAttempts = 12
)

// StartRetryCron launches a goroutine that ticks every minute and re-enqueues
// parked ticket jobs. It respects the context for graceful shutdown.
func StartRetryCron(ctx context.Context, rdb *redis.Client, cb *infra.CircuitBreaker) {
	go func() {
		ticker := time.NewTicker(retryTickInterval)
		defer ticker.Stop()

		log.Info().Msg("retry_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("retry_cron: shutting down")
				return
			case <-ticker.C:
				drainDLQ(ctx, rdb, cb)
			}
		}
	}()
}

func drainDLQ(ctx context.Context, rdb *redis.Client, cb *infra.CircuitBreaker) {
	// If the breaker is open, skip entirely — mail would fast-fail anyway
	if cb.State() == infra.CBOpen {
		log.Debug().Msg("retry_cron: circuit breaker is open, skipping tick")
		return
	}

	dlqKey := DLQPrefix + QueueTickets
	dispatcher := NewDispatcher(rdb)

	for i := 0; i < retryBatchSize; i++ {
		raw, err := rdb.RPop(ctx, dlqKey).Result()
		if err != nil {
			return // empty queue or redis error — next tick retries
		}

		var entry DLQEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			log.Error().Err(err).Msg("retry_cron: corrupt DLQ entry dropped")
			continue
		}

		if entry.Attempts >= maxDLQAttempts {
			log.Error().
				Str("job_type", entry.JobType).
				Int("attempts", entry.Attempts).
				Str("reason", entry.Reason).
				Msg("retry_cron: delivery budget exhausted, dropping job")
			continue
		}

		var payload TicketJobPayload
		if err := json.Unmarshal(entry.Payload, &payload); err != nil {
			log.Error().Err(err).Msg("retry_cron: corrupt ticket payload dropped")
			continue
		}
		payload.Attempts = entry.Attempts

		if err := dispatcher.EnqueueTicket(ctx, payload); err != nil {
			log.Error().Err(err).Msg("retry_cron: failed to re-enqueue ticket job")
			return
		}
		log.Info().
			Str("participant_id", payload.ParticipantID).
			Int("attempts", entry.Attempts).
			Msg("retry_cron: ticket job re-enqueued from DLQ")
	}
}
