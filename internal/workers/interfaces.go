// Package workers runs the service's background jobs.
//
// A [Worker] starts its goroutines in Run and stops them when the context is
// cancelled. [Workers] aggregates every worker so the server can start them
// together and wait for all of them on shutdown.
package workers

import (
	"context"

	"github.com/MKhiriev/go-waste-tracker/models"
)

// Worker is a background process bound to a context.
//
// Run must not block: implementations spawn their goroutines and return.
// Wait blocks until every goroutine started by Run has returned.
type Worker interface {
	Run(ctx context.Context)
	Wait()
}

// ImageEnqueuer accepts image resolution jobs without blocking the caller.
type ImageEnqueuer interface {
	// Enqueue reports whether the job was accepted.
	Enqueue(job models.ImageJob) bool
}
