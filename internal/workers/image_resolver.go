// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-waste-tracker/internal/adapter"
	"github.com/MKhiriev/go-waste-tracker/internal/config"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/metrics"
	"github.com/MKhiriev/go-waste-tracker/internal/store"
	"github.com/MKhiriev/go-waste-tracker/models"
)

// imageTarget is a table that accepts resolved image URLs.
type imageTarget struct {
	store interface {
		SetImageURL(ctx context.Context, userID, id, imageURL string) error
	}
	// notFound is the error the store returns for a deleted record.
	notFound error
}

// ImageResolver looks up a photo for newly stored packaging logs and food
// items and saves its URL. Jobs go through a bounded queue consumed by a
// fixed number of goroutines.
type ImageResolver struct {
	queue   chan models.ImageJob
	workers int

	lookup  adapter.ImageLookup
	targets map[models.ImageTarget]imageTarget
	metrics *metrics.Metrics
	logger  *logger.Logger

	wg sync.WaitGroup
}

func NewImageResolver(
	cfg config.Workers,
	lookup adapter.ImageLookup,
	logs store.PackagingLogRepository,
	items store.FoodItemRepository,
	m *metrics.Metrics,
	log *logger.Logger,
) *ImageResolver {
	workers := cfg.ImageWorkers
	if workers <= 0 {
		workers = 1
	}

	return &ImageResolver{
		queue:   make(chan models.ImageJob, max(cfg.ImageQueueSize, 0)),
		workers: workers,
		lookup:  lookup,
		targets: map[models.ImageTarget]imageTarget{
			models.ImageTargetPackagingLog: {store: logs, notFound: store.ErrLogNotFound},
			models.ImageTargetFoodItem:     {store: items, notFound: store.ErrFoodItemNotFound},
		},
		metrics: m,
		logger:  log,
	}
}

// Enqueue implements [ImageEnqueuer]. A full queue drops the job.
func (r *ImageResolver) Enqueue(job models.ImageJob) bool {
	select {
	case r.queue <- job:
		r.metrics.SetImageQueueDepth(len(r.queue))
		return true
	default:
		r.metrics.RecordImageJob(metrics.ImageDropped)
		r.logger.Warn().
			Str("func", "ImageResolver.Enqueue").
			Str("target", string(job.Target)).
			Str("record_id", job.RecordID).
			Msg("image queue is full, job dropped")
		return false
	}
}

// Run implements [Worker].
func (r *ImageResolver) Run(ctx context.Context) {
	for range r.workers {
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			r.consume(ctx)
		}()
	}
}

// Wait implements [Worker].
func (r *ImageResolver) Wait() {
	r.wg.Wait()
}

func (r *ImageResolver) consume(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-r.queue:
			r.metrics.SetImageQueueDepth(len(r.queue))
			r.metrics.RecordImageJob(r.resolve(ctx, job))
		}
	}
}

func (r *ImageResolver) resolve(ctx context.Context, job models.ImageJob) string {
	log := r.logger.With().Str("target", string(job.Target)).Str("record_id", job.RecordID).Logger()

	target, ok := r.targetOf(job)
	if !ok {
		log.Error().Str("func", "ImageResolver.resolve").Msg("unknown image target")
		return metrics.ImageFailed
	}

	imageURL, err := r.lookup.FindImage(ctx, job.FoodItemName)
	if err != nil {
		if errors.Is(err, adapter.ErrNotConfigured) {
			return metrics.ImageNotFound
		}
		log.Warn().Err(err).Str("func", "ImageResolver.resolve").Msg("image lookup failed")
		return metrics.ImageFailed
	}
	if imageURL == "" {
		return metrics.ImageNotFound
	}

	err = target.store.SetImageURL(ctx, job.UserID, job.RecordID, imageURL)
	if errors.Is(err, target.notFound) {
		// deleted while the job was queued
		return metrics.ImageNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "ImageResolver.resolve").Msg("failed to store image url")
		return metrics.ImageFailed
	}

	return metrics.ImageResolved
}

func (r *ImageResolver) targetOf(job models.ImageJob) (imageTarget, bool) {
	kind := job.Target
	if kind == "" {
		kind = models.ImageTargetPackagingLog
	}
	target, ok := r.targets[kind]
	if !ok || target.store == nil {
		return imageTarget{}, false
	}
	return target, true
}
