package workers

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/MKhiriev/go-waste-tracker/internal/adapter"
	"github.com/MKhiriev/go-waste-tracker/internal/config"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/metrics"
	"github.com/MKhiriev/go-waste-tracker/internal/mock"
	"github.com/MKhiriev/go-waste-tracker/internal/store"
	"github.com/MKhiriev/go-waste-tracker/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestResolver(t *testing.T, queueSize, workers int) (*ImageResolver, *mock.MockImageLookup, *mock.MockPackagingLogRepository, *mock.MockFoodItemRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	lookup := mock.NewMockImageLookup(ctrl)
	logs := mock.NewMockPackagingLogRepository(ctrl)
	items := mock.NewMockFoodItemRepository(ctrl)

	r := NewImageResolver(config.Workers{ImageQueueSize: queueSize, ImageWorkers: workers}, lookup, logs, items, nil, logger.Nop())
	return r, lookup, logs, items
}

func TestImageResolver_StoresResolvedURL(t *testing.T) {
	r, lookup, repo, _ := newTestResolver(t, 4, 2)

	var done sync.WaitGroup
	done.Add(1)
	lookup.EXPECT().FindImage(gomock.Any(), "Organic Spinach").Return("https://cdn/spinach.jpg", nil)
	repo.EXPECT().SetImageURL(gomock.Any(), "user-1", "log-1", "https://cdn/spinach.jpg").
		DoAndReturn(func(context.Context, string, string, string) error {
			done.Done()
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	r.Run(ctx)

	assert.True(t, r.Enqueue(models.ImageJob{RecordID: "log-1", UserID: "user-1", FoodItemName: "Organic Spinach"}))

	done.Wait()
	cancel()
	r.Wait()
}

func TestImageResolver_SkipsStoreWhenNothingFound(t *testing.T) {
	tests := []struct {
		name string
		url  string
		err  error
	}{
		{name: "no image", url: ""},
		{name: "lookup error", err: adapter.ErrRateLimited},
		{name: "not configured", err: adapter.ErrNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, lookup, _, _ := newTestResolver(t, 1, 1)

			var done sync.WaitGroup
			done.Add(1)
			lookup.EXPECT().FindImage(gomock.Any(), "Milk").
				DoAndReturn(func(context.Context, string) (string, error) {
					done.Done()
					return tt.url, tt.err
				})

			ctx, cancel := context.WithCancel(context.Background())
			r.Run(ctx)
			r.Enqueue(models.ImageJob{RecordID: "log-1", UserID: "user-1", FoodItemName: "Milk"})

			done.Wait()
			cancel()
			r.Wait()
		})
	}
}

func TestImageResolver_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		want     string
	}{
		{name: "stored", want: metrics.ImageResolved},
		{name: "log deleted meanwhile", storeErr: store.ErrLogNotFound, want: metrics.ImageNotFound},
		{name: "store failure", storeErr: errors.New("db down"), want: metrics.ImageFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, lookup, repo, _ := newTestResolver(t, 1, 1)
			lookup.EXPECT().FindImage(gomock.Any(), "Milk").Return("https://cdn/milk.jpg", nil)
			repo.EXPECT().SetImageURL(gomock.Any(), "user-1", "log-1", "https://cdn/milk.jpg").Return(tt.storeErr)

			got := r.resolve(context.Background(), models.ImageJob{RecordID: "log-1", UserID: "user-1", FoodItemName: "Milk"})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImageResolver_ResolveFoodItem(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		want     string
	}{
		{name: "stored", want: metrics.ImageResolved},
		{name: "item deleted meanwhile", storeErr: store.ErrFoodItemNotFound, want: metrics.ImageNotFound},
		{name: "log sentinel is not a not-found for items", storeErr: store.ErrLogNotFound, want: metrics.ImageFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, lookup, _, items := newTestResolver(t, 1, 1)
			lookup.EXPECT().FindImage(gomock.Any(), "Cheddar").Return("https://cdn/cheddar.jpg", nil)
			items.EXPECT().SetImageURL(gomock.Any(), "user-1", "item-1", "https://cdn/cheddar.jpg").Return(tt.storeErr)

			got := r.resolve(context.Background(), models.ImageJob{
				Target:       models.ImageTargetFoodItem,
				RecordID:     "item-1",
				UserID:       "user-1",
				FoodItemName: "Cheddar",
			})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImageResolver_UnknownTarget(t *testing.T) {
	r, _, _, _ := newTestResolver(t, 1, 1)

	got := r.resolve(context.Background(), models.ImageJob{Target: "recipe", RecordID: "r-1", FoodItemName: "Soup"})
	assert.Equal(t, metrics.ImageFailed, got)
}

func TestImageResolver_EnqueueDropsWhenFull(t *testing.T) {
	r, _, _, _ := newTestResolver(t, 1, 1)

	// not running: nothing consumes the queue
	assert.True(t, r.Enqueue(models.ImageJob{RecordID: "a"}))
	assert.False(t, r.Enqueue(models.ImageJob{RecordID: "b"}))
}

func TestImageResolver_StopsOnCancel(t *testing.T) {
	r, _, _, _ := newTestResolver(t, 1, 3)

	ctx, cancel := context.WithCancel(context.Background())
	r.Run(ctx)
	cancel()

	// goleak in TestMain fails the package if any consumer survives
	r.Wait()
}
