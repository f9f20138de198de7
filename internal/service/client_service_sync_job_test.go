package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/cloudvault/cloudvault/internal/logger"
	"github.com/cloudvault/cloudvault/internal/mock"
)

func TestSyncJob_KickTriggersPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotes := mock.NewMockNoteService(ctrl)
	job := NewSyncJob(mockNotes, logger.Nop())

	done := make(chan struct{})
	mockNotes.EXPECT().SyncPending(gomock.Any()).DoAndReturn(
		func(context.Context) error {
			close(done)
			return nil
		})

	job.Start(context.Background())
	defer job.Stop()

	job.Kick()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reconciliation pass was never triggered")
	}
}

func TestSyncJob_OnConnectivityChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotes := mock.NewMockNoteService(ctrl)
	job := NewSyncJob(mockNotes, logger.Nop())

	var mu sync.Mutex
	var passes int
	mockNotes.EXPECT().SyncPending(gomock.Any()).DoAndReturn(
		func(context.Context) error {
			mu.Lock()
			passes++
			mu.Unlock()
			return nil
		}).AnyTimes()

	job.Start(context.Background())

	// going offline must not trigger anything
	job.OnConnectivityChange(false)
	// coming back does
	job.OnConnectivityChange(true)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return passes >= 1
	}, 2*time.Second, 10*time.Millisecond)

	job.Stop()
}

func TestSyncJob_StopIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	job := NewSyncJob(mock.NewMockNoteService(ctrl), logger.Nop())

	job.Start(context.Background())
	job.Stop()
	job.Stop()
}

func TestSyncJob_DoubleStartRunsOneLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotes := mock.NewMockNoteService(ctrl)
	job := NewSyncJob(mockNotes, logger.Nop())

	mockNotes.EXPECT().SyncPending(gomock.Any()).Return(nil).AnyTimes()

	job.Start(context.Background())
	job.Start(context.Background())
	job.Kick()

	job.Stop()
}
