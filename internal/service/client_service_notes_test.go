// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudVault Authors

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cloudvault/cloudvault/internal/adapter"
	"github.com/cloudvault/cloudvault/internal/identity"
	"github.com/cloudvault/cloudvault/internal/logger"
	"github.com/cloudvault/cloudvault/internal/mock"
	"github.com/cloudvault/cloudvault/internal/store"
	"github.com/cloudvault/cloudvault/models"
)

const testSubject = "user-a"

func testScoper(t *testing.T) *identity.Scoper {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   testSubject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)

	scoper, err := identity.NewScoper(signed)
	require.NoError(t, err)
	return scoper
}

func newTestNoteSvc(t *testing.T, ctrl *gomock.Controller) (
	*clientNoteService,
	*mock.MockNoteRepository,
	*mock.MockNoteServerAdapter,
	*mock.MockConnectivity,
	*mock.MockNotifier,
) {
	t.Helper()

	mockRepo := mock.NewMockNoteRepository(ctrl)
	mockAdapter := mock.NewMockNoteServerAdapter(ctrl)
	mockNet := mock.NewMockConnectivity(ctrl)
	mockNotifier := mock.NewMockNotifier(ctrl)

	storages := &store.ClientStorages{NoteRepository: mockRepo}

	svc := NewClientNoteService(
		storages, mockAdapter, testScoper(t), mockNet, mockNotifier, logger.Nop(),
	).(*clientNoteService)

	return svc, mockRepo, mockAdapter, mockNet, mockNotifier
}

func ownedNote(id, title string) models.Note {
	return models.Note{
		ID:        id,
		OwnerID:   testSubject,
		Title:     title,
		SyncState: models.StateSynced,
	}
}

// ── LoadNotes ────────────────────────────────────────────────────────────────

func TestClientNoteService_LoadNotes_RemoteWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, mockNet, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	local := []models.Note{ownedNote("n-1", "stale")}
	remote := []models.Note{
		{ID: "n-1", Title: "fresh"},
		{ID: "n-2", Title: "new on server"},
	}

	mockRepo.EXPECT().GetAll(ctx).Return(local, nil)
	mockAdapter.EXPECT().ListNotes(ctx).Return(remote, nil)
	mockRepo.EXPECT().PutMany(ctx, gomock.Len(2)).Return(nil)
	mockNet.EXPECT().Online().Return(false)

	got, err := svc.LoadNotes(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// remote notes get stamped with the scoped identity before caching
	for _, n := range got {
		assert.Equal(t, testSubject, n.OwnerID)
		assert.Equal(t, models.StateSynced, n.SyncState)
	}
}

func TestClientNoteService_LoadNotes_OfflineServesLocalSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, _, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	local := []models.Note{ownedNote("n-1", "cached")}

	mockRepo.EXPECT().GetAll(ctx).Return(local, nil)
	mockAdapter.EXPECT().ListNotes(ctx).Return(nil, adapter.ErrNetworkUnavailable)

	got, err := svc.LoadNotes(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "cached", got[0].Title)
}

func TestClientNoteService_LoadNotes_FiltersForeignOwners(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, _, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	local := []models.Note{
		ownedNote("n-1", "mine"),
		{ID: "n-2", OwnerID: "someone-else", Title: "not mine"},
		{ID: "n-3", Title: "unowned"},
	}

	mockRepo.EXPECT().GetAll(ctx).Return(local, nil)
	mockAdapter.EXPECT().ListNotes(ctx).Return(nil, adapter.ErrNetworkUnavailable)

	got, err := svc.LoadNotes(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "n-1", got[0].ID)
}

func TestClientNoteService_LoadNotes_LocalReadErrorIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, mockNet, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetAll(ctx).Return(nil, store.ErrExecutingQuery)
	mockAdapter.EXPECT().ListNotes(ctx).Return([]models.Note{{ID: "n-1"}}, nil)
	mockRepo.EXPECT().PutMany(ctx, gomock.Any()).Return(nil)
	mockNet.EXPECT().Online().Return(false)

	got, err := svc.LoadNotes(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

// ── SaveNote ─────────────────────────────────────────────────────────────────

func TestClientNoteService_SaveNote_EmptyTitleRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestNoteSvc(t, ctrl)

	_, err := svc.SaveNote(context.Background(), models.Note{Title: "   ", Content: "body"})
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestClientNoteService_SaveNote_OnlineCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, mockNet, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockNet.EXPECT().Online().Return(true)
	mockAdapter.EXPECT().CreateNote(ctx, models.NotePayload{Title: "Groceries", Content: "milk"}).
		Return(models.Note{ID: "srv-1", Title: "Groceries", Content: "milk", SyncState: models.StateSynced}, nil)
	mockRepo.EXPECT().PutOne(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, n models.Note) (string, error) {
			assert.Equal(t, "srv-1", n.ID)
			assert.Equal(t, testSubject, n.OwnerID)
			assert.False(t, n.Pending())
			return n.ID, nil
		})

	saved, err := svc.SaveNote(ctx, models.Note{Title: "Groceries", Content: "milk"})
	require.NoError(t, err)
	assert.Equal(t, "srv-1", saved.ID)

	notes := svc.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, "srv-1", notes[0].ID)
}

func TestClientNoteService_SaveNote_OnlineUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, mockNet, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	existing := ownedNote("srv-1", "old title")
	existing.Content = "old"

	mockNet.EXPECT().Online().Return(true)
	mockAdapter.EXPECT().UpdateNote(ctx, "srv-1", models.NotePayload{Title: "new title", Content: "new"}).
		Return(models.Note{ID: "srv-1", Title: "new title", Content: "new", SyncState: models.StateSynced}, nil)
	mockRepo.EXPECT().PutOne(ctx, gomock.Any()).Return("srv-1", nil)

	existing.Title = "new title"
	existing.Content = "new"
	saved, err := svc.SaveNote(ctx, existing)
	require.NoError(t, err)
	assert.Equal(t, "srv-1", saved.ID)
	assert.Equal(t, "new title", saved.Title)
}

func TestClientNoteService_SaveNote_OnlineRejectionSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter, mockNet, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockNet.EXPECT().Online().Return(true)
	mockAdapter.EXPECT().CreateNote(ctx, gomock.Any()).
		Return(models.Note{}, adapter.ErrRemoteRejected)

	_, err := svc.SaveNote(ctx, models.Note{Title: "t"})
	assert.ErrorIs(t, err, adapter.ErrRemoteRejected)
	assert.Empty(t, svc.Notes())
}

func TestClientNoteService_SaveNote_OfflineCreateQueuesPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockNet, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockNet.EXPECT().Online().Return(false)
	mockRepo.EXPECT().PutOne(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, n models.Note) (string, error) {
			assert.True(t, strings.HasPrefix(n.ID, models.LocalIDPrefix))
			assert.True(t, n.Pending())
			assert.Equal(t, models.StatePendingCreate, n.SyncState)
			assert.Equal(t, testSubject, n.OwnerID)
			return n.ID, nil
		})

	saved, err := svc.SaveNote(ctx, models.Note{Title: "offline note"})
	require.NoError(t, err)
	assert.True(t, saved.Pending())
	assert.NotEmpty(t, saved.ID)
}

func TestClientNoteService_SaveNote_OfflineUpdateKeepsRemoteID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockNet, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	existing := ownedNote("srv-1", "t")

	mockNet.EXPECT().Online().Return(false)
	mockRepo.EXPECT().PutOne(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, n models.Note) (string, error) {
			assert.Equal(t, "srv-1", n.ID)
			assert.Equal(t, models.StatePendingUpdate, n.SyncState)
			return n.ID, nil
		})

	saved, err := svc.SaveNote(ctx, existing)
	require.NoError(t, err)
	assert.Equal(t, "srv-1", saved.ID)
	assert.True(t, saved.Pending())
}

func TestClientNoteService_SaveNote_TransportDropFallsBackOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, mockNet, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	// the probe said online but the write hits a dead transport
	mockNet.EXPECT().Online().Return(true)
	mockAdapter.EXPECT().CreateNote(ctx, gomock.Any()).
		Return(models.Note{}, adapter.ErrNetworkUnavailable)
	mockRepo.EXPECT().PutOne(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, n models.Note) (string, error) {
			assert.True(t, n.Pending())
			return n.ID, nil
		})

	saved, err := svc.SaveNote(ctx, models.Note{Title: "t"})
	require.NoError(t, err)
	assert.True(t, saved.Pending())
}

func TestClientNoteService_SaveNote_OnlinePushOfLocalNoteDropsPlaceholder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, mockNet, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	localID := models.NewLocalNoteID()
	pending := models.Note{
		ID:          localID,
		OwnerID:     testSubject,
		Title:       "t",
		PendingSync: true,
		SyncState:   models.StatePendingCreate,
	}

	mockNet.EXPECT().Online().Return(true)
	mockAdapter.EXPECT().CreateNote(ctx, gomock.Any()).
		Return(models.Note{ID: "srv-9", Title: "t", SyncState: models.StateSynced}, nil)
	mockRepo.EXPECT().PutOne(ctx, gomock.Any()).Return("srv-9", nil)
	mockRepo.EXPECT().DeleteOne(ctx, localID).Return(nil)

	saved, err := svc.SaveNote(ctx, pending)
	require.NoError(t, err)
	assert.Equal(t, "srv-9", saved.ID)

	// the list must not contain both the placeholder and the real record
	notes := svc.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, "srv-9", notes[0].ID)
}

// ── SyncPending ──────────────────────────────────────────────────────────────

func TestClientNoteService_SyncPending_PushesCreateAndUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, mockNet, mockNotifier := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	localID := models.NewLocalNoteID()
	pending := []models.Note{
		{ID: localID, OwnerID: testSubject, Title: "a", PendingSync: true, SyncState: models.StatePendingCreate},
		{ID: "srv-2", OwnerID: testSubject, Title: "b", PendingSync: true, SyncState: models.StatePendingUpdate},
	}

	mockNet.EXPECT().Online().Return(true)
	mockRepo.EXPECT().GetPending(ctx, testSubject).Return(pending, nil)

	mockAdapter.EXPECT().CreateNote(ctx, models.NotePayload{Title: "a"}).
		Return(models.Note{ID: "srv-1", Title: "a", SyncState: models.StateSynced}, nil)
	mockRepo.EXPECT().DeleteOne(ctx, localID).Return(nil)
	mockRepo.EXPECT().PutOne(ctx, gomock.Any()).Return("srv-1", nil)
	mockNotifier.EXPECT().NoteSynced(gomock.Any())

	mockAdapter.EXPECT().UpdateNote(ctx, "srv-2", models.NotePayload{Title: "b"}).
		Return(models.Note{ID: "srv-2", Title: "b", SyncState: models.StateSynced}, nil)
	mockRepo.EXPECT().PutOne(ctx, gomock.Any()).Return("srv-2", nil)
	mockNotifier.EXPECT().NoteSynced(gomock.Any())

	require.NoError(t, svc.SyncPending(ctx))
}

func TestClientNoteService_SyncPending_OneFailureDoesNotBlockRest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, mockNet, mockNotifier := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	pending := []models.Note{
		{ID: "srv-1", OwnerID: testSubject, Title: "a", PendingSync: true, SyncState: models.StatePendingUpdate},
		{ID: "srv-2", OwnerID: testSubject, Title: "b", PendingSync: true, SyncState: models.StatePendingUpdate},
	}

	mockNet.EXPECT().Online().Return(true)
	mockRepo.EXPECT().GetPending(ctx, testSubject).Return(pending, nil)

	mockAdapter.EXPECT().UpdateNote(ctx, "srv-1", gomock.Any()).
		Return(models.Note{}, adapter.ErrRemoteRejected)
	mockNotifier.EXPECT().SyncFailed("srv-1", gomock.Any())

	mockAdapter.EXPECT().UpdateNote(ctx, "srv-2", gomock.Any()).
		Return(models.Note{ID: "srv-2", Title: "b", SyncState: models.StateSynced}, nil)
	mockRepo.EXPECT().PutOne(ctx, gomock.Any()).Return("srv-2", nil)
	mockNotifier.EXPECT().NoteSynced(gomock.Any())

	err := svc.SyncPending(ctx)
	assert.ErrorIs(t, err, ErrSyncItemFailed)
}

func TestClientNoteService_SyncPending_OfflineIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockNet, _ := newTestNoteSvc(t, ctrl)

	mockNet.EXPECT().Online().Return(false)

	require.NoError(t, svc.SyncPending(context.Background()))
}

func TestClientNoteService_SyncPending_SecondConcurrentPassRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestNoteSvc(t, ctrl)

	svc.syncMu.Lock()
	defer svc.syncMu.Unlock()

	err := svc.SyncPending(context.Background())
	assert.ErrorIs(t, err, ErrSyncInProgress)
}

// ── DeleteNote ───────────────────────────────────────────────────────────────

func TestClientNoteService_DeleteNote_RemoteFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, _, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().DeleteNote(ctx, "srv-1").Return(nil),
		mockRepo.EXPECT().DeleteOne(ctx, "srv-1").Return(nil),
	)

	require.NoError(t, svc.DeleteNote(ctx, "srv-1"))
}

func TestClientNoteService_DeleteNote_RemoteFailureKeepsLocalCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockAdapter, _, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteNote(ctx, "srv-1").Return(adapter.ErrNetworkUnavailable)

	err := svc.DeleteNote(ctx, "srv-1")
	assert.ErrorIs(t, err, adapter.ErrNetworkUnavailable)
}

// ── Notes / Logout ───────────────────────────────────────────────────────────

func TestClientNoteService_Notes_SortedByMostRecent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestNoteSvc(t, ctrl)

	now := time.Now()
	svc.replaceList([]models.Note{
		{ID: "old", UpdatedAt: now.Add(-time.Hour)},
		{ID: "new", UpdatedAt: now},
	})

	notes := svc.Notes()
	require.Len(t, notes, 2)
	assert.Equal(t, "new", notes[0].ID)
	assert.Equal(t, "old", notes[1].ID)
}

func TestClientNoteService_Logout_PurgesEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter, _, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	svc.replaceList([]models.Note{ownedNote("n-1", "t")})

	mockRepo.EXPECT().Clear(ctx).Return(nil)
	mockAdapter.EXPECT().SetToken("")

	require.NoError(t, svc.Logout(ctx))
	assert.Empty(t, svc.Notes())
}

func TestClientNoteService_Logout_ClearFailureKeepsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().Clear(ctx).Return(errors.New("disk gone"))

	assert.Error(t, svc.Logout(ctx))
}
