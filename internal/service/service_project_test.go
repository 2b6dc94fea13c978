// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-tick-sdk/internal/logger"
	"github.com/MKhiriev/go-tick-sdk/internal/mock"
	"github.com/MKhiriev/go-tick-sdk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProjectSvc(t *testing.T, ctrl *gomock.Controller) (ProjectService, *mock.MockServerAdapter) {
	t.Helper()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	syncSvc := NewSyncService(mockAdapter, NewCheckpointStore(0), nil, logger.Nop())
	batchSvc := NewBatchService(mockAdapter, logger.Nop())

	return NewProjectService(mockAdapter, syncSvc, batchSvc, logger.Nop()), mockAdapter
}

func projectSnapshot(projects ...models.Project) *models.Snapshot {
	return &models.Snapshot{Checkpoint: 100, Projects: models.NewCollection(projects...)}
}

func TestProjectService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestProjectSvc(t, ctrl)

	mockAdapter.EXPECT().
		Check(gomock.Any(), int64(0)).
		Return(projectSnapshot(models.Project{ID: "p1"}), nil)

	_, err := svc.Get(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectService_Rename_ReadsThenWritesBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestProjectSvc(t, ctrl)
	ctx := context.Background()

	current := models.Project{ID: "p1", Name: "Old", Etag: "e1"}
	gomock.InOrder(
		mockAdapter.EXPECT().Check(gomock.Any(), int64(0)).Return(projectSnapshot(current), nil),
		mockAdapter.EXPECT().
			UpdateProject(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p models.Project) (*models.Project, error) {
				assert.Equal(t, "New", p.Name)
				assert.Equal(t, "e1", p.Etag, "the rest of the record must come from the server state")
				return &p, nil
			}),
	)

	renamed, err := svc.Rename(ctx, "p1", "New")

	require.NoError(t, err)
	assert.Equal(t, "New", renamed.Name)
}

func TestProjectService_Archive_SetsClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestProjectSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().
			Check(gomock.Any(), int64(0)).
			Return(projectSnapshot(models.Project{ID: "p1", Name: "Work"}), nil),
		mockAdapter.EXPECT().
			UpdateProject(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p models.Project) (*models.Project, error) {
				require.NotNil(t, p.Closed)
				assert.True(t, *p.Closed)
				return &p, nil
			}),
	)

	_, err := svc.Archive(ctx, "p1")

	require.NoError(t, err)
}

func TestProjectService_RenameGroup_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestProjectSvc(t, ctrl)

	mockAdapter.EXPECT().
		Check(gomock.Any(), int64(0)).
		Return(&models.Snapshot{
			Checkpoint: 100,
			Groups:     models.NewCollection(models.ProjectGroup{ID: "g1", Name: "Folder"}),
		}, nil)

	_, err := svc.RenameGroup(context.Background(), "missing", "New")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestProjectService_RemoveFromGroup_ClearsGroupID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestProjectSvc(t, ctrl)
	ctx := context.Background()

	group := "g1"
	gomock.InOrder(
		mockAdapter.EXPECT().
			Check(gomock.Any(), int64(0)).
			Return(projectSnapshot(models.Project{ID: "p1", GroupID: &group}), nil),
		mockAdapter.EXPECT().
			UpdateProject(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p models.Project) (*models.Project, error) {
				require.NotNil(t, p.GroupID)
				assert.Empty(t, *p.GroupID)
				return &p, nil
			}),
	)

	_, err := svc.RemoveFromGroup(ctx, "p1")

	require.NoError(t, err)
}
