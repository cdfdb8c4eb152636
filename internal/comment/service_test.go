package comment

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qualifygym/internal/common"
	"qualifygym/internal/dbmysql"
	"qualifygym/internal/existence"
	"qualifygym/internal/moderation"
)

type serviceMocks struct {
	repo         *MockCommentRepository
	users        *existence.MockChecker
	publications *existence.MockChecker
	notifier     *moderation.MockNotifier
}

func newTestService(t *testing.T) (*CommentService, *serviceMocks) {
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		repo:         NewMockCommentRepository(ctrl),
		users:        existence.NewMockChecker(ctrl),
		publications: existence.NewMockChecker(ctrl),
		notifier:     moderation.NewMockNotifier(ctrl),
	}
	checkers := &existence.Checkers{Users: m.users, Publications: m.publications}
	return NewCommentService(m.repo, checkers, m.notifier), m
}

func TestCommentService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		content     string
		setup       func(m *serviceMocks)
		wantErr     bool
		errContains string
		wantContent string
	}{
		{
			name:    "markup is stripped",
			content: "<b>Great</b> workout!<script>alert(1)</script>",
			setup: func(m *serviceMocks) {
				m.users.EXPECT().Exists(ctx, uint64(1)).Return(true)
				m.publications.EXPECT().Exists(ctx, uint64(10)).Return(true)
				m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *dbmysql.Comment) error {
					c.ID = 1
					return nil
				})
			},
			wantContent: "Great workout!",
		},
		{
			name:        "only markup is blank",
			content:     "<p>   </p>",
			setup:       func(m *serviceMocks) {},
			wantErr:     true,
			errContains: "comment body is required",
		},
		{
			name:    "missing publication",
			content: "hello",
			setup: func(m *serviceMocks) {
				m.users.EXPECT().Exists(ctx, uint64(1)).Return(true)
				m.publications.EXPECT().Exists(ctx, uint64(10)).Return(false)
			},
			wantErr:     true,
			errContains: "publication does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t)
			tt.setup(m)

			got, err := svc.Create(ctx, tt.content, 1, 10)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantContent, got.Content)
			assert.False(t, got.Hidden)
		})
	}
}

func TestCommentService_HideNotifiesOwner(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t)

	stored := &dbmysql.Comment{ID: 4, Content: "buy followers", UserID: 7, PublicationID: 10}
	m.repo.EXPECT().ByID(ctx, uint64(4)).Return(stored, nil)
	m.repo.EXPECT().Save(ctx, stored).Return(nil)
	m.notifier.EXPECT().Create(ctx, uint64(7), uint64(4), "spam").Return(&dbmysql.Notification{ID: 1}, nil).Times(1)

	got, err := svc.Hide(ctx, 4, "<i>spam</i>")
	require.NoError(t, err)
	assert.True(t, got.Hidden)
	assert.NotNil(t, got.BannedAt)
}

func TestCommentService_ListByPublication(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t)

	m.repo.EXPECT().ByPublicationID(ctx, uint64(10), false).Return([]*dbmysql.Comment{{ID: 1}}, nil)
	m.repo.EXPECT().ByPublicationID(ctx, uint64(10), true).Return([]*dbmysql.Comment{{ID: 1}, {ID: 2}}, nil)

	visible, err := svc.ListByPublication(ctx, 10, false)
	require.NoError(t, err)
	assert.Len(t, visible, 1)

	all, err := svc.ListByPublication(ctx, 10, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCommentService_DeleteMissing(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t)

	m.repo.EXPECT().ByID(ctx, uint64(9)).Return(nil, common.NewNotFoundError("comment", 9))

	err := svc.Delete(ctx, 9)
	assert.True(t, common.IsNotFound(err))
}
