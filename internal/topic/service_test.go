package topic

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qualifygym/internal/common"
	"qualifygym/internal/dbmysql"
	"qualifygym/internal/existence"
)

func newTestService(t *testing.T) (*TopicService, *MockTopicRepository, *existence.MockChecker) {
	ctrl := gomock.NewController(t)
	repo := NewMockTopicRepository(ctrl)
	estados := existence.NewMockChecker(ctrl)
	return NewTopicService(repo, &existence.Checkers{States: estados}), repo, estados
}

func TestTopicService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		topicName   string
		estadoID    uint64
		setup       func(repo *MockTopicRepository, estados *existence.MockChecker)
		wantErr     bool
		errKind     common.ErrorKind
		errContains string
	}{
		{
			name:      "success",
			topicName: " Movilidad ",
			estadoID:  1,
			setup: func(repo *MockTopicRepository, estados *existence.MockChecker) {
				repo.EXPECT().ExistsByName(ctx, "Movilidad").Return(false, nil)
				estados.EXPECT().Exists(ctx, uint64(1)).Return(true)
				repo.EXPECT().Create(ctx, &dbmysql.Topic{Name: "Movilidad", EstadoID: 1}).Return(nil)
			},
		},
		{
			name:        "blank name",
			topicName:   "  ",
			estadoID:    1,
			setup:       func(repo *MockTopicRepository, estados *existence.MockChecker) {},
			wantErr:     true,
			errKind:     common.KindValidation,
			errContains: "name is required",
		},
		{
			name:        "missing estado id",
			topicName:   "Movilidad",
			setup:       func(repo *MockTopicRepository, estados *existence.MockChecker) {},
			wantErr:     true,
			errKind:     common.KindValidation,
			errContains: "estado_id",
		},
		{
			name:      "duplicate name",
			topicName: "Nutrición",
			estadoID:  1,
			setup: func(repo *MockTopicRepository, estados *existence.MockChecker) {
				repo.EXPECT().ExistsByName(ctx, "Nutrición").Return(true, nil)
			},
			wantErr: true,
			errKind: common.KindConflict,
		},
		{
			name:      "unknown estado",
			topicName: "Movilidad",
			estadoID:  42,
			setup: func(repo *MockTopicRepository, estados *existence.MockChecker) {
				repo.EXPECT().ExistsByName(ctx, "Movilidad").Return(false, nil)
				estados.EXPECT().Exists(ctx, uint64(42)).Return(false)
			},
			wantErr:     true,
			errKind:     common.KindReferentialIntegrity,
			errContains: "state does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, estados := newTestService(t)
			tt.setup(repo, estados)

			got, err := svc.Create(ctx, tt.topicName, tt.estadoID)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errKind, common.KindOf(err))
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Movilidad", got.Name)
		})
	}
}

func TestTopicService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("rename and move", func(t *testing.T) {
		svc, repo, estados := newTestService(t)
		topic := &dbmysql.Topic{ID: 3, Name: "Nutrición", EstadoID: 1}
		repo.EXPECT().ByID(ctx, uint64(3)).Return(topic, nil)
		repo.EXPECT().ByName(ctx, "Dieta").Return(nil, common.NewNotFoundError("topic", "Dieta"))
		estados.EXPECT().Exists(ctx, uint64(2)).Return(true)
		repo.EXPECT().Save(ctx, topic).Return(nil)

		got, err := svc.Update(ctx, 3, "Dieta", 2)
		require.NoError(t, err)
		assert.Equal(t, "Dieta", got.Name)
		assert.Equal(t, uint64(2), got.EstadoID)
	})

	t.Run("blank fields are no-ops", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		topic := &dbmysql.Topic{ID: 3, Name: "Nutrición", EstadoID: 1}
		repo.EXPECT().ByID(ctx, uint64(3)).Return(topic, nil)
		repo.EXPECT().Save(ctx, topic).Return(nil)

		got, err := svc.Update(ctx, 3, " ", 0)
		require.NoError(t, err)
		assert.Equal(t, "Nutrición", got.Name)
		assert.Equal(t, uint64(1), got.EstadoID)
	})

	t.Run("unknown estado", func(t *testing.T) {
		svc, repo, estados := newTestService(t)
		repo.EXPECT().ByID(ctx, uint64(3)).Return(&dbmysql.Topic{ID: 3, Name: "Nutrición", EstadoID: 1}, nil)
		estados.EXPECT().Exists(ctx, uint64(9)).Return(false)

		_, err := svc.Update(ctx, 3, "", 9)
		assert.Equal(t, common.KindReferentialIntegrity, common.KindOf(err))
	})
}

func TestTopicService_Search(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService(t)

	repo.EXPECT().All(ctx).Return([]*dbmysql.Topic{{ID: 1}, {ID: 2}}, nil)
	repo.EXPECT().SearchByName(ctx, "cardio").Return([]*dbmysql.Topic{{ID: 2}}, nil)

	all, err := svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	found, err := svc.Search(ctx, " cardio ")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestTopicService_Seed(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService(t)

	repo.EXPECT().Count(ctx).Return(int64(0), nil)
	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, topic *dbmysql.Topic) error {
		assert.Equal(t, uint64(1), topic.EstadoID)
		return nil
	}).Times(len(DefaultNames))

	require.NoError(t, svc.Seed(ctx))
}
