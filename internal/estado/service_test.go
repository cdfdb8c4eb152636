package estado

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"qualifygym/internal/common"
	"qualifygym/internal/dbmysql"
)

func TestEstadoService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		input       string
		setup       func(repo *MockEstadoRepository)
		wantErr     bool
		errKind     common.ErrorKind
		errContains string
	}{
		{
			name:  "trimmed and stored",
			input: "  Archivado ",
			setup: func(repo *MockEstadoRepository) {
				repo.EXPECT().ExistsByName(ctx, "Archivado").Return(false, nil)
				repo.EXPECT().Create(ctx, &dbmysql.Estado{Name: "Archivado"}).Return(nil)
			},
		},
		{
			name:        "blank",
			input:       "   ",
			setup:       func(repo *MockEstadoRepository) {},
			wantErr:     true,
			errKind:     common.KindValidation,
			errContains: "required",
		},
		{
			name:        "too long",
			input:       strings.Repeat("e", 101),
			setup:       func(repo *MockEstadoRepository) {},
			wantErr:     true,
			errKind:     common.KindValidation,
			errContains: "100",
		},
		{
			name:  "duplicate",
			input: "Activo",
			setup: func(repo *MockEstadoRepository) {
				repo.EXPECT().ExistsByName(ctx, "Activo").Return(true, nil)
			},
			wantErr:     true,
			errKind:     common.KindConflict,
			errContains: "already exists",
		},
		{
			name:  "unique index race",
			input: "Activo",
			setup: func(repo *MockEstadoRepository) {
				repo.EXPECT().ExistsByName(ctx, "Activo").Return(false, nil)
				repo.EXPECT().Create(ctx, gomock.Any()).
					Return(fmt.Errorf("failed to create state: %w", gorm.ErrDuplicatedKey))
			},
			wantErr: true,
			errKind: common.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := NewMockEstadoRepository(ctrl)
			tt.setup(repo)

			got, err := NewEstadoService(repo).Create(ctx, tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errKind, common.KindOf(err))
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Archivado", got.Name)
		})
	}
}

func TestEstadoService_GetOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("existing", func(t *testing.T) {
		repo := NewMockEstadoRepository(gomock.NewController(t))
		repo.EXPECT().ByName(ctx, "Activo").Return(&dbmysql.Estado{ID: 1, Name: "Activo"}, nil)

		got, err := NewEstadoService(repo).GetOrCreate(ctx, "Activo")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), got.ID)
	})

	t.Run("created", func(t *testing.T) {
		repo := NewMockEstadoRepository(gomock.NewController(t))
		repo.EXPECT().ByName(ctx, "Nuevo").Return(nil, common.NewNotFoundError("state", "Nuevo"))
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *dbmysql.Estado) error {
			e.ID = 9
			return nil
		})

		got, err := NewEstadoService(repo).GetOrCreate(ctx, " Nuevo ")
		require.NoError(t, err)
		assert.Equal(t, uint64(9), got.ID)
		assert.Equal(t, "Nuevo", got.Name)
	})
}

func TestEstadoService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("name taken by another state", func(t *testing.T) {
		repo := NewMockEstadoRepository(gomock.NewController(t))
		repo.EXPECT().ByID(ctx, uint64(2)).Return(&dbmysql.Estado{ID: 2, Name: "Inactivo"}, nil)
		repo.EXPECT().ByName(ctx, "Activo").Return(&dbmysql.Estado{ID: 1, Name: "Activo"}, nil)

		_, err := NewEstadoService(repo).Update(ctx, 2, "Activo")
		assert.Equal(t, common.KindConflict, common.KindOf(err))
	})

	t.Run("same name on same state", func(t *testing.T) {
		repo := NewMockEstadoRepository(gomock.NewController(t))
		e := &dbmysql.Estado{ID: 1, Name: "Activo"}
		repo.EXPECT().ByID(ctx, uint64(1)).Return(e, nil)
		repo.EXPECT().ByName(ctx, "Activo").Return(e, nil)
		repo.EXPECT().Save(ctx, e).Return(nil)

		got, err := NewEstadoService(repo).Update(ctx, 1, "Activo")
		require.NoError(t, err)
		assert.Equal(t, "Activo", got.Name)
	})

	t.Run("missing", func(t *testing.T) {
		repo := NewMockEstadoRepository(gomock.NewController(t))
		repo.EXPECT().ByID(ctx, uint64(5)).Return(nil, common.NewNotFoundError("state", 5))

		_, err := NewEstadoService(repo).Update(ctx, 5, "x")
		assert.True(t, common.IsNotFound(err))
	})
}

func TestEstadoService_Seed(t *testing.T) {
	ctx := context.Background()

	t.Run("empty table", func(t *testing.T) {
		repo := NewMockEstadoRepository(gomock.NewController(t))
		repo.EXPECT().Count(ctx).Return(int64(0), nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(len(DefaultNames))

		require.NoError(t, NewEstadoService(repo).Seed(ctx))
	})

	t.Run("already seeded", func(t *testing.T) {
		repo := NewMockEstadoRepository(gomock.NewController(t))
		repo.EXPECT().Count(ctx).Return(int64(4), nil)

		require.NoError(t, NewEstadoService(repo).Seed(ctx))
	})
}
