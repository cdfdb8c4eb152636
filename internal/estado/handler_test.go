package estado

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"qualifygym/internal/common"
	"qualifygym/internal/dbmysql"
)

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setup      func(repo *MockEstadoRepository)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/api/v1/states",
			setup: func(repo *MockEstadoRepository) {
				repo.EXPECT().All(gomock.Any()).Return([]*dbmysql.Estado{{ID: 1, Name: "Activo"}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"Activo"`,
		},
		{
			name:   "by name",
			method: http.MethodGet,
			path:   "/api/v1/states/name/Activo",
			setup: func(repo *MockEstadoRepository) {
				repo.EXPECT().ByName(gomock.Any(), "Activo").Return(&dbmysql.Estado{ID: 1, Name: "Activo"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":1`,
		},
		{
			name:   "name exists",
			method: http.MethodGet,
			path:   "/api/v1/states/name/Nada/exists",
			setup: func(repo *MockEstadoRepository) {
				repo.EXPECT().ExistsByName(gomock.Any(), "Nada").Return(false, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"exists":false}`,
		},
		{
			name:   "id exists",
			method: http.MethodGet,
			path:   "/api/v1/states/1/exists",
			setup: func(repo *MockEstadoRepository) {
				repo.EXPECT().Exists(gomock.Any(), uint64(1)).Return(true, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"exists":true}`,
		},
		{
			name:   "get missing",
			method: http.MethodGet,
			path:   "/api/v1/states/8",
			setup: func(repo *MockEstadoRepository) {
				repo.EXPECT().ByID(gomock.Any(), uint64(8)).Return(nil, common.NewNotFoundError("state", 8))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "create duplicate",
			method: http.MethodPost,
			path:   "/api/v1/states",
			body:   `{"name":"Activo"}`,
			setup: func(repo *MockEstadoRepository) {
				repo.EXPECT().ExistsByName(gomock.Any(), "Activo").Return(true, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "already exists",
		},
		{
			name:   "get or create",
			method: http.MethodPost,
			path:   "/api/v1/states/get-or-create",
			body:   `{"name":"Activo"}`,
			setup: func(repo *MockEstadoRepository) {
				repo.EXPECT().ByName(gomock.Any(), "Activo").Return(&dbmysql.Estado{ID: 1, Name: "Activo"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "delete missing",
			method: http.MethodDelete,
			path:   "/api/v1/states/3",
			setup: func(repo *MockEstadoRepository) {
				repo.EXPECT().Delete(gomock.Any(), uint64(3)).Return(common.NewNotFoundError("state", 3))
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockEstadoRepository(gomock.NewController(t))
			tt.setup(repo)
			router := mux.NewRouter()
			NewHandler(NewEstadoService(repo)).RegisterRoutes(router.PathPrefix("/api/v1").Subrouter())

			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBody)
			}
		})
	}
}
