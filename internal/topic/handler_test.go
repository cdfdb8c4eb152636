package topic

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"qualifygym/internal/dbmysql"
	"qualifygym/internal/existence"
)

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setup      func(repo *MockTopicRepository, estados *existence.MockChecker)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "by state",
			method: http.MethodGet,
			path:   "/api/v1/topics/state/1",
			setup: func(repo *MockTopicRepository, estados *existence.MockChecker) {
				repo.EXPECT().ByEstadoID(gomock.Any(), uint64(1)).Return([]*dbmysql.Topic{{ID: 1, Name: "Suplementos", EstadoID: 1}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "Suplementos",
		},
		{
			name:   "count by state",
			method: http.MethodGet,
			path:   "/api/v1/topics/state/1/count",
			setup: func(repo *MockTopicRepository, estados *existence.MockChecker) {
				repo.EXPECT().CountByEstadoID(gomock.Any(), uint64(1)).Return(int64(6), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"count":6}`,
		},
		{
			name:   "search without matches",
			method: http.MethodGet,
			path:   "/api/v1/topics/search?query=yoga",
			setup: func(repo *MockTopicRepository, estados *existence.MockChecker) {
				repo.EXPECT().SearchByName(gomock.Any(), "yoga").Return(nil, nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "name exists",
			method: http.MethodGet,
			path:   "/api/v1/topics/name/Suplementos/exists",
			setup: func(repo *MockTopicRepository, estados *existence.MockChecker) {
				repo.EXPECT().ExistsByName(gomock.Any(), "Suplementos").Return(true, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"exists":true}`,
		},
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/api/v1/topics",
			body:   `{"name":"Movilidad","estado_id":1}`,
			setup: func(repo *MockTopicRepository, estados *existence.MockChecker) {
				repo.EXPECT().ExistsByName(gomock.Any(), "Movilidad").Return(false, nil)
				estados.EXPECT().Exists(gomock.Any(), uint64(1)).Return(true)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"estado_id":1`,
		},
		{
			name:       "invalid id",
			method:     http.MethodGet,
			path:       "/api/v1/topics/0",
			setup:      func(repo *MockTopicRepository, estados *existence.MockChecker) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, estados := newTestService(t)
			tt.setup(repo, estados)
			router := mux.NewRouter()
			NewHandler(svc).RegisterRoutes(router.PathPrefix("/api/v1").Subrouter())

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
