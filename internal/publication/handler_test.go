package publication

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
		setup      func(m *serviceMocks)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "list visible by default",
			method: http.MethodGet,
			path:   "/api/v1/publications",
			setup: func(m *serviceMocks) {
				m.repo.EXPECT().All(gomock.Any(), false).Return([]*dbmysql.Publication{{ID: 1, Title: "Leg day"}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "Leg day",
		},
		{
			name:   "list including hidden",
			method: http.MethodGet,
			path:   "/api/v1/publications?include_hidden=true",
			setup: func(m *serviceMocks) {
				m.repo.EXPECT().All(gomock.Any(), true).Return([]*dbmysql.Publication{}, nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "search",
			method: http.MethodGet,
			path:   "/api/v1/publications/search?query=leg",
			setup: func(m *serviceMocks) {
				m.repo.EXPECT().Search(gomock.Any(), "leg").Return([]*dbmysql.Publication{{ID: 1, Title: "Leg day"}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "Leg day",
		},
		{
			name:   "count by topic",
			method: http.MethodGet,
			path:   "/api/v1/publications/topic/2/count",
			setup: func(m *serviceMocks) {
				m.repo.EXPECT().CountByTopicID(gomock.Any(), uint64(2)).Return(int64(3), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"count":3}`,
		},
		{
			name:   "get missing",
			method: http.MethodGet,
			path:   "/api/v1/publications/7",
			setup: func(m *serviceMocks) {
				m.repo.EXPECT().ByID(gomock.Any(), uint64(7)).Return(nil, common.NewNotFoundError("publication", 7))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "create without title",
			method:     http.MethodPost,
			path:       "/api/v1/publications",
			body:       `{"description":"Squats","user_id":1,"topic_id":2}`,
			setup:      func(m *serviceMocks) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "title is required",
		},
		{
			name:   "clear image",
			method: http.MethodPut,
			path:   "/api/v1/publications/1/image",
			body:   `{"image_url":""}`,
			setup: func(m *serviceMocks) {
				url := "http://img/1.png"
				p := &dbmysql.Publication{ID: 1, ImageURL: &url}
				m.repo.EXPECT().ByID(gomock.Any(), uint64(1)).Return(p, nil)
				m.repo.EXPECT().Save(gomock.Any(), p).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"image_url":null`,
		},
		{
			name:   "show",
			method: http.MethodPut,
			path:   "/api/v1/publications/1/show",
			setup: func(m *serviceMocks) {
				p := &dbmysql.Publication{ID: 1}
				m.repo.EXPECT().ByID(gomock.Any(), uint64(1)).Return(p, nil)
				m.repo.EXPECT().Save(gomock.Any(), p).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"hidden":false`,
		},
		{
			name:   "exists",
			method: http.MethodGet,
			path:   "/api/v1/publications/1/exists",
			setup: func(m *serviceMocks) {
				m.repo.EXPECT().Exists(gomock.Any(), uint64(1)).Return(false, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"exists":false}`,
		},
		{
			name:   "delete missing",
			method: http.MethodDelete,
			path:   "/api/v1/publications/1",
			setup: func(m *serviceMocks) {
				m.repo.EXPECT().ByID(gomock.Any(), uint64(1)).Return(nil, common.NewNotFoundError("publication", 1))
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t)
			tt.setup(m)
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
