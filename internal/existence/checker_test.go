package existence

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qualifygym/internal/common"
	"qualifygym/internal/config"
)

func TestHTTPChecker_Exists(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		policy  Policy
		want    bool
	}{
		{
			name: "remote reports true",
			handler: func(w http.ResponseWriter, r *http.Request) {
				common.RespondJSON(w, http.StatusOK, common.ExistsResponse{Exists: true})
			},
			want: true,
		},
		{
			name: "remote reports false",
			handler: func(w http.ResponseWriter, r *http.Request) {
				common.RespondJSON(w, http.StatusOK, common.ExistsResponse{Exists: false})
			},
			policy: FailOpen,
			want:   false,
		},
		{
			name: "404 is missing even when fail-open",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			policy: FailOpen,
			want:   false,
		},
		{
			name: "500 fail-closed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			policy: FailClosed,
			want:   false,
		},
		{
			name: "500 fail-open",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			policy: FailOpen,
			want:   true,
		},
		{
			name: "garbage body falls back",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("not json"))
			},
			policy: FailOpen,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			checker := NewHTTPChecker(srv.Client(), srv.URL, ResourceUsers, tt.policy)
			assert.Equal(t, tt.want, checker.Exists(context.Background(), 5))
		})
	}
}

func TestHTTPChecker_RequestPath(t *testing.T) {
	var gotPath, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRequestID = r.Header.Get("X-Request-ID")
		common.RespondJSON(w, http.StatusOK, common.ExistsResponse{Exists: true})
	}))
	defer srv.Close()

	checker := NewHTTPChecker(srv.Client(), srv.URL+"/api/v1", ResourcePublications, FailClosed)
	ctx := context.WithValue(context.Background(), common.RequestIDKey, "rid-1")

	require.True(t, checker.Exists(ctx, 10))
	assert.Equal(t, "/api/v1/publications/10/exists", gotPath)
	assert.Equal(t, "rid-1", gotRequestID)
}

func TestHTTPChecker_ZeroIDNeverQueried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	checker := NewHTTPChecker(srv.Client(), srv.URL, ResourceTopics, FailOpen)
	assert.False(t, checker.Exists(context.Background(), 0))
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestHTTPChecker_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := &http.Client{Timeout: time.Second}
	assert.False(t, NewHTTPChecker(client, url, ResourceUsers, FailClosed).Exists(context.Background(), 1))
	assert.True(t, NewHTTPChecker(client, url, ResourceStates, FailOpen).Exists(context.Background(), 1))
}

func TestHTTPChecker_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := &http.Client{Timeout: 20 * time.Millisecond}
	assert.False(t, NewHTTPChecker(client, srv.URL, ResourceUsers, FailClosed).Exists(context.Background(), 1))
}

func TestHandler(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/users/{id}/exists", Handler(func(ctx context.Context, id uint64) (bool, error) {
		switch id {
		case 1:
			return true, nil
		case 2:
			return false, nil
		default:
			return false, errors.New("db down")
		}
	})).Methods(http.MethodGet)

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/users/1/exists", http.StatusOK, `{"exists":true}`},
		{"/users/2/exists", http.StatusOK, `{"exists":false}`},
		{"/users/0/exists", http.StatusBadRequest, ""},
		{"/users/3/exists", http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.JSONEq(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestNewCheckers_Policies(t *testing.T) {
	cfg := config.LoadConfig(config.CommentService)
	checkers := NewCheckers(cfg)

	assert.Equal(t, FailClosed, checkers.Users.(*HTTPChecker).policy)
	assert.Equal(t, FailClosed, checkers.Publications.(*HTTPChecker).policy)
	assert.Equal(t, FailClosed, checkers.Topics.(*HTTPChecker).policy)
	assert.Equal(t, FailOpen, checkers.States.(*HTTPChecker).policy)
	assert.Equal(t, "states", checkers.States.(*HTTPChecker).resource)
}
