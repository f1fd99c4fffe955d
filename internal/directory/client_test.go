package directory

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"discountapi/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("missing base url", func(t *testing.T) {
		cli, err := NewClient(config.DirectoryConfig{})
		assert.Error(t, err)
		assert.Nil(t, cli)
	})

	t.Run("valid config", func(t *testing.T) {
		cli, err := NewClient(config.DirectoryConfig{BaseURL: "http://directory:8081", TimeoutSec: 3})
		assert.NoError(t, err)
		assert.NotNil(t, cli)
	})
}

func TestClient_FetchName(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         int64
		handler    http.HandlerFunc
		want       string
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "happy path",
			id:   42,
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/users/42", r.URL.Path)
				assert.Equal(t, http.MethodGet, r.Method)
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, `{"name":"Ada Lovelace","role":"member"}`)
			},
			want: "Ada Lovelace",
		},
		{
			name: "user not found",
			id:   7,
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "upstream failure propagates",
			id:   42,
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErrMsg: "directory returned status 500",
		},
		{
			name: "malformed body",
			id:   42,
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"name":`)
			},
			wantErrMsg: "decode directory response",
		},
		{
			name: "missing name field",
			id:   42,
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"id":42}`)
			},
			wantErrMsg: "has no name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				tt.handler(w, r)
			}))
			defer srv.Close()

			cli, err := NewClient(config.DirectoryConfig{BaseURL: srv.URL, TimeoutSec: 2})
			require.NoError(t, err)

			got, err := cli.FetchName(ctx, tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else if tt.wantErrMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			// One outbound request per call, never more.
			assert.Equal(t, 1, calls)
		})
	}
}

func TestClient_FetchName_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		fmt.Fprint(w, `{"name":"late"}`)
	}))
	defer srv.Close()

	cli, err := NewClient(config.DirectoryConfig{BaseURL: srv.URL, TimeoutSec: 2})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = cli.FetchName(ctx, 1)
	assert.Error(t, err)
}
