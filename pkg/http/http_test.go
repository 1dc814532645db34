package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"reflect"
	"testing"
	"time"

	"github.com/kasuboski/nyaaz/pkg/http/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewRateLimitedHTTPClient(t *testing.T) {
	type args struct {
		opts []ClientOption
	}
	tests := []struct {
		name string
		args args
		want *RateLimitedClient
	}{
		{
			name: "default",
			args: args{
				opts: []ClientOption{},
			},
			want: &RateLimitedClient{
				client:      http.DefaultClient,
				maxRetries:  DefaultMaxRetries,
				baseBackoff: DefaultBaseBackoff,
				userAgent:   DefaultUserAgent,
			},
		},
		{
			name: "custom",
			args: args{
				opts: []ClientOption{
					WithMaxRetries(5),
					WithBaseBackoff(time.Millisecond * 100),
					WithHTTPClient(&http.Client{
						Transport: &http.Transport{
							MaxIdleConns: 10,
						},
					}),
				},
			},
			want: &RateLimitedClient{
				client: &http.Client{
					Transport: &http.Transport{
						MaxIdleConns: 10,
					},
				},
				maxRetries:  5,
				baseBackoff: time.Millisecond * 100,
				userAgent:   DefaultUserAgent,
			},
		},
		{
			name: "zero values keep defaults",
			args: args{
				opts: []ClientOption{
					WithMaxRetries(0),
					WithBaseBackoff(0),
					WithTimeout(time.Second),
				},
			},
			want: &RateLimitedClient{
				client:      &http.Client{Timeout: time.Second},
				maxRetries:  DefaultMaxRetries,
				baseBackoff: DefaultBaseBackoff,
				userAgent:   DefaultUserAgent,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewRateLimitedHTTPClient(tt.args.opts...); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NewRateLimitedHTTPClient() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRateLimitedHTTPClient_Do(t *testing.T) {
	t.Run("error during request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		req, err := http.NewRequest("GET", "https://example.com", nil)
		require.NoError(t, err)

		mhttp.EXPECT().Do(req).Return(nil, errors.New("http error")).Times(1)
		client := NewRateLimitedHTTPClient(WithHTTPClient(mhttp))
		resp, err := client.Do(req)
		assert.Error(t, err)
		assert.Nil(t, resp)
	})

	t.Run("non 429 response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		req, err := http.NewRequest("GET", "https://example.com", nil)
		require.NoError(t, err)

		mhttp.EXPECT().Do(req).Return(&http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBuffer([]byte("non 429 response"))),
		}, nil)

		client := NewRateLimitedHTTPClient(WithHTTPClient(mhttp))
		resp, err := client.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, DefaultUserAgent, req.Header.Get("User-Agent"))

		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "non 429 response", string(b))
	})

	t.Run("server errors are not repeated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		req, err := http.NewRequest("GET", "https://example.com", nil)
		require.NoError(t, err)

		mhttp.EXPECT().Do(req).Return(&http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(bytes.NewBuffer(nil)),
		}, nil).Times(1)

		client := NewRateLimitedHTTPClient(WithHTTPClient(mhttp))
		resp, err := client.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	})

	t.Run("429 response - max retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		req, err := http.NewRequest("GET", "https://example.com", nil)
		require.NoError(t, err)

		mhttp.EXPECT().Do(req).Return(&http.Response{
			StatusCode: http.StatusTooManyRequests,
			Body:       io.NopCloser(bytes.NewBuffer([]byte("429 response"))),
		}, nil)
		client := NewRateLimitedHTTPClient(WithHTTPClient(mhttp), WithMaxRetries(1))
		resp, err := client.Do(req)
		assert.ErrorContains(t, err, "rate limit exceeded after 1 retries")
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "429 response", string(b))
	})

	t.Run("429 then success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		req, err := http.NewRequest("GET", "https://example.com", nil)
		require.NoError(t, err)

		limited := mhttp.EXPECT().Do(req).Return(&http.Response{
			StatusCode: http.StatusTooManyRequests,
			Body:       io.NopCloser(bytes.NewBuffer(nil)),
		}, nil)
		ok := mhttp.EXPECT().Do(req).Return(&http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBuffer(nil)),
		}, nil)
		gomock.InOrder(limited, ok)

		client := NewRateLimitedHTTPClient(WithHTTPClient(mhttp), WithBaseBackoff(time.Millisecond))
		resp, err := client.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("429 waits are cancelled with the request context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		req, err := http.NewRequestWithContext(ctx, "GET", "https://example.com", nil)
		require.NoError(t, err)

		mhttp.EXPECT().Do(req).Return(&http.Response{
			StatusCode: http.StatusTooManyRequests,
			Header: http.Header{
				"Retry-After": []string{"60"},
			},
			Body: io.NopCloser(bytes.NewBuffer(nil)),
		}, nil).Times(1)

		client := NewRateLimitedHTTPClient(WithHTTPClient(mhttp))
		resp, err := client.Do(req)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, resp)
	})
}

func TestRateLimitedClient_getRetryAfter(t *testing.T) {
	t.Run("retry after header", func(t *testing.T) {
		c := &RateLimitedClient{baseBackoff: time.Second}
		resp := &http.Response{
			Header: http.Header{
				"Retry-After": []string{"1"},
			},
		}
		assert.Equal(t, time.Second, c.getRetryAfter(resp, 0))
	})

	t.Run("exponential backoff", func(t *testing.T) {
		c := &RateLimitedClient{baseBackoff: time.Second}
		got := c.getRetryAfter(&http.Response{}, 3)

		// 2^3 * 1 second plus up to one second of jitter
		assert.GreaterOrEqual(t, got, time.Second*8)
		assert.Less(t, got, time.Second*9)
	})
}
