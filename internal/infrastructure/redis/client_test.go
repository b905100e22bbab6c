package redis

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewClient(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	require.NoError(t, client.Set(context.Background(), "posting:JV", "1", 0).Err())
	assert.True(t, mr.Exists("posting:JV"))
}

func TestNewClientErrors(t *testing.T) {
	mr := miniredis.RunT(t)
	downURL := "redis://" + mr.Addr()
	mr.Close()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "invalid url", url: "://bad-url", want: "parse redis URL"},
		{name: "server down", url: downURL, want: "ping redis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(context.Background(), tt.url)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
