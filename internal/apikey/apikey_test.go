package apikey

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithAPIKeyRoundTrip(t *testing.T) {
	ctx := WithAPIKey(context.Background(), "agp_test_key")

	key, ok := FromContext(ctx)
	require.True(t, ok)
	require.Equal(t, "agp_test_key", key)
}

func TestFromContextAbsent(t *testing.T) {
	key, ok := FromContext(context.Background())
	require.False(t, ok)
	require.Empty(t, key)
}

func TestWithAPIKeyEmptyIsAbsent(t *testing.T) {
	ctx := WithAPIKey(context.Background(), "")

	_, ok := FromContext(ctx)
	require.False(t, ok)
}

func TestBindingDoesNotLeakAcrossRequests(t *testing.T) {
	// Two concurrent logical requests with distinct keys must each observe
	// only their own binding.
	keys := []string{"agp_key_one", "agp_key_two", "agp_key_three", "agp_key_four"}

	var wg sync.WaitGroup
	for _, want := range keys {
		wg.Add(1)
		go func(want string) {
			defer wg.Done()
			ctx := WithAPIKey(context.Background(), want)
			for i := 0; i < 1000; i++ {
				got, ok := FromContext(ctx)
				if !ok || got != want {
					t.Errorf("expected %q, got %q (ok=%v)", want, got, ok)
					return
				}
			}
		}(want)
	}
	wg.Wait()
}

func TestNestedBindingShadowsOuter(t *testing.T) {
	outer := WithAPIKey(context.Background(), "agp_outer")
	inner := WithAPIKey(outer, "agp_inner")

	key, ok := FromContext(inner)
	require.True(t, ok)
	require.Equal(t, "agp_inner", key)

	// The outer binding is untouched once the inner scope is discarded.
	key, ok = FromContext(outer)
	require.True(t, ok)
	require.Equal(t, "agp_outer", key)
}
