//go:build unix

package termtrack_test

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~rockorager/termtrack"
)

func TestGracefulSignal(t *testing.T) {
	err := termtrack.Graceful(func(ctx context.Context) error {
		require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
			t.Error("interrupt never delivered")
			return nil
		}
	})
	assert.NoError(t, err)
}
