//go:build integration

package rod_test

import (
	"testing"

	"github.com/asheesh-yadav/leximorph"
	"github.com/asheesh-yadav/leximorph/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserPool_Acquire(t *testing.T) {
	t.Parallel()

	t.Run("replaces the browser after max pages", func(t *testing.T) {
		t.Parallel()

		pool, err := rod.NewBrowserPool(rod.WithMaxPages(2))
		require.NoError(t, err)
		defer pool.Close()

		var browsers []any
		for range 3 {
			lease, err := pool.Acquire()
			require.NoError(t, err)
			browsers = append(browsers, lease.Browser)
			lease.Release()
		}

		assert.Same(t, browsers[0], browsers[1])
		assert.NotSame(t, browsers[1], browsers[2])
	})

	t.Run("keeps a replaced browser open until its lease is released", func(t *testing.T) {
		t.Parallel()

		pool, err := rod.NewBrowserPool(rod.WithMaxPages(1))
		require.NoError(t, err)
		defer pool.Close()

		first, err := pool.Acquire()
		require.NoError(t, err)
		second, err := pool.Acquire()
		require.NoError(t, err)
		defer second.Release()

		assert.NotSame(t, first.Browser, second.Browser)
		_, err = first.Browser.Pages()
		assert.NoError(t, err)

		first.Release()
		first.Release()
	})

	t.Run("refuses leases once closed", func(t *testing.T) {
		t.Parallel()

		pool, err := rod.NewBrowserPool()
		require.NoError(t, err)
		require.NoError(t, pool.Close())
		require.NoError(t, pool.Close())

		_, err = pool.Acquire()
		assert.Equal(t, leximorph.EINVALID, leximorph.ErrorCode(err))
		assert.Zero(t, pool.LauncherPID())
	})
}
