package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/newsboard/internal/logging"
	"github.com/dmitrijs2005/newsboard/internal/testutil"
)

func TestRepository_Lifecycle(t *testing.T) {
	backends := map[string]Repository{
		"file":   NewFileRepository(t.TempDir(), logging.Discard()),
		"sqlite": NewSQLiteRepository(testutil.OpenSQLite(t)),
	}

	for name, r := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			id, err := r.Get(ctx)
			require.NoError(t, err)
			assert.Empty(t, id)

			require.NoError(t, r.Set(ctx, "u1"))
			require.NoError(t, r.Set(ctx, "u2"))
			id, err = r.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, "u2", id)

			require.NoError(t, r.Clear(ctx))
			require.NoError(t, r.Clear(ctx))
			id, err = r.Get(ctx)
			require.NoError(t, err)
			assert.Empty(t, id)
		})
	}
}
