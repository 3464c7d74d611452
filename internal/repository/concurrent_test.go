package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/alexanderramin/grove/internal/domain"
	"github.com/alexanderramin/grove/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentAccess_ReadsDuringSessionWrites(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	ctx := context.Background()

	categories := NewSQLiteCategoryRepo(database)
	sessions := NewSQLiteSessionRepo(database)

	cat := testutil.NewTestCategory("Work")
	require.NoError(t, categories.Create(ctx, cat))

	const writes = 20
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			s := testutil.NewTestSession(cat.ID, 10+i, testutil.WithTitle(fmt.Sprintf("Session %d", i)))
			if err := sessions.Create(ctx, s); err != nil {
				t.Errorf("writer: create session %d: %v", i, err)
				return
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				list, err := sessions.ListByCategory(ctx, cat.ID)
				if err != nil {
					t.Errorf("reader %d: list sessions: %v", reader, err)
					return
				}
				for _, s := range list {
					if s.ID == "" || s.MinutesFocused <= 0 {
						t.Errorf("reader %d: half-written session %+v", reader, s)
					}
				}
			}
		}(r)
	}

	wg.Wait()

	all, err := sessions.ListByCategory(ctx, cat.ID)
	require.NoError(t, err)
	assert.Len(t, all, writes)
}

// Concurrent replace-all saves are last-writer-wins: the store ends up holding
// exactly one writer's batch, never a mix.
func TestConcurrentAccess_ReplaceAllIsNeverInterleaved(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	store := NewSQLiteStore(database, testutil.NewTestUoW(database))
	ctx := context.Background()

	const writers = 4
	const perBatch = 10

	batches := make([][]domain.Session, writers)
	for w := range batches {
		catID := fmt.Sprintf("cat-%d", w)
		for i := 0; i < perBatch; i++ {
			batches[w] = append(batches[w], *testutil.NewTestSession(catID, 5+i))
		}
	}

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			if err := store.SaveSessions(ctx, batches[w]); err != nil {
				t.Errorf("writer %d: save sessions: %v", w, err)
			}
		}(w)
	}
	wg.Wait()

	got, err := store.LoadSessions(ctx)
	require.NoError(t, err)
	require.Len(t, got, perBatch)

	owner := got[0].CategoryID
	for _, s := range got {
		assert.Equal(t, owner, s.CategoryID, "sessions from different saves were mixed")
	}
}
