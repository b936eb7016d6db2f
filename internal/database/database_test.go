package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyhub/studyhub/internal/config"
	"github.com/studyhub/studyhub/pkg/task"
)

func TestOpen_CreatesFileAndDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "tasks.db")

	db, err := Open(config.Database{Path: path})
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(filepath.Dir(path))
	assert.NoError(t, err)
}

func TestOpen_UnwritablePathStillReturnsHandle(t *testing.T) {
	// A regular file where the parent directory should go makes MkdirAll
	// fail, so the database can never be created.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	db, err := Open(config.Database{Path: filepath.Join(blocker, "sub", "tasks.db")})
	require.Error(t, err)
	require.NotNil(t, db, "a handle must be returned so the application can run without persistence")
	defer db.Close()

	// Store calls on the degraded handle fail per request instead of
	// panicking.
	repo := task.NewTaskRepo(db)
	_, err = repo.GetTasksForDate(context.Background(), "2024-03-01")
	assert.Error(t, err)

	_, err = repo.StoreTask(context.Background(), task.Task{Date: "2024-03-01", Title: "Math"})
	assert.Error(t, err)
}
