package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/modern-world/internal/config"
)

func TestNew(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		name    string
		cfg     config.Config
		want    any
		wantErr bool
	}{
		{"file", config.Config{StorageBackend: config.BackendFile, SaveDir: t.TempDir()}, &FileStorage{}, false},
		{"sqlite", config.Config{StorageBackend: config.BackendSQLite, SQLitePath: filepath.Join(t.TempDir(), "mw.db")}, &SQLiteStorage{}, false},
		{"redis", config.Config{StorageBackend: config.BackendRedis, RedisURL: mr.Addr()}, &RedisStorage{}, false},
		{"unknown", config.Config{StorageBackend: "etcd"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := New(context.Background(), &tt.cfg, discardLogger())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			t.Cleanup(func() { _ = store.Close() })
			assert.IsType(t, tt.want, store)
		})
	}
}
