package database

import (
	"context"
	"testing"
	"time"

	"showcase/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDatabaseConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:            "localhost",
		Port:            5432,
		User:            "postgres",
		Password:        "secret",
		Database:        "showcase",
		MaxConnections:  8,
		MinConnections:  2,
		MaxConnLifetime: 120,
		ConnectTimeout:  3 * time.Second,
	}
}

func TestPoolConfig(t *testing.T) {
	tests := []struct {
		name    string
		purpose Purpose
		appName string
	}{
		{name: "Catalogue reads", purpose: PurposeCatalogue, appName: "showcase-catalogue"},
		{name: "Seeding", purpose: PurposeSeed, appName: "showcase-seed"},
		{name: "Connectivity check", purpose: PurposeCheck, appName: "showcase-check"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc, err := poolConfig(testDatabaseConfig(), tt.purpose)

			require.NoError(t, err)
			assert.Equal(t, tt.appName, pc.ConnConfig.RuntimeParams["application_name"])
			assert.Equal(t, int32(8), pc.MaxConns)
			assert.Equal(t, int32(2), pc.MinConns)
			assert.Equal(t, 2*time.Minute, pc.MaxConnLifetime)
			assert.Equal(t, 3*time.Second, pc.ConnConfig.ConnectTimeout)
			assert.Equal(t, "localhost", pc.ConnConfig.Host)
			assert.Equal(t, "showcase", pc.ConnConfig.Database)
		})
	}
}

func TestPoolConfig_NoConnectTimeout(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.ConnectTimeout = 0

	pc, err := poolConfig(cfg, PurposeCatalogue)

	require.NoError(t, err)
	assert.Zero(t, pc.ConnConfig.ConnectTimeout)
}

func TestNewPool_Unreachable(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = 1
	cfg.MinConnections = 1
	cfg.ConnectTimeout = time.Second

	start := time.Now()
	pool, err := NewPool(context.Background(), cfg, PurposeCheck, zerolog.Nop())

	require.Error(t, err)
	assert.Nil(t, pool)
	assert.Contains(t, err.Error(), "failed to ping database for check")
	assert.Less(t, time.Since(start), 10*time.Second)
}
