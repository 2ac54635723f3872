//go:build integration

package repository_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/KKK-90/POSTRKR-App/config"
	"github.com/KKK-90/POSTRKR-App/internal/model"
	"github.com/KKK-90/POSTRKR-App/internal/repository"
	"github.com/KKK-90/POSTRKR-App/pkg/database"
)

// setupPostgres starts a throwaway postgres and returns a migrated repository.
func setupPostgres(t *testing.T) repository.LocationRepository {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "postrkr_test",
			"POSTGRES_USER":     "postrkr",
			"POSTGRES_PASSWORD": "postrkr",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		pg.Terminate(ctx)
	})

	host, err := pg.Host(ctx)
	require.NoError(t, err)
	port, err := pg.MappedPort(ctx, "5432")
	require.NoError(t, err)
	portNum, err := strconv.Atoi(port.Port())
	require.NoError(t, err)

	cfg := &config.DatabaseConfig{
		Driver:   config.DriverPostgres,
		Host:     host,
		Port:     portNum,
		Name:     "postrkr_test",
		User:     "postrkr",
		Password: "postrkr",
		SSLMode:  "disable",
		Timezone: "UTC",
	}
	db, err := database.NewDB(cfg, "error", zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db, zap.NewNop()))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return repository.NewLocationRepo(db)
}

func TestPostgres_DeleteAndRenumber(t *testing.T) {
	repo := setupPostgres(t)
	ctx := context.Background()

	var ids []int64
	for i := 1; i <= 3; i++ {
		loc := &model.Location{SlNo: i, IssuesIfAny: model.StrPtr("None")}
		require.NoError(t, repo.Create(ctx, loc))
		ids = append(ids, loc.ID)
	}

	require.NoError(t, repo.DeleteAndRenumber(ctx, ids[1]))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, ids[0], list[0].ID)
	assert.Equal(t, 1, list[0].SlNo)
	assert.Equal(t, ids[2], list[1].ID)
	assert.Equal(t, 2, list[1].SlNo)
}

func TestPostgres_ReplaceAllKeepsSequence(t *testing.T) {
	repo := setupPostgres(t)
	ctx := context.Background()

	first := &model.Location{SlNo: 1}
	require.NoError(t, repo.Create(ctx, first))

	require.NoError(t, repo.ReplaceAll(ctx, []model.Location{{SlNo: 1}, {SlNo: 2}}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, l := range list {
		assert.Greater(t, l.ID, first.ID)
	}

	max, err := repo.MaxSlNo(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, max)
}
