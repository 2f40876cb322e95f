package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	TestDBName    = "pixvault_test"
	mongoUser     = "root"
	mongoPassword = "example"
)

// setupMongo starts a disposable mongo container and returns its URI.
func setupMongo(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		Env: map[string]string{
			"MONGO_INITDB_ROOT_USERNAME": mongoUser,
			"MONGO_INITDB_ROOT_PASSWORD": mongoPassword,
		},
		WaitingFor: wait.ForListeningPort("27017/tcp"),
	}

	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mongoC.Terminate(context.Background()))
	})

	endpoint, err := mongoC.Endpoint(ctx, "")
	require.NoError(t, err)

	return fmt.Sprintf("mongodb://%s:%s@%s", mongoUser, mongoPassword, endpoint)
}
