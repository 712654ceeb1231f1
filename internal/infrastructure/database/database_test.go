package database

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"budget_service/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/require"
)

func TestConnectDynamoDB(t *testing.T) {
	client, err := ConnectDynamoDB(context.Background(), config.AWS{
		Region:           "sa-east-1",
		AccessKeyID:      "local",
		SecretAccessKey:  "local",
		DynamoDBEndpoint: "http://localhost:8000",
	})
	require.NoError(t, err)

	opts := client.Options()
	require.Equal(t, "sa-east-1", opts.Region)
	require.Equal(t, "http://localhost:8000", aws.ToString(opts.BaseEndpoint))

	creds, err := opts.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	require.Equal(t, "local", creds.AccessKeyID)
}

func TestConnectPostgres_EmptyDSN(t *testing.T) {
	_, err := ConnectPostgres(context.Background(), "")
	require.EqualError(t, err, "postgres connection string is empty")
}

func TestMigrationsEmbedded(t *testing.T) {
	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)
	require.Equal(t, []string{
		"migrations/00001_create_registries.sql",
		"migrations/00002_seed_roles.sql",
	}, files)

	for _, name := range files {
		raw, err := migrationsFS.ReadFile(name)
		require.NoError(t, err)
		body := string(raw)
		require.True(t, strings.Contains(body, "-- +goose Up"), name)
		require.True(t, strings.Contains(body, "-- +goose Down"), name)
	}
}
