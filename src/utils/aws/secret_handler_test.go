package aws_handler_test

import (
	"errors"
	"testing"

	"crm/src/config"
	aws_handler "crm/src/utils/aws"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/aws/aws-sdk-go/service/secretsmanager/secretsmanageriface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGetter struct {
	value string
	err   error
	calls int
}

func (f *fakeGetter) GetSecretValue(string) (string, error) {
	f.calls++
	return f.value, f.err
}

type fakeSecretsManager struct {
	secretsmanageriface.SecretsManagerAPI
	value *string
}

func (f *fakeSecretsManager) GetSecretValue(in *secretsmanager.GetSecretValueInput) (*secretsmanager.GetSecretValueOutput, error) {
	return &secretsmanager.GetSecretValueOutput{Name: in.SecretId, SecretString: f.value}, nil
}

func TestResolvePostgresURL(t *testing.T) {
	t.Run("uses secret when url is missing", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Secrets.AWS.PostgresURLSecretID = "crm/postgres"
		getter := &fakeGetter{value: " postgres://u:p@h:5432/crm \n"}

		used, err := aws_handler.ResolvePostgresURL(cfg, getter)
		require.NoError(t, err)
		assert.True(t, used)
		assert.Equal(t, "postgres://u:p@h:5432/crm", cfg.Databases.SQL.PostgresURL)
	})

	t.Run("environment url wins", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Databases.SQL.PostgresURL = "postgres://env"
		cfg.Secrets.AWS.PostgresURLSecretID = "crm/postgres"
		getter := &fakeGetter{value: "postgres://secret"}

		used, err := aws_handler.ResolvePostgresURL(cfg, getter)
		require.NoError(t, err)
		assert.False(t, used)
		assert.Zero(t, getter.calls)
		assert.Equal(t, "postgres://env", cfg.Databases.SQL.PostgresURL)
	})

	t.Run("no secret configured", func(t *testing.T) {
		cfg := &config.Config{}
		used, err := aws_handler.ResolvePostgresURL(cfg, &fakeGetter{})
		require.NoError(t, err)
		assert.False(t, used)
	})

	t.Run("lookup failure is an error", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Secrets.AWS.PostgresURLSecretID = "crm/postgres"
		_, err := aws_handler.ResolvePostgresURL(cfg, &fakeGetter{err: errors.New("denied")})
		assert.ErrorContains(t, err, "denied")
	})

	t.Run("empty secret is an error", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Secrets.AWS.PostgresURLSecretID = "crm/postgres"
		_, err := aws_handler.ResolvePostgresURL(cfg, &fakeGetter{value: "  "})
		assert.Error(t, err)
	})
}

func TestSecretManagerGetSecretValue(t *testing.T) {
	sm := aws_handler.NewSecretManager(&fakeSecretsManager{value: aws.String("postgres://x")})
	value, err := sm.GetSecretValue("crm/postgres")
	require.NoError(t, err)
	assert.Equal(t, "postgres://x", value)

	sm = aws_handler.NewSecretManager(&fakeSecretsManager{})
	_, err = sm.GetSecretValue("crm/postgres")
	assert.Error(t, err)
}
