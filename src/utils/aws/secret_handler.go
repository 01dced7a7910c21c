package aws_handler

import (
	"fmt"
	"strings"

	"crm/src/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/aws/aws-sdk-go/service/secretsmanager/secretsmanageriface"
)

// SecretGetter is the subset of Secrets Manager the CRM needs.
type SecretGetter interface {
	GetSecretValue(secretID string) (string, error)
}

type SecretManager struct {
	svc secretsmanageriface.SecretsManagerAPI
}

func NewSecretManager(svc secretsmanageriface.SecretsManagerAPI) *SecretManager {
	return &SecretManager{svc: svc}
}

func (s *SecretManager) GetSecretValue(secretID string) (string, error) {
	input := &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	}

	result, err := s.svc.GetSecretValue(input)
	if err != nil {
		return "", err
	}
	if result.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value", secretID)
	}
	return *result.SecretString, nil
}

// ResolvePostgresURL fills the PostgreSQL connection string from Secrets
// Manager when it is not already configured and a secret id is given.
// It reports whether the secret was used.
func ResolvePostgresURL(cfg *config.Config, getter SecretGetter) (bool, error) {
	secretID := cfg.Secrets.AWS.PostgresURLSecretID
	if cfg.Databases.SQL.PostgresURL != "" || secretID == "" {
		return false, nil
	}

	value, err := getter.GetSecretValue(secretID)
	if err != nil {
		return false, fmt.Errorf("failed to read secret %s: %w", secretID, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return false, fmt.Errorf("secret %s is empty", secretID)
	}
	cfg.Databases.SQL.PostgresURL = value
	return true, nil
}
