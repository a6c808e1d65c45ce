package secrets

import (
	"context"
	"fmt"

	"github.com/hashicorp/vault/api"

	"auditplay/internal/config"
)

// Client wraps HashiCorp Vault API for KV v2 secret lookups
type Client struct {
	client *api.Client
	mount  string
}

// NewClient creates a new Vault client
func NewClient(cfg *config.VaultConfig) (*Client, error) {
	apiConfig := api.DefaultConfig()
	apiConfig.Address = cfg.Address

	client, err := api.NewClient(apiConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}

	client.SetToken(cfg.Token)

	return &Client{
		client: client,
		mount:  cfg.Mount,
	}, nil
}

// Get reads a single field from a KV v2 secret
func (c *Client) Get(ctx context.Context, secretPath, field string) (string, error) {
	secret, err := c.client.KVv2(c.mount).Get(ctx, secretPath)
	if err != nil {
		return "", fmt.Errorf("failed to read secret %s: %w", secretPath, err)
	}

	value, ok := secret.Data[field].(string)
	if !ok {
		return "", fmt.Errorf("secret %s has no string field %q", secretPath, field)
	}

	return value, nil
}

// Put writes fields to a KV v2 secret
func (c *Client) Put(ctx context.Context, secretPath string, data map[string]interface{}) error {
	if _, err := c.client.KVv2(c.mount).Put(ctx, secretPath, data); err != nil {
		return fmt.Errorf("failed to write secret %s: %w", secretPath, err)
	}
	return nil
}

// Resolve overlays Vault-held secrets onto the loaded configuration.
// Missing fields leave the env-provided values untouched.
func Resolve(ctx context.Context, cfg *config.Config) error {
	if !cfg.Vault.Enabled {
		return nil
	}

	client, err := NewClient(&cfg.Vault)
	if err != nil {
		return err
	}

	if password, err := client.Get(ctx, cfg.Vault.SecretPath, "db_password"); err == nil {
		cfg.Database.Password = password
	}
	if secret, err := client.Get(ctx, cfg.Vault.SecretPath, "jwt_secret"); err == nil {
		cfg.JWT.Secret = secret
	}

	if cfg.JWT.Secret == "" {
		return fmt.Errorf("jwt_secret not found in vault or environment")
	}

	return nil
}
