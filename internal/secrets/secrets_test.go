package secrets_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auditplay/internal/config"
	"auditplay/internal/secrets"
	"auditplay/internal/testutil"
)

func vaultConfig(tc *testutil.TestContainers) config.VaultConfig {
	return config.VaultConfig{
		Enabled:    true,
		Address:    tc.VaultAddr,
		Token:      tc.VaultToken,
		Mount:      "secret",
		SecretPath: "auditplay/api",
	}
}

func TestVaultSecrets(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	containers := &testutil.TestContainers{}
	containers.SetupVault(t)
	defer containers.Cleanup(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	vaultCfg := vaultConfig(containers)
	client, err := secrets.NewClient(&vaultCfg)
	require.NoError(t, err)

	t.Run("put and get round trip", func(t *testing.T) {
		err := client.Put(ctx, "auditplay/api", map[string]interface{}{
			"db_password": "vault-db-pw",
			"jwt_secret":  "vault-jwt-secret",
		})
		require.NoError(t, err)

		value, err := client.Get(ctx, "auditplay/api", "jwt_secret")
		require.NoError(t, err)
		assert.Equal(t, "vault-jwt-secret", value)

		_, err = client.Get(ctx, "auditplay/api", "missing_field")
		assert.Error(t, err)
	})

	t.Run("resolve overlays config", func(t *testing.T) {
		cfg := &config.Config{Vault: vaultConfig(containers)}
		cfg.Database.Password = "env-pw"

		require.NoError(t, secrets.Resolve(ctx, cfg))

		assert.Equal(t, "vault-db-pw", cfg.Database.Password)
		assert.Equal(t, "vault-jwt-secret", cfg.JWT.Secret)
	})

	t.Run("resolve is a no-op when disabled", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.JWT.Secret = "env-secret"

		require.NoError(t, secrets.Resolve(ctx, cfg))
		assert.Equal(t, "env-secret", cfg.JWT.Secret)
	})

	t.Run("resolve fails without a jwt secret anywhere", func(t *testing.T) {
		require.NoError(t, client.Put(ctx, "auditplay/empty", map[string]interface{}{
			"unrelated": "x",
		}))

		cfg := &config.Config{Vault: vaultConfig(containers)}
		cfg.Vault.SecretPath = "auditplay/empty"

		assert.Error(t, secrets.Resolve(ctx, cfg))
	})
}
