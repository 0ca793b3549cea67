package config

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestEnvKeyFor(t *testing.T) {
	assert.Equal(t, "SOLANA_ENDPOINT", envKeyFor("solana-endpoint"))
	assert.Equal(t, "DRAGON_MOUTH_X_TOKEN", envKeyFor("dragon-mouth-x-token"))
	assert.Equal(t, "PORT", envKeyFor("port"))
}

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	cmd := &cobra.Command{Use: "test"}
	RegisterFlags(cmd, v)

	cfg := Load(v)
	assert.Equal(t, "https://api.mainnet-beta.solana.com", cfg.SolanaEndpoint)
	assert.Equal(t, 8, cfg.Parallelism)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
}

func TestLoadOverrideFromFlag(t *testing.T) {
	v := viper.New()
	cmd := &cobra.Command{Use: "test"}
	RegisterFlags(cmd, v)

	err := cmd.PersistentFlags().Set("parallelism", "16")
	assert.NoError(t, err)

	cfg := Load(v)
	assert.Equal(t, 16, cfg.Parallelism)
}
