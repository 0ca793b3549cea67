// Package config binds the worker's environment variables through
// viper, registered as pflag flags on each cobra command the same way
// the CLI commands this module was adapted from registered theirs.
package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds every option the worker's binaries accept, shared by
// cmd/consumer and cmd/indexer — each binary only reads the subset it
// needs.
type Config struct {
	SolanaEndpoint             string
	SolanaTreasuryWalletAddress string
	DigitalAssetAPIEndpoint    string
	TreeAuthority              string
	MerkleTree                 string
	DragonMouthEndpoint        string
	DragonMouthXToken          string
	DatabaseURL                string
	KafkaBrokers               []string
	Parallelism                int
	Port                       string
}

// RegisterFlags adds every config flag to cmd's flag set and binds it
// into v, so environment variables and flags both populate the same
// viper instance before Load reads it back out.
func RegisterFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.PersistentFlags()

	flags.String("solana-endpoint", "https://api.mainnet-beta.solana.com", "Solana JSON-RPC endpoint")
	flags.String("solana-treasury-wallet-address", "", "Treasury wallet public key, the default fee payer")
	flags.String("digital-asset-api-endpoint", "", "Digital Asset API (DAS) endpoint")
	flags.String("tree-authority", "", "Bubblegum tree authority (loaded into Config; not read by either command)")
	flags.String("merkle-tree", "", "Bubblegum merkle tree (loaded into Config; not read by either command)")
	flags.String("dragon-mouth-endpoint", "", "Yellowstone gRPC (Dragon's Mouth) geyser endpoint")
	flags.String("dragon-mouth-x-token", "", "Yellowstone gRPC x-token")
	flags.String("database-url", "", "Postgres connection string")
	flags.StringSlice("kafka-brokers", []string{"localhost:9092"}, "Kafka bootstrap brokers")
	flags.Int("parallelism", 8, "Bounded worker pool size")
	flags.String("port", "8080", "Health/metrics HTTP port")

	bindFlags(v, flags)
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	v.SetEnvPrefix("")
	v.AutomaticEnv()
	flags.VisitAll(func(f *pflag.Flag) {
		envKey := envKeyFor(f.Name)
		_ = v.BindEnv(f.Name, envKey)
		_ = v.BindPFlag(f.Name, f)
	})
}

func envKeyFor(flagName string) string {
	out := make([]byte, 0, len(flagName))
	for _, c := range flagName {
		if c == '-' {
			out = append(out, '_')
			continue
		}
		out = append(out, byte(c))
	}
	return fmt.Sprintf("%s", upper(string(out)))
}

func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

// Load reads the bound viper values into a Config.
func Load(v *viper.Viper) Config {
	return Config{
		SolanaEndpoint:              v.GetString("solana-endpoint"),
		SolanaTreasuryWalletAddress: v.GetString("solana-treasury-wallet-address"),
		DigitalAssetAPIEndpoint:     v.GetString("digital-asset-api-endpoint"),
		TreeAuthority:               v.GetString("tree-authority"),
		MerkleTree:                  v.GetString("merkle-tree"),
		DragonMouthEndpoint:         v.GetString("dragon-mouth-endpoint"),
		DragonMouthXToken:           v.GetString("dragon-mouth-x-token"),
		DatabaseURL:                 v.GetString("database-url"),
		KafkaBrokers:                v.GetStringSlice("kafka-brokers"),
		Parallelism:                 v.GetInt("parallelism"),
		Port:                        v.GetString("port"),
	}
}
