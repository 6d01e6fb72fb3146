package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestInitConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	InitConfig()

	require.Equal(t, 0.7, FuzzyLengthRatio)
	require.Equal(t, 8, EnrichLimit)
	require.Equal(t, 20, MaxResults)
	require.Equal(t, 10*time.Second, ProviderTimeout)
	require.Empty(t, HardcoverAPIKey)
}

func TestInitConfigOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("hardcover.apikey", "hc-token")
	viper.Set("googlebooks.apikey", "gb-key")
	viper.Set("search.fuzzyratio", 0.8)
	viper.Set("search.enrichlimit", 4)
	viper.Set("search.providertimeout", "5s")

	InitConfig()

	require.Equal(t, "hc-token", HardcoverAPIKey)
	require.Equal(t, "gb-key", GoogleBooksAPIKey)
	require.Equal(t, 0.8, FuzzyLengthRatio)
	require.Equal(t, 4, EnrichLimit)
	require.Equal(t, 5*time.Second, ProviderTimeout)
}
