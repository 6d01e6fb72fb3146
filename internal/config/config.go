package config

import (
	"time"

	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// GoogleBooksAPIKey is the optional API key for Google Books (raises quota)
	GoogleBooksAPIKey string
	// HardcoverAPIKey is the required API key for the Hardcover GraphQL API
	HardcoverAPIKey string
	// FuzzyLengthRatio is the containment length-ratio threshold for fuzzy title matching
	FuzzyLengthRatio float64
	// EnrichLimit caps how many top-ranked results get a Hardcover detail fetch
	EnrichLimit int
	// MaxResults bounds per-provider search result counts
	MaxResults int
	// ProviderTimeout bounds each provider call so one slow API cannot stall a query
	ProviderTimeout time.Duration
)

// InitConfig initializes the global configuration from viper.
func InitConfig() {
	viper.SetDefault("search.fuzzyratio", 0.7)
	viper.SetDefault("search.enrichlimit", 8)
	viper.SetDefault("search.maxresults", 20)
	viper.SetDefault("search.providertimeout", "10s")

	GoogleBooksAPIKey = viper.GetString("googlebooks.apikey")
	HardcoverAPIKey = viper.GetString("hardcover.apikey")
	FuzzyLengthRatio = viper.GetFloat64("search.fuzzyratio")
	EnrichLimit = viper.GetInt("search.enrichlimit")
	MaxResults = viper.GetInt("search.maxresults")
	ProviderTimeout = viper.GetDuration("search.providertimeout")
}
