package cmd

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/bookhunt/cmd/doctor"
	"github.com/lepinkainen/bookhunt/cmd/search"
	"github.com/lepinkainen/bookhunt/internal/config"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"
)

var (
	runSearch = search.Run
	runDoctor = doctor.Run
)

// CLI represents the complete command structure for the bookhunt application
type CLI struct {
	// Global flags
	Verbose bool `help:"Enable debug logging"`

	Search SearchCmd `cmd:"" help:"Search for books across Google Books, Open Library and Hardcover"`
	Doctor DoctorCmd `cmd:"" help:"Check provider connectivity and configuration"`
}

// SearchCmd represents the search command
type SearchCmd struct {
	Query          string `arg:"" help:"Free-text search query"`
	JSON           bool   `help:"Print results as JSON"`
	YAML           bool   `help:"Print results as YAML"`
	Lang           string `help:"Restrict Google Books results to a two-letter language code"`
	DownloadCovers bool   `help:"Download cover images for the results"`
	CoverDir       string `help:"Directory for downloaded covers" default:"./covers"`
}

// Run executes the search command.
func (s *SearchCmd) Run() error {
	format := search.FormatText
	switch {
	case s.JSON:
		format = search.FormatJSON
	case s.YAML:
		format = search.FormatYAML
	}

	return runSearch(search.Options{
		Query:          s.Query,
		Format:         format,
		LangRestrict:   s.Lang,
		DownloadCovers: s.DownloadCovers,
		CoverDir:       s.CoverDir,
	})
}

// DoctorCmd represents the doctor command
type DoctorCmd struct{}

// Run executes the doctor command.
func (d *DoctorCmd) Run() error {
	return runDoctor()
}

// Execute runs the Kong-based CLI
func Execute() {
	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("bookhunt"),
		kong.Description("Search and merge book metadata from multiple sources."),
		kong.UsageOnError(),
	)

	initLogging(cli.Verbose)
	initConfig()

	if err := ctx.Run(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetDefault("search.fuzzyratio", 0.7)
	viper.SetDefault("search.enrichlimit", 8)
	viper.SetDefault("search.maxresults", 20)
	viper.SetDefault("search.providertimeout", "10s")

	// Enable environment variable support
	viper.AutomaticEnv()
	if err := viper.BindEnv("hardcover.apikey", "HARDCOVER_API_KEY"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}
	if err := viper.BindEnv("googlebooks.apikey", "GOOGLE_BOOKS_API_KEY"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/bookhunt")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Debug("No config file found, using defaults and environment")
		} else {
			slog.Error("Fatal error reading config file", "error", err)
			os.Exit(1)
		}
	}

	config.InitConfig()
}

func initLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
