package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/iwvelando/vendor-insights/internal/config"
	"github.com/iwvelando/vendor-insights/internal/content"
	"github.com/iwvelando/vendor-insights/internal/insights"
	"github.com/iwvelando/vendor-insights/pkg/constants"
	"github.com/iwvelando/vendor-insights/pkg/datetime"
	"github.com/iwvelando/vendor-insights/pkg/output"
	"github.com/iwvelando/vendor-insights/pkg/validation"
	"go.uber.org/zap"
)

// loadConfiguration reads the config file, falling back to defaults when the
// default file is absent.
func loadConfiguration(path string, explicit bool) (*config.Configuration, error) {
	conf, err := config.LoadConfiguration(path)
	if err == nil {
		return conf, nil
	}
	if !explicit {
		if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
			return config.DefaultConfiguration(), nil
		}
	}
	return nil, err
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	vendorID := flag.String("vendor", "", "vendor identifier (required)")
	dateFlag := flag.String("date", "", "simulated day as YYYY-MM-DD (default: today)")
	daysFlag := flag.Int("days", 0, "number of recent quotes to show (default from config)")
	metricsFile := flag.String("metrics", "", "YAML or JSON file with vendor metrics for recommendations")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	explicitConfig := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicitConfig = true
		}
	})

	conf, err := loadConfiguration(*configLocation, explicitConfig)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := config.BuildLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	if *vendorID == "" {
		logger.Fatal("a vendor identifier is required",
			zap.String("op", "main"),
		)
	}

	location := conf.Location()
	service, err := insights.NewService(logger, insights.WithLocation(location))
	if err != nil {
		logger.Fatal("content pools are misconfigured",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	day := service.Now()
	if *dateFlag != "" {
		day, err = datetime.ParseDay(*dateFlag, location)
		if err != nil {
			logger.Fatal("failed to parse date",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	quote, err := service.DailyQuoteAt(*vendorID, day)
	if err != nil {
		logger.Fatal("failed to select daily quote",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	days := *daysFlag
	if days == 0 {
		days = conf.Rotation.RecentDays
	}
	recent, err := service.RecentQuotesAt(*vendorID, days, day)
	if err != nil {
		logger.Fatal("failed to select recent quotes",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	report := output.Report{
		VendorID:     *vendorID,
		Day:          service.DayKey(day),
		Quote:        quote,
		RecentQuotes: recent,
	}

	if *metricsFile != "" {
		var metrics content.VendorMetrics
		metrics, err = config.LoadMetrics(*metricsFile)
		if err != nil {
			logger.Fatal("failed to load metrics",
				zap.String("op", "main"),
				zap.String("path", *metricsFile),
				zap.Error(err),
			)
		}

		set, err := service.DailyRecommendationsAt(*vendorID, metrics, day)
		if err != nil {
			logger.Fatal("failed to select recommendations",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		report.Metrics = &metrics
		report.Recommendations = &set
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		err = output.PrettyFormat(os.Stdout, report)
	case constants.OutputFormatJSON:
		err = output.JSONFormat(os.Stdout, report)
	}
	if err != nil {
		logger.Fatal("failed to write output",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
