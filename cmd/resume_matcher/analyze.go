package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/analyzer"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/insights"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description",
	Long:  "Analyze a resume against a job description from a file or URL, producing a match score, skill gap report, and content suggestions.",
	RunE:  runAnalyze,
}

var (
	resumePath string
	jobPath    string
	jobURL     string
	configPath string
	apiKey     string
	threshold  float64
	useBrowser bool
	verbose    bool
	jsonOutput bool
	logJSON    bool
	debugLog   bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&resumePath, "resume", "r", "", "Path to resume file (txt, pdf, docx)")
	analyzeCmd.Flags().StringVarP(&jobPath, "job", "j", "", "Path to job posting text file")
	analyzeCmd.Flags().StringVarP(&jobURL, "job-url", "u", "", "URL to fetch the job posting from")
	analyzeCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVar(&apiKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	analyzeCmd.Flags().Float64Var(&threshold, "threshold", matching.DefaultThreshold, "Similarity threshold for term matching (0.0-1.0)")
	analyzeCmd.Flags().BoolVar(&useBrowser, "use-browser", false, "Render SPA job boards with a headless browser")
	analyzeCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
	analyzeCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the raw analysis JSON to stdout")
	analyzeCmd.Flags().BoolVar(&logJSON, "log-json", false, "Emit logs as JSON instead of console text")
	analyzeCmd.Flags().BoolVar(&debugLog, "debug", false, "Enable debug-level logging")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := mergeConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	log, err := logger.New(logJSON, debugLog || cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	runID := uuid.NewString()
	log = log.With(zap.String("run_id", runID))

	ctx := cmd.Context()

	provider, cleanup, err := buildProvider(cmd, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	resumeDoc := ingestion.FromFile(cfg.Resume)

	var jobDoc types.Document
	if cfg.Job != "" {
		jobDoc = ingestion.FromFile(cfg.Job)
	} else {
		jobDoc, _ = ingestion.FromURL(ctx, cfg.JobURL, ingestion.URLOptions{
			UseBrowser: cfg.UseBrowser,
			Logger:     log,
		})
	}

	a := analyzer.New(provider,
		analyzer.WithThreshold(cfg.Threshold),
		analyzer.WithLogger(log))

	result := a.Analyze(ctx, resumeDoc, jobDoc)

	if cfg.JSONOutput {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintResult(result)
	return nil
}

// mergeConfig loads the optional config file and overlays any flags the user
// set explicitly. Flags win over config values.
func mergeConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{Threshold: matching.DefaultThreshold}

	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		if loaded.Threshold == 0 {
			loaded.Threshold = matching.DefaultThreshold
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("resume") {
		cfg.Resume = resumePath
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = jobPath
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = jobURL
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = apiKey
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Threshold = threshold
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = useBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	if cmd.Flags().Changed("json") {
		cfg.JSONOutput = jsonOutput
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// buildProvider assembles the insight provider chain. With an API key the
// Gemini provider runs first and the local provider covers its failures;
// without one the local provider runs alone.
func buildProvider(cmd *cobra.Command, cfg *config.Config, log *zap.Logger) (insights.Provider, func(), error) {
	local := insights.NewLocal()

	if cfg.APIKey == "" {
		log.Debug("no API key configured, using local analysis only")
		return insights.NewChain(log, local), func() {}, nil
	}

	gemini, err := insights.NewGemini(cmd.Context(), cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	cleanup := func() { _ = gemini.Close() }
	return insights.NewChain(log, gemini, local), cleanup, nil
}
