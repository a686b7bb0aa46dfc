package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/types"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a job posting from a file or URL",
	Long:  "Ingest a job posting from either a file or URL, clean the content, and print or save the cleaned text with metadata.",
	RunE:  runIngest,
}

var (
	ingestFile    string
	ingestURL     string
	ingestOut     string
	ingestBrowser bool
	ingestVerbose bool
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestFile, "file", "f", "", "Path to file containing the job posting")
	ingestCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "URL to fetch the job posting from")
	ingestCmd.Flags().StringVarP(&ingestOut, "out", "o", "", "Output directory (prints to stdout when omitted)")
	ingestCmd.Flags().BoolVar(&ingestBrowser, "use-browser", false, "Render SPA job boards with a headless browser")
	ingestCmd.Flags().BoolVarP(&ingestVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestFile == "" && ingestURL == "" {
		return fmt.Errorf("either --file or --url must be provided")
	}
	if ingestFile != "" && ingestURL != "" {
		return fmt.Errorf("--file and --url are mutually exclusive; provide only one")
	}

	log, err := logger.New(false, ingestVerbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	var doc types.Document
	var metadata *ingestion.Metadata

	if ingestFile != "" {
		doc = ingestion.FromFile(ingestFile)
		if !doc.Errored() {
			metadata = ingestion.NewMetadata(doc.Text, "")
		}
	} else {
		doc, metadata = ingestion.FromURL(cmd.Context(), ingestURL, ingestion.URLOptions{
			UseBrowser: ingestBrowser,
			Logger:     log,
		})
	}

	if doc.Errored() {
		return fmt.Errorf("%s", doc.Err)
	}

	if ingestOut == "" {
		fmt.Fprintln(os.Stdout, doc.Text)
		return nil
	}

	if err := writeIngestOutput(ingestOut, doc.Text, metadata); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Successfully ingested job posting\n")
	fmt.Fprintf(os.Stdout, "Cleaned text: %s/job_posting.cleaned.txt\n", ingestOut)
	fmt.Fprintf(os.Stdout, "Metadata: %s/job_posting.meta.json\n", ingestOut)
	log.Debug("ingest complete", zap.Int("chars", len(doc.Text)))

	return nil
}

func writeIngestOutput(outDir string, cleanedText string, metadata *ingestion.Metadata) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	cleanedPath := filepath.Join(outDir, "job_posting.cleaned.txt")
	if err := os.WriteFile(cleanedPath, []byte(cleanedText), 0644); err != nil {
		return fmt.Errorf("failed to write cleaned text file: %w", err)
	}

	metaJSON, err := metadata.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	metaPath := filepath.Join(outDir, "job_posting.meta.json")
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}

	return nil
}
