package ingestion

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/types"
)

const errFetch = "Error: Could not fetch the job posting from the provided URL."

// URLOptions configures job posting retrieval.
type URLOptions struct {
	// UseBrowser enables a headless browser fallback when plain HTTP
	// fetching yields too little content, as on JS-rendered job boards.
	UseBrowser bool
	Logger     *zap.Logger
}

// FromURL fetches a job posting, extracts the main text using platform
// specific selectors, and cleans it. Failures surface in-band on the
// returned Document so callers treat them like file extraction failures.
func FromURL(ctx context.Context, urlStr string, opts URLOptions) (types.Document, *Metadata) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	platform := fetch.DetectPlatform(urlStr)
	log.Debug("fetching job posting",
		zap.String("url", urlStr),
		zap.String("platform", string(platform)))

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		log.Warn("fetch failed", zap.String("url", urlStr), zap.Error(err))
		return types.ErrorDocument(errFetch), nil
	}

	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	textContent, err := fetch.ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		log.Warn("content extraction failed", zap.String("url", urlStr), zap.Error(err))
		return types.ErrorDocument(errFetch), nil
	}

	// JS-heavy boards return a near-empty shell over plain HTTP.
	if opts.UseBrowser && fetch.ShouldUseBrowser(textContent) {
		log.Debug("content too short, rendering with headless browser",
			zap.Int("chars", len(textContent)))

		browserHTML, browserErr := fetch.BrowserSimple(ctx, urlStr, log)
		if browserErr != nil {
			log.Warn("browser rendering failed, keeping HTTP content", zap.Error(browserErr))
		} else if rendered, extractErr := fetch.ExtractMainText(browserHTML, contentSelectors, noiseSelectors...); extractErr == nil {
			textContent = rendered
		}
	}

	cleaned := CleanText(textContent)
	log.Debug("job posting ingested", zap.Int("chars", len(cleaned)))

	metadata := NewMetadata(cleaned, urlStr)
	metadata.Platform = string(platform)

	return types.NewDocument(cleaned), metadata
}
