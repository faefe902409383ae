package document

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/PuerkitoBio/goquery"
)

// jobDescriptionSelector targets LinkedIn job postings; anything else
// falls back to the page body.
const jobDescriptionSelector = ".show-more-less-html__markup"

// Job pages refuse obvious bots, so the scraper presents a browser UA.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// ScrapeJobDescription fetches a job posting URL and extracts its
// description text.
func ScrapeJobDescription(ctx context.Context, client *http.Client, url string) (string, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("document: build job request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("document: fetch job page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("document: fetch job page: %s returned %s", url, resp.Status)
	}
	return ExtractJobText(resp.Body)
}

// ExtractJobText parses job-page HTML and returns the normalized
// description text.
func ExtractJobText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("document: parse job page: %w", err)
	}

	text := doc.Find(jobDescriptionSelector).Text()
	if text == "" {
		text = doc.Find("body").Text()
	}
	return NormalizeText(text), nil
}
