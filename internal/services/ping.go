package services

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"time"
)

// searchEnginePings maps engine names to their sitemap ping endpoints.
var searchEnginePings = map[string]string{
	"google": "https://www.google.com/ping?sitemap=",
	"bing":   "https://www.bing.com/ping?sitemap=",
	"yandex": "https://webmaster.yandex.com/ping?sitemap=",
}

var pingClient = &http.Client{Timeout: 10 * time.Second}

// PingSearchEngines notifies each search engine that the sitemap changed and
// reports per-engine success. Ping failures are logged but never fail the
// publishing run.
func PingSearchEngines(ctx context.Context, sitemapURL string) map[string]bool {
	results := make(map[string]bool, len(searchEnginePings))

	for engine, pingURL := range searchEnginePings {
		fullURL := pingURL + url.QueryEscape(sitemapURL)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			log.Printf("Error building ping request for %s: %v", engine, err)
			results[engine] = false
			continue
		}
		req.Header.Set("User-Agent", "ShoeSwiper-SitemapBot/1.0")

		resp, err := pingClient.Do(req)
		if err != nil {
			log.Printf("Error pinging %s: %v", engine, err)
			results[engine] = false
			continue
		}
		resp.Body.Close()

		results[engine] = resp.StatusCode == http.StatusOK
		log.Printf("Pinged %s: status %d", engine, resp.StatusCode)
	}

	return results
}
