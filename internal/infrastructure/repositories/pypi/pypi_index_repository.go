package pypi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://pypi.org/pypi"
	clientTimeout  = 15 * time.Second
)

// Runs of ".", "-" and "_" collapse to a single "-" (PEP 503).
var nameSeparators = regexp.MustCompile(`[-_.]+`)

// IndexRepository resolves latest package versions from the PyPI JSON API.
type IndexRepository struct {
	client *http.Client
}

// NewIndexRepository creates a new PyPI-backed index repository.
func NewIndexRepository() *IndexRepository {
	return &IndexRepository{
		client: &http.Client{Timeout: clientTimeout},
	}
}

// Name returns the index identifier.
func (it *IndexRepository) Name() string {
	return "pypi"
}

// LatestVersion fetches the latest published version of a package from the
// project JSON endpoint under indexURL, falling back to the public PyPI
// endpoint when indexURL is empty. Names are normalized before the request,
// so any spelling of the same package hits the same endpoint.
func (it *IndexRepository) LatestVersion(ctx context.Context, indexURL, pkg string) (string, error) {
	base := strings.TrimRight(indexURL, "/")
	if base == "" {
		base = defaultBaseURL
	}
	url := fmt.Sprintf("%s/%s/json", base, NormalizeName(pkg))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := it.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s from PyPI: %w", pkg, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, pkg)
	}

	var payload struct {
		Info struct {
			Version string `json:"version"`
		} `json:"info"`
	}
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return "", fmt.Errorf("failed to parse PyPI response for %s: %w", pkg, decodeErr)
	}
	if payload.Info.Version == "" {
		return "", fmt.Errorf("no version in PyPI response for %s", pkg)
	}

	return payload.Info.Version, nil
}

// NormalizeName applies PEP 503 normalization: lowercase, with runs of
// dots, dashes and underscores collapsed to a single dash.
func NormalizeName(name string) string {
	return nameSeparators.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
