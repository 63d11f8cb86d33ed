package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rpupo63/emp-classrooms-backend/config"
	"github.com/rpupo63/emp-classrooms-backend/errs"
	"github.com/rs/zerolog/log"
)

const (
	DefaultDonorsChooseBaseURL = "https://api.donorschoose.org"
	// DefaultDonorsChooseAPIKey is the public sample key from the DonorsChoose docs
	DefaultDonorsChooseAPIKey = "DONORSCHOOSE"

	donorsChooseFeedPath = "/common/json_feed.html"
)

// ExternalFeed is an upstream response relayed verbatim
type ExternalFeed struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

type DonorsChooseClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewDonorsChooseClient(baseURL, apiKey string, httpClient *http.Client) *DonorsChooseClient {
	if baseURL == "" {
		baseURL = DefaultDonorsChooseBaseURL
	}
	if apiKey == "" {
		apiKey = DefaultDonorsChooseAPIKey
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &DonorsChooseClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// NewDonorsChooseClientFromConfig reads DONORSCHOOSE_BASE_URL and DONORSCHOOSE_API_KEY
func NewDonorsChooseClientFromConfig(cfg map[string]string) *DonorsChooseClient {
	return NewDonorsChooseClient(
		config.GetString(cfg, config.KeyDonorsChooseBaseURL, DefaultDonorsChooseBaseURL),
		config.GetString(cfg, config.KeyDonorsChooseAPIKey, DefaultDonorsChooseAPIKey),
		nil,
	)
}

// feedRequest builds the json_feed GET request from an explicit parameter map
func (c *DonorsChooseClient) feedRequest(ctx context.Context, searchQuery string) (*http.Request, error) {
	params := url.Values{}
	params.Set("keywords", searchQuery)
	params.Set("APIKey", c.apiKey)

	endpoint := c.baseURL + donorsChooseFeedPath + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create DonorsChoose request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// FetchProjects runs a keyword search against the DonorsChoose JSON feed and
// returns the response untouched. Non-2xx statuses are returned, not treated as errors.
func (c *DonorsChooseClient) FetchProjects(ctx context.Context, searchQuery string) (*ExternalFeed, error) {
	req, err := c.feedRequest(ctx, searchQuery)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewServiceUnreachableError("donorschoose", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewServiceUnreachableError("donorschoose", fmt.Errorf("reading response: %w", err))
	}

	log.Debug().
		Str("keywords", searchQuery).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("Fetched DonorsChoose feed")

	return &ExternalFeed{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
