package sentiment

import (
	"fmt"
	"time"

	httpclient "github.com/Lokeshwar-goud/Psyvana/pkg/http-client"
)

const DEFAULT_API_ROOT = "https://language.googleapis.com/v1"

type Config struct {
	APIKey  string        `json:"api_key" yaml:"api_key"`
	RootURL string        `json:"root_url" yaml:"root_url"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// Client calls the Google Natural Language API to analyze the sentiment
// of journal text.
type Client struct {
	httpClient httpclient.ClientConfig
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("natural language API key is required")
	}

	rootURL := cfg.RootURL
	if rootURL == "" {
		rootURL = DEFAULT_API_ROOT
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: httpclient.ClientConfig{
			RootURL:            rootURL,
			APIKey:             cfg.APIKey,
			APIKeyAsQueryParam: true,
			Timeout:            timeout,
		},
	}, nil
}

// AnalyzeSentiment returns the polarity score in [-1, 1] and the
// non-negative magnitude of the given text.
func (c *Client) AnalyzeSentiment(text string) (score float64, magnitude float64, err error) {
	payload := map[string]interface{}{
		"document": map[string]interface{}{
			"content": text,
			"type":    "PLAIN_TEXT",
		},
	}

	res, err := c.httpClient.RunHTTPcall("/documents:analyzeSentiment", payload)
	if err != nil {
		return 0, 0, err
	}
	return parseSentiment(res)
}

// parseSentiment pulls documentSentiment out of the loosely typed API
// response, defaulting missing fields to zero and clamping to the
// documented ranges.
func parseSentiment(res map[string]interface{}) (score float64, magnitude float64, err error) {
	documentSentiment, ok := res["documentSentiment"].(map[string]interface{})
	if !ok {
		return 0, 0, fmt.Errorf("response contains no documentSentiment")
	}

	if v, ok := documentSentiment["score"].(float64); ok {
		score = v
	}
	if v, ok := documentSentiment["magnitude"].(float64); ok {
		magnitude = v
	}

	if score > 1 {
		score = 1
	}
	if score < -1 {
		score = -1
	}
	if magnitude < 0 {
		magnitude = 0
	}
	return score, magnitude, nil
}
