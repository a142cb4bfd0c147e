// Package extract turns natural-language network descriptions into structured
// synthesis parameters using an OpenAI-style chat-completions API.
//
// The flow is: send the description with a fixed system prompt, parse the
// model's JSON reply (stripping markdown fences when present), clean the raw
// parameter map, and normalize it into [topology.Params]. DeepSeek and OpenAI
// endpoints are both supported since they share the wire format.
package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/jkreuzer/roadforge/pkg/errors"
	"github.com/jkreuzer/roadforge/pkg/httputil"
)

const (
	requestTimeout = 30 * time.Second

	// Low temperature keeps the extraction deterministic enough to cache.
	temperature = 0.01
	maxTokens   = 1000
)

// Options configures the extraction client.
type Options struct {
	APIURL string
	APIKey string
	Model  string
}

// Result is one extraction outcome: the network kind plus the cleaned raw
// parameter map in collaborator key format.
type Result struct {
	Kind string         `json:"network_type"`
	Raw  map[string]any `json:"parameters"`
}

// Client talks to a chat-completions endpoint.
type Client struct {
	http   *http.Client
	apiURL string
	apiKey string
	model  string
}

// NewClient creates an extraction client. The API key is required.
func NewClient(opts Options) (*Client, error) {
	if opts.APIKey == "" {
		return nil, errors.New(errors.ErrCodeNoAPIKey, "no API key configured; set llm.api_key or the provider's environment variable")
	}
	if opts.APIURL == "" {
		return nil, errors.New(errors.ErrCodeInvalidParams, "llm api_url cannot be empty")
	}
	if opts.Model == "" {
		return nil, errors.New(errors.ErrCodeInvalidParams, "llm model cannot be empty")
	}
	return &Client{
		http:   &http.Client{Timeout: requestTimeout},
		apiURL: opts.APIURL,
		apiKey: opts.APIKey,
		model:  opts.Model,
	}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }

// chat-completions wire types.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Extract sends the description to the model and returns the cleaned result.
// Transient HTTP failures are retried with backoff.
func (c *Client) Extract(ctx context.Context, description string) (*Result, error) {
	if err := errors.ValidateDescription(description); err != nil {
		return nil, err
	}

	var reply string
	err := httputil.RetryWithBackoff(ctx, func() error {
		var err error
		reply, err = c.complete(ctx, description)
		return err
	})
	if err != nil {
		if httputil.IsRetryable(err) || errors.GetCode(err) == "" {
			return nil, errors.Wrap(errors.ErrCodeExtractFailed, err, "extraction request failed")
		}
		return nil, err
	}

	res, err := parseReply(reply)
	if err != nil {
		return nil, err
	}

	applyArmHints(description, res)
	res.Raw = Clean(res.Kind, res.Raw)
	fillSingleGridDefaults(res)
	return res, nil
}

func (c *Client) complete(ctx context.Context, description string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: description},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", httputil.Retryable(errors.Wrap(errors.ErrCodeNetwork, err, "POST %s", c.apiURL))
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return "", err
	}

	var parsed chatResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&parsed); err != nil {
		return "", errors.Wrap(errors.ErrCodeExtractFailed, err, "decode response")
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New(errors.ErrCodeExtractFailed, "response contained no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return errors.New(errors.ErrCodeNoAPIKey, "API rejected credentials (status %d)", code)
	case code == http.StatusTooManyRequests:
		return httputil.Retryable(errors.New(errors.ErrCodeRateLimited, "rate limited (status %d)", code))
	case code >= 500:
		return httputil.Retryable(errors.New(errors.ErrCodeNetwork, "server error (status %d)", code))
	default:
		return errors.New(errors.ErrCodeExtractFailed, "unexpected status %d", code)
	}
}
