package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const (
	// DefaultGenerateEndpoint is the Cohere text generation endpoint.
	DefaultGenerateEndpoint = "https://api.cohere.ai/v1/generate"
	// DefaultModel is the generation model to use.
	DefaultModel = "command"
)

// GenerateRequest is the wire body for the generation endpoint.
type GenerateRequest struct {
	Model             string   `json:"model"`
	Prompt            string   `json:"prompt"`
	MaxTokens         int      `json:"max_tokens"`
	Temperature       float64  `json:"temperature"`
	StopSequences     []string `json:"stop_sequences"`
	ReturnLikelihoods string   `json:"return_likelihoods"`
}

// GenerateResponse is the wire response; the first generation's text is
// the payload.
type GenerateResponse struct {
	Generations []struct {
		Text string `json:"text"`
	} `json:"generations"`
}

// CohereClient is a thin client for the hosted generation API. Each call
// makes at most one attempt; retrying is the caller's decision and no
// caller here retries.
type CohereClient struct {
	endpoint    string
	model       string
	credentials CredentialStore
	httpClient  *http.Client
}

// NewCohereClient creates a client using the default endpoint and model.
func NewCohereClient(credentials CredentialStore) *CohereClient {
	return &CohereClient{
		endpoint:    DefaultGenerateEndpoint,
		model:       DefaultModel,
		credentials: credentials,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// NewCohereClientWithEndpoint overrides the endpoint and model, used for
// self-hosted gateways and tests.
func NewCohereClientWithEndpoint(credentials CredentialStore, endpoint, model string) *CohereClient {
	client := NewCohereClient(credentials)
	if endpoint != "" {
		client.endpoint = endpoint
	}
	if model != "" {
		client.model = model
	}
	return client
}

// Generate sends one prompt to the generation API and returns the first
// generation's text. Failures are typed: ErrMissingCredential when no key
// is available, NetworkError for transport or non-2xx failures,
// ValidationError when the response carries no generations.
func (c *CohereClient) Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	apiKey, err := c.credentials.Get()
	if err != nil {
		return "", ErrMissingCredential
	}

	body, err := json.Marshal(GenerateRequest{
		Model:             c.model,
		Prompt:            prompt,
		MaxTokens:         maxTokens,
		Temperature:       temperature,
		StopSequences:     []string{},
		ReturnLikelihoods: "NONE",
	})
	if err != nil {
		return "", errors.Wrap(err, "encoding generation request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return "", errors.Wrap(err, "building generation request")
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", &NetworkError{StatusCode: resp.StatusCode}
	}

	var genResp GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", &ValidationError{Reason: "response body is not valid JSON"}
	}
	if len(genResp.Generations) == 0 {
		return "", &ValidationError{Reason: "no generations returned"}
	}

	return genResp.Generations[0].Text, nil
}
