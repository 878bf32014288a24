// Package llm implements the language-model collaborator over the Anthropic
// messages API. Structured extraction is a forced tool call whose input schema
// is the extraction schema; narrative synthesis is a plain text completion.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/clinical-scales-server/internal/domain"
)

const (
	defaultBaseURL   = "https://api.anthropic.com"
	apiVersion       = "2023-06-01"
	extractionTool   = "record_extracted_variables"
	defaultMaxTokens = 4096
)

// Client is the HTTP client for the messages API. A token-bucket limiter
// paces requests; its rate comes from LLMConfig.RateLimit (requests/second).
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	maxTokens  int
	logger     *logrus.Logger
}

// NewClient creates a messages API client from configuration
func NewClient(config domain.LLMConfig, logger *logrus.Logger) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	rateLimit := config.RateLimit
	if rateLimit <= 0 {
		rateLimit = 5
	}
	maxTokens := config.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  config.APIKey,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		limiter:   rate.NewLimiter(rate.Limit(rateLimit), rateLimit),
		maxTokens: maxTokens,
		logger:    logger,
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type toolDefinition struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	InputSchema domain.SchemaObject `json:"input_schema"`
}

type toolChoice struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

type messagesRequest struct {
	Model      string           `json:"model"`
	MaxTokens  int              `json:"max_tokens"`
	Messages   []message        `json:"messages"`
	Tools      []toolDefinition `json:"tools,omitempty"`
	ToolChoice *toolChoice      `json:"tool_choice,omitempty"`
}

type contentBlock struct {
	Type  string          `json:"type"`
	Text  string          `json:"text,omitempty"`
	Name  string          `json:"name,omitempty"`
	Input json.RawMessage `json:"input,omitempty"`
}

type messagesResponse struct {
	Content    []contentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
	Error      *apiError      `json:"error,omitempty"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ExtractStructured performs one schema-constrained extraction call. The
// schema is exposed as the input schema of a single tool and the model is
// forced to call it, so the response input is guaranteed to parse as the
// per-variable field map.
func (c *Client) ExtractStructured(
	ctx context.Context,
	prompt string,
	schema domain.SchemaObject,
	model string,
) (map[string]json.RawMessage, error) {
	request := messagesRequest{
		Model:     model,
		MaxTokens: c.maxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
		Tools: []toolDefinition{{
			Name:        extractionTool,
			Description: "Record the clinical variables extracted from the conversation",
			InputSchema: schema,
		}},
		ToolChoice: &toolChoice{Type: "tool", Name: extractionTool},
	}

	response, err := c.send(ctx, request)
	if err != nil {
		return nil, err
	}

	for _, block := range response.Content {
		if block.Type != "tool_use" || block.Name != extractionTool {
			continue
		}
		fields := make(map[string]json.RawMessage)
		if err := json.Unmarshal(block.Input, &fields); err != nil {
			return nil, fmt.Errorf("failed to decode tool input: %w", err)
		}
		return fields, nil
	}
	return nil, fmt.Errorf("model response contains no %s tool call", extractionTool)
}

// Complete performs one free-text completion call
func (c *Client) Complete(ctx context.Context, prompt string, model string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		maxTokens = c.maxTokens
	}
	request := messagesRequest{
		Model:     model,
		MaxTokens: maxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	}

	response, err := c.send(ctx, request)
	if err != nil {
		return "", err
	}

	for _, block := range response.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("model response contains no text block")
}

// send applies the rate limit, posts the request and decodes the response
func (c *Client) send(ctx context.Context, request messagesRequest) (*messagesResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.Header.Set("x-api-key", c.apiKey)
	httpRequest.Header.Set("anthropic-version", apiVersion)

	c.logger.WithFields(logrus.Fields{
		"model":      request.Model,
		"max_tokens": request.MaxTokens,
		"tool_call":  request.ToolChoice != nil,
	}).Debug("Sending language model request")

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return nil, fmt.Errorf("language model request failed: %w", err)
	}
	defer httpResponse.Body.Close()

	payload, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var response messagesResponse
	if err := json.Unmarshal(payload, &response); err != nil {
		return nil, fmt.Errorf("failed to decode response (status %d): %w", httpResponse.StatusCode, err)
	}

	if httpResponse.StatusCode != http.StatusOK {
		if response.Error != nil {
			return nil, fmt.Errorf("language model API error (status %d, type %s): %s",
				httpResponse.StatusCode, response.Error.Type, response.Error.Message)
		}
		return nil, fmt.Errorf("language model API error: status %d", httpResponse.StatusCode)
	}

	return &response, nil
}
