package serika

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// lists the generation models the backend offers, including the serika
// extras (description, max_tokens) that ride alongside the OpenAI shape
func (c *Client) Models(ctx context.Context) (*ModelsResponse, error) {
	var models ModelsResponse

	if err := c.do(ctx, credAPIKey, http.MethodGet, apiPath+"/models", nil, nil, &models); err != nil {
		return nil, err
	}

	return &models, nil
}

// lists the personas usable in chat requests
func (c *Client) Characters(ctx context.Context) ([]Character, error) {
	var characters []Character

	if err := c.do(ctx, credAPIKey, http.MethodGet, apiPath+"/characters", nil, nil, &characters); err != nil {
		return nil, err
	}

	return characters, nil
}

// submits a non-streaming chat completion. Plain OpenAI-shaped requests go
// through the SDK; requests carrying serika extensions (character persona,
// system prompt override) use the raw wire shape the SDK cannot express.
func (c *Client) ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	req.Stream = false // streaming is not supported by this client

	if req.CharacterID == "" && req.SystemPrompt == "" {
		return c.chatViaSDK(ctx, req)
	}

	var resp ChatResponse

	if err := c.do(ctx, credAPIKey, http.MethodPost, apiPath+"/chat/completions", nil, req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// submits an image generation request (serika wire shape: negative prompt,
// steps, sampler and friends are not part of the OpenAI images API)
func (c *Client) GenerateImage(ctx context.Context, req ImageRequest) (*ImageResponse, error) {
	var resp ImageResponse

	if err := c.do(ctx, credAPIKey, http.MethodPost, apiPath+"/images/generations", nil, req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) chatViaSDK(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	key, ok := c.creds.APIKey()
	if !ok {
		return nil, ErrNoAPIKey
	}

	cfg := openai.DefaultConfig(key)
	cfg.BaseURL = c.baseURL + apiPath
	cfg.HTTPClient = c.httpClient
	client := openai.NewClientWithConfig(cfg)

	messages := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, msg := range req.Messages {
		messages[i] = openai.ChatCompletionMessage{Role: msg.Role, Content: msg.Content}
	}

	sdkReq := openai.ChatCompletionRequest{
		Model:    req.Model,
		Messages: messages,
	}

	if req.Temperature != nil {
		sdkReq.Temperature = *req.Temperature
	}

	completion, err := client.CreateChatCompletion(ctx, sdkReq)
	if err != nil {
		return nil, translateSDKError(err)
	}

	resp := &ChatResponse{
		ID:      completion.ID,
		Object:  completion.Object,
		Created: completion.Created,
		Model:   completion.Model,
		Usage: TokenUsage{
			PromptTokens:     completion.Usage.PromptTokens,
			CompletionTokens: completion.Usage.CompletionTokens,
			TotalTokens:      completion.Usage.TotalTokens,
		},
	}

	for _, choice := range completion.Choices {
		resp.Choices = append(resp.Choices, ChatChoice{
			Index: choice.Index,
			Message: ChatMessage{
				Role:    choice.Message.Role,
				Content: choice.Message.Content,
			},
			FinishReason: string(choice.FinishReason),
		})
	}

	return resp, nil
}

// keeps the pass-through error contract intact on the SDK path
func translateSDKError(err error) error {
	var sdkErr *openai.APIError

	if errors.As(err, &sdkErr) {
		apiErr := &APIError{
			Status:  sdkErr.HTTPStatusCode,
			Type:    sdkErr.Type,
			Message: sdkErr.Message,
		}

		if sdkErr.Code != nil {
			apiErr.Code = fmt.Sprintf("%v", sdkErr.Code)
		}

		return apiErr
	}

	return err
}
