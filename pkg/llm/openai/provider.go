package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"diet-coach-be/pkg/llm"
)

const chatCompletionsURL = "https://api.openai.com/v1/chat/completions"

// Provider talks to the OpenAI chat-completions API. It implements both
// llm.Provider and llm.VisionProvider.
type Provider struct {
	apiKey      string
	chatModel   string
	visionModel string
	client      *http.Client
}

func NewProvider(apiKey, chatModel, visionModel string) *Provider {
	return &Provider{
		apiKey:      apiKey,
		chatModel:   chatModel,
		visionModel: visionModel,
		client:      &http.Client{Timeout: 60 * time.Second},
	}
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type requestMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"` // string or []contentPart
}

type responseFormat struct {
	Type string `json:"type"`
}

type completionRequest struct {
	Model          string           `json:"model"`
	Messages       []requestMessage `json:"messages"`
	MaxTokens      int              `json:"max_tokens,omitempty"`
	Temperature    float64          `json:"temperature,omitempty"`
	ResponseFormat *responseFormat  `json:"response_format,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	opts := applyOptions(options)

	messages := make([]requestMessage, 0, len(history))
	for _, m := range history {
		messages = append(messages, requestMessage{Role: m.Role, Content: m.Content})
	}

	model := p.chatModel
	if opts.Model != "" {
		model = opts.Model
	}

	req := completionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	}
	if opts.JSONMode {
		req.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	return p.complete(ctx, req)
}

func (p *Provider) AnalyzeImage(ctx context.Context, prompt string, imageData []byte, mimeType string, options ...llm.Option) (string, error) {
	opts := applyOptions(options)

	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(imageData))

	model := p.visionModel
	if opts.Model != "" {
		model = opts.Model
	}

	req := completionRequest{
		Model: model,
		Messages: []requestMessage{
			{
				Role: "user",
				Content: []contentPart{
					{Type: "text", Text: prompt},
					{Type: "image_url", ImageURL: &imageURL{URL: dataURL}},
				},
			},
		},
		MaxTokens: opts.MaxTokens,
	}

	return p.complete(ctx, req)
}

func (p *Provider) complete(ctx context.Context, payload completionRequest) (string, error) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", chatCompletionsURL, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var completion completionResponse
	if err := json.Unmarshal(resBody, &completion); err != nil {
		return "", err
	}
	if completion.Error != nil {
		return "", fmt.Errorf("openai error: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}

	return completion.Choices[0].Message.Content, nil
}

func applyOptions(options []llm.Option) *llm.Options {
	opts := &llm.Options{}
	for _, o := range options {
		o(opts)
	}
	return opts
}
