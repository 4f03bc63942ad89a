// Package openai generates text, images and speech with the OpenAI API.
package openai

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Jeetch8/softfix-helper/internal/provider"
)

// Config selects the models used for each kind of generation.
type Config struct {
	APIKey      string
	BaseURL     string // empty means the public API
	TextModel   string
	ImageModel  string
	ImageSize   string
	SpeechModel string
	Voice       string
	MaxTokens   int
}

// Client wraps go-openai for the three generation kinds.
type Client struct {
	client *openai.Client
	cfg    Config
	log    *slog.Logger
}

// New creates a Client.
func New(cfg Config, logger *slog.Logger) *Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &Client{
		client: openai.NewClientWithConfig(clientCfg),
		cfg:    cfg,
		log:    logger.With("adapter", "openai"),
	}
}

// GenerateText returns the first chat completion choice for prompt.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.cfg.TextModel,
		MaxTokens: c.cfg.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: chat completion: %w", provider.ErrEmptyResponse)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("openai: chat completion: %w", provider.ErrEmptyResponse)
	}
	return text, nil
}

// GenerateImage renders prompt and returns the PNG bytes.
func (c *Client) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          c.cfg.ImageModel,
		Size:           c.cfg.ImageSize,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
		N:              1,
	})
	if err != nil {
		return nil, fmt.Errorf("openai: create image: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, fmt.Errorf("openai: create image: %w", provider.ErrEmptyResponse)
	}

	img, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("openai: decode image: %w", err)
	}

	c.log.DebugContext(ctx, "image generated", slog.Int("bytes", len(img)))
	return img, nil
}

// GenerateSpeech reads text aloud and returns raw 16-bit little-endian mono PCM.
func (c *Client) GenerateSpeech(ctx context.Context, text string) ([]byte, error) {
	resp, err := c.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(c.cfg.SpeechModel),
		Input:          text,
		Voice:          openai.SpeechVoice(c.cfg.Voice),
		ResponseFormat: openai.SpeechResponseFormat("pcm"),
	})
	if err != nil {
		return nil, fmt.Errorf("openai: create speech: %w", err)
	}
	defer resp.Close()

	pcm, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("openai: read speech: %w", err)
	}
	if len(pcm) == 0 {
		return nil, fmt.Errorf("openai: create speech: %w", provider.ErrEmptyResponse)
	}

	c.log.DebugContext(ctx, "speech generated", slog.Int("bytes", len(pcm)))
	return pcm, nil
}
