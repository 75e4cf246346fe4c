package inference

import (
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient is the alternative provider backend.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIClient) GenerateText(ctx context.Context, prompt string, params GenerationParams) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   params.MaxNewTokens,
		Temperature: float32(params.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return usable(resp.Choices[0].Message.Content)
}

func (c *OpenAIClient) Summarize(ctx context.Context, text string, params SummaryParams) (string, error) {
	prompt := fmt.Sprintf("Summarize the following document in at most %d tokens and no fewer than %d. Respond with the summary only.\n\n%s",
		params.Length.MaxTokens(), minSummaryTokens, text)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: params.Length.MaxTokens(),
	})
	if err != nil {
		return "", fmt.Errorf("create summarization completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("summarization returned no choices")
	}
	return usable(resp.Choices[0].Message.Content)
}

func (c *OpenAIClient) Synthesize(ctx context.Context, text string, params SpeechParams) ([]byte, error) {
	// The requested speed is deliberately not set on the request.
	resp, err := c.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.TTSModel1,
		Input:          text,
		Voice:          speechVoice(params.Voice),
		ResponseFormat: openai.SpeechResponseFormatWav,
	})
	if err != nil {
		return nil, fmt.Errorf("create speech: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("read speech response: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("empty audio response")
	}
	return audio, nil
}

func speechVoice(voice Voice) openai.SpeechVoice {
	switch voice {
	case VoiceFemale:
		return openai.VoiceNova
	case VoiceMale:
		return openai.VoiceOnyx
	default:
		return openai.VoiceAlloy
	}
}
