package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/legalmindhq/legalmind-api/internal/config"
	"github.com/legalmindhq/legalmind-api/internal/utils"
)

// HuggingFaceClient talks to the Hugging Face Inference API. One outbound
// call per invocation, single attempt, no retries.
type HuggingFaceClient struct {
	apiKey             string
	baseURL            string
	textModel          string
	summarizationModel string
	speechModel        string
	logger             *utils.Logger
	client             *http.Client
}

type hfRequest struct {
	Inputs     string         `json:"inputs"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

type hfSummary struct {
	SummaryText string `json:"summary_text"`
}

type hfError struct {
	Error string `json:"error"`
}

func NewHuggingFaceClient(cfg *config.Config, logger *utils.Logger) *HuggingFaceClient {
	return &HuggingFaceClient{
		apiKey:             cfg.HFAPIKey,
		baseURL:            strings.TrimRight(cfg.HFBaseURL, "/"),
		textModel:          cfg.HFTextModel,
		summarizationModel: cfg.HFSummarizationModel,
		speechModel:        cfg.HFSpeechModel,
		logger:             logger,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (c *HuggingFaceClient) GenerateText(ctx context.Context, prompt string, params GenerationParams) (string, error) {
	body, err := c.post(ctx, c.textModel, hfRequest{
		Inputs: prompt,
		Parameters: map[string]any{
			"max_new_tokens": params.MaxNewTokens,
			"temperature":    params.Temperature,
			"pad_token_id":   50256,
		},
	})
	if err != nil {
		return "", err
	}

	var generations []hfGeneration
	if err := c.unmarshal(body, &generations); err != nil {
		return "", err
	}
	if len(generations) == 0 {
		return "", fmt.Errorf("no generations in response")
	}

	// Some text-generation models echo the prompt back.
	text := strings.Replace(generations[0].GeneratedText, prompt, "", 1)
	return usable(text)
}

func (c *HuggingFaceClient) Summarize(ctx context.Context, text string, params SummaryParams) (string, error) {
	body, err := c.post(ctx, c.summarizationModel, hfRequest{
		Inputs: text,
		Parameters: map[string]any{
			"max_length": params.Length.MaxTokens(),
			"min_length": minSummaryTokens,
		},
	})
	if err != nil {
		return "", err
	}

	var summaries []hfSummary
	if err := c.unmarshal(body, &summaries); err != nil {
		return "", err
	}
	if len(summaries) == 0 {
		return "", fmt.Errorf("no summaries in response")
	}

	return usable(summaries[0].SummaryText)
}

func (c *HuggingFaceClient) Synthesize(ctx context.Context, text string, params SpeechParams) ([]byte, error) {
	audio, err := c.post(ctx, c.voiceModel(params.Voice), hfRequest{Inputs: text})
	if err != nil {
		return nil, err
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("empty audio response")
	}
	return audio, nil
}

// voiceModel resolves a voice preference to a model checkpoint. Every
// preference currently maps to the same configured model.
func (c *HuggingFaceClient) voiceModel(voice Voice) string {
	voiceModels := map[Voice]string{
		VoiceFemale:  c.speechModel,
		VoiceMale:    c.speechModel,
		VoiceNeutral: c.speechModel,
	}
	if model, ok := voiceModels[voice]; ok {
		return model
	}
	return c.speechModel
}

func (c *HuggingFaceClient) post(ctx context.Context, model string, payload hfRequest) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+model, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Hugging Face API error", "status", resp.StatusCode, "model", model, "body", string(body))
		return nil, fmt.Errorf("hugging face API returned status %d", resp.StatusCode)
	}

	return body, nil
}

// unmarshal decodes a JSON body, surfacing the API's own error payload when
// the expected shape does not match.
func (c *HuggingFaceClient) unmarshal(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		var apiErr hfError
		if jsonErr := json.Unmarshal(body, &apiErr); jsonErr == nil && apiErr.Error != "" {
			return fmt.Errorf("hugging face API error: %s", apiErr.Error)
		}
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
