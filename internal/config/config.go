package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	ProviderHuggingFace = "huggingface"
	ProviderOpenAI      = "openai"
)

type Config struct {
	Port     string
	LogLevel string

	// Inference provider selection
	Provider string

	// Hugging Face Inference API
	HFAPIKey             string
	HFBaseURL            string
	HFTextModel          string
	HFSummarizationModel string
	HFSpeechModel        string

	// OpenAI
	OpenAIAPIKey string
	OpenAIModel  string

	// Advertised client-side upload limit; not enforced server-side
	MaxFileSize int64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                 getEnv("PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		Provider:             getEnv("INFERENCE_PROVIDER", ProviderHuggingFace),
		HFAPIKey:             getEnv("HF_API_KEY", ""),
		HFBaseURL:            getEnv("HF_BASE_URL", "https://api-inference.huggingface.co/models"),
		HFTextModel:          getEnv("HF_TEXT_MODEL", "gpt2"),
		HFSummarizationModel: getEnv("HF_SUMMARIZATION_MODEL", "facebook/bart-large-cnn"),
		HFSpeechModel:        getEnv("HF_SPEECH_MODEL", "microsoft/speecht5_tts"),
		OpenAIAPIKey:         getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:          getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		MaxFileSize:          50 * 1024 * 1024,
	}

	switch cfg.Provider {
	case ProviderHuggingFace:
		if cfg.HFAPIKey == "" {
			return nil, fmt.Errorf("HF_API_KEY is required when INFERENCE_PROVIDER=huggingface")
		}
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when INFERENCE_PROVIDER=openai")
		}
	default:
		return nil, fmt.Errorf("unknown inference provider %q", cfg.Provider)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
