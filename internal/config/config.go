package config

import (
	"fmt"
	"os"
)

type Config struct {
	Server    ServerConfig
	Gemini    GeminiConfig
	Retrieval RetrievalConfig
	Knowledge KnowledgeConfig
	Storage   StorageConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port     int
	APIToken string
}

type GeminiConfig struct {
	BaseURL    string
	APIKey     string
	GenModel   string
	EmbedModel string
}

type RetrievalConfig struct {
	TopK      int
	Threshold float64
}

type KnowledgeConfig struct {
	DocsDir string
}

type StorageConfig struct {
	DataDir string
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port: 4000,
		},
		Gemini: GeminiConfig{
			BaseURL:    "https://generativelanguage.googleapis.com",
			GenModel:   "gemini-2.0-flash",
			EmbedModel: "text-embedding-004",
		},
		Retrieval: RetrievalConfig{
			TopK:      3,
			Threshold: 0.75,
		},
		Storage: StorageConfig{
			DataDir: defaultDataDir(),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the JSON file backend at
// $XDG_CONFIG_HOME/kbchat/config.json, then applies KBCHAT_* environment
// overrides. The Gemini API key is also accepted from the conventional
// GEMINI_API_KEY variable.
func Load() (Config, error) {
	return loadWith(newFileBackend())
}

func loadWith(b Backend) (Config, error) {
	cfg := defaults()

	if err := applyBackend(&cfg, b); err != nil {
		return Config{}, err
	}

	applyEnvOverrides(&cfg)

	if cfg.Gemini.APIKey == "" {
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			cfg.Gemini.APIKey = key
		}
	}

	if cfg.Gemini.APIKey == "" {
		return Config{}, fmt.Errorf("missing required config: Gemini API key. " +
			"Set it via environment variable GEMINI_API_KEY or KBCHAT_GEMINI_API_KEY")
	}

	return cfg, nil
}
