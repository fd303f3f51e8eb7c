package app

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the file paths and analysis defaults. Compiled
// defaults are overridden by an optional hanlex.yaml next to the
// binary, then by HANLEX_* environment variables.
type Config struct {
	StopwordsPath string   `yaml:"stopwords_path"`
	UserDictPath  string   `yaml:"user_dict_path"`
	PosResultPath string   `yaml:"pos_result_path"`
	WordCloudPath string   `yaml:"wordcloud_path"`
	ChartPath     string   `yaml:"chart_path"`
	FontPath      string   `yaml:"font_path"`
	EntityTags    []string `yaml:"entity_tags"`
	TopN          int      `yaml:"top_n"`
}

func DefaultConfig() Config {
	return Config{
		StopwordsPath: "stopwords.txt",
		UserDictPath:  "user_dict.txt",
		PosResultPath: "pos_result.txt",
		WordCloudPath: "wordcloud.png",
		ChartPath:     "chart.png",
		EntityTags:    []string{"nr", "ns"},
		TopN:          10,
	}
}

// LoadConfig builds the effective configuration. A missing config
// file is not an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyEnv()

	if cfg.TopN <= 0 {
		return Config{}, fmt.Errorf("top_n must be positive, got %d", cfg.TopN)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	overrides := []struct {
		env    string
		target *string
	}{
		{"HANLEX_STOPWORDS", &c.StopwordsPath},
		{"HANLEX_USER_DICT", &c.UserDictPath},
		{"HANLEX_POS_RESULT", &c.PosResultPath},
		{"HANLEX_WORDCLOUD", &c.WordCloudPath},
		{"HANLEX_CHART", &c.ChartPath},
		{"HANLEX_FONT", &c.FontPath},
	}

	for _, o := range overrides {
		if v := os.Getenv(o.env); v != "" {
			*o.target = v
		}
	}
}
