package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "abm-researcher/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the source-collection stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Depth is the search provider depth tier; the pipeline always
	// requests "advanced" unless overridden for tests.
	Depth string `json:"depth" yaml:"depth"`

	// TopicResults caps results per topical query (general, strategy,
	// tech, culture). Default 5.
	TopicResults int `json:"topic_results" yaml:"topic_results"`

	// PersonaResults caps results per persona-hunting query. Named-person
	// queries have lower hit rates and need more attempts, so the default
	// (8) is larger than TopicResults.
	PersonaResults int `json:"persona_results" yaml:"persona_results"`
}

// AIConfig holds settings for the synthesis stage.
type AIConfig struct {
	// Model is the generative model identifier (e.g. "claude-haiku-4-5-20251001").
	Model string `json:"model" yaml:"model"`

	// Temperature is the sampling temperature. The pipeline keeps this
	// near zero to prioritize factuality over creative variance.
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// MaxTokens bounds the generated output length (default 3000).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// MaxRetries is the number of retry attempts for transient API
	// failures (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// RenderConfig holds settings for the one-pager renderer.
type RenderConfig struct {
	// LogoPath points to an optional PNG logo embedded in the document
	// header. Empty falls back to the brand wordmark.
	LogoPath string `json:"logo_path,omitempty" yaml:"logo_path,omitempty"`

	// FeaturesPath points to an optional YAML capability table that
	// overrides the built-in one for solution matching.
	FeaturesPath string `json:"features_path,omitempty" yaml:"features_path,omitempty"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Search SearchConfig `json:"search" yaml:"search"`
	AI     AIConfig     `json:"ai" yaml:"ai"`
	Render RenderConfig `json:"render" yaml:"render"`
}

// DefaultPipelineConfig returns the configuration used when no config file
// or environment override is present.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Search: SearchConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   30 * time.Second,
				UserAgent: "abm-researcher/0.1",
			},
			Depth:          "advanced",
			TopicResults:   5,
			PersonaResults: 8,
		},
		AI: AIConfig{
			Model:       "claude-haiku-4-5-20251001",
			Temperature: 0.2,
			MaxTokens:   3000,
			MaxRetries:  3,
		},
	}
}
