// Package llm provides the optional language model integration. The
// engine only uses it to produce a polished document summary; ranking
// and matching never depend on it.
package llm

// ModelTier selects how capable a model the caller needs.
type ModelTier string

const (
	// TierLite covers cheap tasks such as summarization.
	TierLite ModelTier = "lite"
	// TierStandard covers moderate reasoning.
	TierStandard ModelTier = "standard"
)

// Config maps tiers to concrete model names.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model assignment.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel resolves a tier to a model name, falling back through
// standard and lite when the requested tier has no assignment.
func (c *Config) GetModel(tier ModelTier) string {
	for _, t := range []ModelTier{tier, TierStandard, TierLite} {
		if model, ok := c.Models[t]; ok {
			return model
		}
	}
	return ""
}

// WithModel returns a copy of the config with one tier reassigned.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	models := make(map[ModelTier]string, len(c.Models)+1)
	for k, v := range c.Models {
		models[k] = v
	}
	models[tier] = model
	return &Config{Models: models}
}
