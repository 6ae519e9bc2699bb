package cooldown

import "time"

// Rule gates an action on the time elapsed since its anchor action was
// last recorded. An action may be its own anchor.
type Rule struct {
	Anchor   string
	Duration time.Duration
}

// Config holds cooldown service configuration
type Config struct {
	// DevMode bypasses all gates when true
	DevMode bool

	// Rules maps action names to their gates
	Rules map[string]Rule
}

// DefaultConfig gates both lever and stop buttons on the last lever pull
func DefaultConfig(leverGap, buttonGap time.Duration) Config {
	return Config{
		Rules: map[string]Rule{
			ActionLever: {Anchor: ActionLever, Duration: leverGap},
			ActionStop:  {Anchor: ActionLever, Duration: buttonGap},
		},
	}
}

// GetRule returns the gate for an action. Unknown actions are never gated.
func (c *Config) GetRule(action string) (Rule, bool) {
	if c.Rules == nil {
		return Rule{}, false
	}
	r, ok := c.Rules[action]
	return r, ok
}
