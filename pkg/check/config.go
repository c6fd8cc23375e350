package check

// Config controls which rules run and with which options.
type Config struct {
	// Disabled maps rule IDs to an explicit off switch.
	Disabled map[string]bool
	// RuleOptions holds per-rule option maps keyed by rule ID.
	RuleOptions map[string]Options
}

// NewConfig returns an empty config with every rule enabled.
func NewConfig() *Config {
	return &Config{
		Disabled:    make(map[string]bool),
		RuleOptions: make(map[string]Options),
	}
}

// Disable switches a rule off. Chainable.
func (c *Config) Disable(id string) *Config {
	c.Disabled[id] = true
	return c
}

// IsDisabled reports whether the rule has been switched off.
func (c *Config) IsDisabled(id string) bool {
	return c.Disabled[id]
}

// SetRuleOptions replaces the option map for a rule. Chainable.
func (c *Config) SetRuleOptions(id string, opts Options) *Config {
	c.RuleOptions[id] = opts
	return c
}

// SetRuleOption sets a single option for a rule. Chainable.
func (c *Config) SetRuleOption(id, key string, value any) *Config {
	if c.RuleOptions[id] == nil {
		c.RuleOptions[id] = make(Options)
	}
	c.RuleOptions[id][key] = value
	return c
}

// GetRuleOptions returns the option map for a rule, or nil when none
// have been set. Callers must not mutate the returned map.
func (c *Config) GetRuleOptions(id string) Options {
	return c.RuleOptions[id]
}
