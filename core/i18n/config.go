package i18n

// Config provides environment-based configuration for a Translator.
type Config struct {
	Debug            bool   `env:"I18N_DEBUG" envDefault:"false"`
	Array            bool   `env:"I18N_ARRAY" envDefault:"false"`
	UseKeyForMissing bool   `env:"I18N_USE_KEY_FOR_MISSING" envDefault:"true"`
	ResolveAliases   bool   `env:"I18N_RESOLVE_ALIASES" envDefault:"false"`
	PluralLanguage   string `env:"I18N_PLURAL_LANGUAGE" envDefault:""` // e.g. "pl"; empty keeps Identity
}

// DefaultConfig returns a Config matching the Translator defaults.
func DefaultConfig() Config {
	return Config{
		UseKeyForMissing: true,
	}
}

// NewFromConfig creates a Translator from configuration.
// User-provided options are applied after the config and override it.
func NewFromConfig(table Table, cfg Config, opts ...Option) (*Translator, error) {
	configOpts := make([]Option, 0, len(opts)+5)

	if cfg.Debug {
		configOpts = append(configOpts, WithDebug())
	}
	if cfg.Array {
		configOpts = append(configOpts, WithArray())
	}
	if !cfg.UseKeyForMissing {
		configOpts = append(configOpts, WithUseKeyForMissingTranslation(false))
	}
	if cfg.ResolveAliases {
		configOpts = append(configOpts, WithAliasResolution())
	}
	if cfg.PluralLanguage != "" {
		configOpts = append(configOpts, WithPluralizer(GetPluralRuleForLanguage(cfg.PluralLanguage)))
	}

	configOpts = append(configOpts, opts...)

	return New(table, configOpts...)
}
