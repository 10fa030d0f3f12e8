// Package config loads environment configuration into structs tagged for
// caarlos0/env. Each struct type is parsed once and cached, and a .env file in
// the working directory is read before the first parse when present.
//
// Translator settings come straight from i18n.Config:
//
//	import (
//		"github.com/dmitrymomot/translate/core/config"
//		"github.com/dmitrymomot/translate/core/i18n"
//	)
//
//	var cfg i18n.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//	tr, err := i18n.NewFromConfig(table, cfg)
//
// The variables are I18N_DEBUG, I18N_ARRAY, I18N_USE_KEY_FOR_MISSING,
// I18N_RESOLVE_ALIASES and I18N_PLURAL_LANGUAGE.
//
// Application configs embed it and add their own fields, as the translate
// command does:
//
//	type Config struct {
//		i18n.Config
//
//		LogFormat string `env:"TRANSLATE_LOG_FORMAT" envDefault:"text"`
//		Verbose   bool   `env:"TRANSLATE_VERBOSE" envDefault:"false"`
//	}
//
//	config.MustLoad(&cfg) // panics instead of returning the error
//
// # Caching Behavior
//
// The first Load of a type parses the environment; later calls copy the cached
// value, so changes to the environment after startup are not seen:
//
//	var a, b i18n.Config
//	config.Load(&a) // parses I18N_*
//	config.Load(&b) // cached, b == a
//
// i18n.Config and the command's Config are different types and are cached
// independently.
package config
