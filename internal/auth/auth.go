// Package auth locates usable provider credentials for the agent engine.
//
// Credentials live either in the runtime's credential storage or in the
// process environment; this package only checks presence, it never stores
// or refreshes anything.
package auth

import "os"

// Provider maps a provider name to the environment variables that may
// carry its API key.
type Provider struct {
	Name            string
	EnvVar          string
	FallbackEnvVars []string
}

// providerTable is the fixed provider list. Order matters twice: it is
// the storage-lookup priority and the env-lookup declaration order.
var providerTable = []Provider{
	{Name: "anthropic", EnvVar: "ANTHROPIC_API_KEY", FallbackEnvVars: []string{"CLAUDE_API_KEY"}},
	{Name: "openai", EnvVar: "OPENAI_API_KEY", FallbackEnvVars: []string{"OPENAI_KEY"}},
	{Name: "google", EnvVar: "GEMINI_API_KEY", FallbackEnvVars: []string{"GOOGLE_API_KEY"}},
}

// Providers returns the provider table in priority order.
func Providers() []Provider {
	out := make([]Provider, len(providerTable))
	copy(out, providerTable)
	return out
}

// Storage is the credential store supplied by the agent runtime. Get
// reports the credential for a provider and whether one is present.
type Storage interface {
	Get(provider string) (string, bool)
}

// SourceStorage marks a Result found via credential storage rather than
// the environment.
const SourceStorage = "storage"

// Result identifies the first provider with a usable credential and where
// it was found: SourceStorage, or the name of the matching env var.
type Result struct {
	Provider string
	Source   string
}

// FirstAvailable returns the first provider with a credential. Storage is
// consulted first, across all providers in priority order; only then is
// the environment checked, per provider the primary variable before its
// fallbacks. A nil storage skips the storage pass; a nil lookupEnv uses
// os.LookupEnv.
func FirstAvailable(storage Storage, lookupEnv func(string) (string, bool)) (Result, bool) {
	if storage != nil {
		for _, p := range providerTable {
			if _, ok := storage.Get(p.Name); ok {
				return Result{Provider: p.Name, Source: SourceStorage}, true
			}
		}
	}

	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	for _, p := range providerTable {
		if value, ok := lookupEnv(p.EnvVar); ok && value != "" {
			return Result{Provider: p.Name, Source: p.EnvVar}, true
		}
		for _, name := range p.FallbackEnvVars {
			if value, ok := lookupEnv(name); ok && value != "" {
				return Result{Provider: p.Name, Source: name}, true
			}
		}
	}

	return Result{}, false
}
