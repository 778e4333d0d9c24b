package engine

// modelRegistry maps the model identifiers the wrapper accepts to the
// provider that serves them. The list mirrors the providers the auth
// check knows about.
var modelRegistry = map[string]string{
	"claude-sonnet": "anthropic",
	"claude-opus":   "anthropic",
	"claude-haiku":  "anthropic",
	"gpt-4o":        "openai",
	"gpt-4o-mini":   "openai",
	"gemini-pro":    "google",
	"gemini-flash":  "google",
}

// ResolveModelProvider returns the provider serving the given model.
// Unknown models yield a ModelNotFoundError.
func ResolveModelProvider(model string) (string, error) {
	provider, ok := modelRegistry[model]
	if !ok {
		return "", ModelNotFoundError(model)
	}
	return provider, nil
}

// KnownModels returns the registered model identifiers. Order is not
// specified.
func KnownModels() []string {
	models := make([]string, 0, len(modelRegistry))
	for m := range modelRegistry {
		models = append(models, m)
	}
	return models
}
