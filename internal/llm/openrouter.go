package llm

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// openRouterHeaders identify the application in OpenRouter's rankings.
var openRouterHeaders = map[string]string{
	"HTTP-Referer": "https://github.com/abhisek/intervue",
	"X-Title":      "intervue",
}

// OpenRouterProvider targets OpenRouter's OpenAI-compatible API. Model IDs
// are passed through unchanged, e.g. "anthropic/claude-3-haiku".
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(ep Endpoint) (*OpenRouterProvider, error) {
	if ep.BaseURL == "" {
		ep.BaseURL = defaultOpenRouterBaseURL
	}

	inner, err := newOpenAIProvider("openrouter", ep, openRouterHeaders)
	if err != nil {
		return nil, err
	}
	inner.model = ep.Model
	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}
