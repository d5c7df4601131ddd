package report

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/intervue/internal/llm"
)

// chatProvider is an OpenAI provider backed by a server that always answers
// with content.
func chatProvider(t *testing.T, content string) llm.Provider {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-report",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": "stop",
			}},
			"usage": map[string]any{"prompt_tokens": 900, "completion_tokens": 300, "total_tokens": 1200},
		})
	}))
	t.Cleanup(server.Close)

	p, err := llm.NewOpenAIProvider(llm.Endpoint{APIKey: "test-key", Model: "gpt-mini", BaseURL: server.URL + "/v1"})
	require.NoError(t, err)
	return p
}

func TestSynthesize_ProseWrappedReplyFromProvider(t *testing.T) {
	p := chatProvider(t, "Here is the evaluation:\n"+validReport+"\nHope this helps.")
	s := New(p, DefaultConfig(), nil, WithClock(func() time.Time { return fixedNow }))

	r := s.Synthesize(context.Background(), testExport(8, 9), testProfile())
	assert.Equal(t, Hire, r.Recommendation)
	assert.Equal(t, "Strong backend fundamentals.", r.ExecutiveSummary)
	assert.Empty(t, r.ErrorNote)
	assert.Equal(t, "Backend Engineer", r.Metadata.Position)
}

func TestDraft_ProviderReplyWithoutObject(t *testing.T) {
	s := New(chatProvider(t, "I cannot produce a report for this interview."), DefaultConfig(), nil)

	_, err := s.Draft(context.Background(), testExport(6), testProfile())
	var mal *llm.MalformedOutputError
	require.ErrorAs(t, err, &mal)
	assert.Contains(t, mal.Content, "cannot produce a report")
}
