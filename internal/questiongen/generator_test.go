package questiongen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/intervue/internal/evaluation"
	"github.com/abhisek/intervue/internal/llm"
	"github.com/abhisek/intervue/internal/profile"
)

func testProfile() profile.JobProfile {
	return profile.JobProfile{
		Title:         "Backend Engineer",
		Level:         profile.LevelMid,
		Type:          profile.TypeTechnical,
		Duration:      profile.DurationQuick,
		Description:   "Design and run Go microservices backed by Postgres.",
		CandidateName: "Ada",
	}.WithDefaults()
}

func TestOpening_Generated(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON("  Walk me through a Go service you built.  "))
	gen := New(mock, DefaultConfig(), nil)

	q := gen.Opening(context.Background(), testProfile())
	assert.Equal(t, "Walk me through a Go service you built.", q)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Nil(t, req.Schema)
	assert.Equal(t, 200, req.MaxTokens)
	assert.InDelta(t, 0.7, req.Temperature, 1e-9)

	msg := req.Messages[0].Content
	assert.Contains(t, msg, "Backend Engineer")
	assert.Contains(t, msg, "Mid Level (2-5 years)")
	assert.Contains(t, msg, "Technical Focus")
	assert.Contains(t, msg, "Ada")
	assert.Contains(t, msg, "Postgres")
}

func TestOpening_Fallback(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"service error", llm.MockErr(&llm.ErrProviderUnavailable{Err: errors.New("down")})},
		{"empty text", llm.MockJSON("   ")},
		{"empty quotes", llm.MockJSON(`""`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := New(llm.NewMockProvider(tt.resp), DefaultConfig(), nil)
			q := gen.Opening(context.Background(), testProfile())
			assert.Equal(t, OpeningFallback("Backend Engineer"), q)
			assert.True(t, strings.HasPrefix(q, "Hello! I'm excited to interview you for the Backend Engineer position."))
		})
	}
}

func TestNext_PromptContents(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(`"How would you shard this table?"`))
	gen := New(mock, DefaultConfig(), nil)

	long := strings.Repeat("a", 150)
	in := NextInput{
		Profile:    testProfile(),
		Question:   "Tell me about your database work.",
		Response:   strings.Repeat("x", 600),
		Evaluation: evaluation.Evaluation{Score: 7, AreasToProbe: "Sharding strategy"},
		PriorQuestions: []string{
			"first question should be dropped",
			long,
			"second",
			"third",
		},
		Turn:         1,
		MaxQuestions: 8,
	}

	q := gen.Next(context.Background(), in)
	assert.Equal(t, "How would you shard this table?", q)

	req := mock.Calls[0]
	assert.Equal(t, 250, req.MaxTokens)
	assert.InDelta(t, 0.8, req.Temperature, 1e-9)

	msg := req.Messages[0].Content
	assert.Contains(t, msg, "Question number: 2 of 8")
	assert.Contains(t, msg, "Evaluation score: 7/10")
	assert.Contains(t, msg, "Areas to probe: Sharding strategy")
	assert.Contains(t, msg, "Previous topics covered: "+strings.Repeat("a", 100)+"; second; third")
	assert.NotContains(t, msg, "first question should be dropped")
	assert.NotContains(t, msg, strings.Repeat("x", 501))
	assert.Contains(t, msg, strings.Repeat("x", 500))
	assert.Contains(t, msg, "Maintain good interview momentum.")
}

func TestNext_ClosingInstruction(t *testing.T) {
	tests := []struct {
		turn    int
		closing bool
	}{
		{0, false},
		{5, false},
		{6, true},
		{7, true},
	}

	for _, tt := range tests {
		mock := llm.NewMockProvider(llm.MockJSON("Any final thoughts?"))
		gen := New(mock, DefaultConfig(), nil)
		gen.Next(context.Background(), NextInput{Profile: testProfile(), Turn: tt.turn, MaxQuestions: 8})

		msg := mock.Calls[0].Messages[0].Content
		assert.Equal(t, tt.closing, strings.Contains(msg, "strong closing question"), "turn %d", tt.turn)
	}
}

func TestNext_FallbackSequence(t *testing.T) {
	gen := New(llm.NewMockProvider(), DefaultConfig(), nil)

	var got []string
	for turn := 0; turn < 7; turn++ {
		got = append(got, gen.Next(context.Background(), NextInput{Profile: testProfile(), Turn: turn, MaxQuestions: 8}))
	}

	for i := 1; i < len(fallbackQuestions); i++ {
		assert.NotEqual(t, got[i-1], got[i], "consecutive fallbacks %d and %d repeat", i-1, i)
	}
	assert.Equal(t, fallbackQuestions[0], got[0])
	assert.Equal(t, fallbackQuestions[4], got[4])
	assert.Equal(t, fallbackQuestions[4], got[5])
	assert.Equal(t, fallbackQuestions[4], got[6])
}

func TestNext_MalformedUsesFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockErr(&llm.ErrMaxTokensExceeded{}))
	gen := New(mock, DefaultConfig(), nil)

	q := gen.Next(context.Background(), NextInput{Profile: testProfile(), Turn: 2, MaxQuestions: 8})
	assert.Equal(t, FallbackQuestion(2), q)
}

func TestPurposes(t *testing.T) {
	var purposes []string
	spy := &purposeSpy{record: func(ctx context.Context) { purposes = append(purposes, llm.PurposeFrom(ctx)) }}
	gen := New(spy, DefaultConfig(), nil)

	gen.Opening(context.Background(), testProfile())
	gen.Next(context.Background(), NextInput{Profile: testProfile(), MaxQuestions: 8})

	assert.Equal(t, []string{PurposeOpening, PurposeNext}, purposes)
}

func TestFallbackQuestion_NegativeTurn(t *testing.T) {
	assert.Equal(t, fallbackQuestions[0], FallbackQuestion(-1))
}

func TestCleanQuestion(t *testing.T) {
	assert.Equal(t, "What is a goroutine?", cleanQuestion(`  "What is a goroutine?" `))
	assert.Equal(t, `He said "hi"`, cleanQuestion(`He said "hi"`))
	assert.Equal(t, "", cleanQuestion(`""`))
	assert.Equal(t, `"`, cleanQuestion(`"`))
}


type purposeSpy struct {
	record func(ctx context.Context)
}

func (p *purposeSpy) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	p.record(ctx)
	return &llm.Response{Content: []byte(`"A question?"`)}, nil
}

func (p *purposeSpy) ModelID() string { return "spy" }
