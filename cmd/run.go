package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/abhisek/intervue/internal/evaluation"
	"github.com/abhisek/intervue/internal/llm"
	"github.com/abhisek/intervue/internal/report"
	"github.com/abhisek/intervue/internal/session"
	"github.com/abhisek/intervue/internal/ui/components"
	"github.com/abhisek/intervue/internal/ui/theme"
)

const (
	cmdSkip = "/skip"
	cmdEnd  = "/end"

	progressWidth = 40
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Conduct an interview in the terminal",
	Long: "Starts an interview for the configured job profile. Type an answer and press " +
		"enter to submit it, " + cmdSkip + " to skip a question and " + cmdEnd +
		" to finish early. The report is printed when the interview ends.",
	RunE: runRun,
}

// runFlagKeys maps config keys to the run flags that override them.
var runFlagKeys = map[string]string{
	"profile.title":          "title",
	"profile.level":          "level",
	"profile.type":           "type",
	"profile.duration":       "duration",
	"profile.description":    "description",
	"profile.candidate-name": "candidate",
	"max-questions":          "max-questions",
}

func init() {
	f := runCmd.Flags()
	f.String("title", "", "Position title")
	f.String("level", "", "Experience level (entry, mid, senior)")
	f.String("type", "", "Interview type (technical, behavioral, mixed)")
	f.String("duration", "", "Interview length (quick, standard, comprehensive)")
	f.String("description", "", "Job description")
	f.String("description-file", "", "Read the job description from a file")
	f.String("candidate", "", "Candidate name")
	f.Int("max-questions", 0, "Override the number of questions")
	f.String("report-json", "", "Write the report as JSON to this file")
	f.String("report-text", "", "Write the report as text to this file")

	for key, flag := range runFlagKeys {
		cobra.CheckErr(viper.BindPFlag(key, f.Lookup(flag)))
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("description-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read job description: %w", err)
		}
		cfg.Profile.Description = string(data)
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := openStoreAt(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	llmCfg, ok, err := cfg.LLM.ProviderConfig()
	if err != nil {
		return fmt.Errorf("configure LLM provider: %w", err)
	}
	if !ok {
		log.Warn("no LLM provider configured, using built-in fallback questions and scores")
	}

	provider, err := llm.NewProvider(ctx, llmCfg, st.EventRepo(), log)
	if err != nil {
		return fmt.Errorf("create LLM provider: %w", err)
	}
	log.Debug("using LLM provider", zap.String("provider", llmCfg.Provider), zap.String("model", provider.ModelID()))

	sess := session.New(
		session.NewDeps(provider, st.EventRepo(), log),
		session.WithMaxQuestions(cfg.MaxQuestions),
	)
	if err := sess.Start(ctx, cfg.Profile); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	rep, err := runInterview(ctx, sess, cmd.InOrStdin(), out)
	if err != nil {
		return err
	}

	jsonPath, _ := cmd.Flags().GetString("report-json")
	textPath, _ := cmd.Flags().GetString("report-text")
	return writeReports(rep, jsonPath, textPath, out)
}

// runInterview reads answers from in until the session completes, the
// candidate types /end or in is exhausted, and returns the final report.
func runInterview(ctx context.Context, sess *session.Session, in io.Reader, out io.Writer) (*report.Report, error) {
	p := sess.Profile()
	title := p.Title
	if p.CandidateName != "" {
		title = fmt.Sprintf("%s with %s", p.Title, p.CandidateName)
	}
	lipgloss.Fprintln(out, theme.Title.Render("Interview: "+title))
	lipgloss.Fprintln(out, theme.Subtitle.Render(fmt.Sprintf("%s · %s · %s",
		p.Level.Label(), p.Type.Label(), p.Duration.Label())))
	lipgloss.Fprintln(out, theme.Hint.Render(fmt.Sprintf("Type %s to skip a question or %s to finish.", cmdSkip, cmdEnd)))

	question := sess.FirstQuestion()
	number := 1
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sess.State() == session.StateInProgress {
		printQuestion(out, sess, number, question)

		answer, ok := readAnswer(scanner)
		if !ok || answer == cmdEnd {
			if err := sess.End(ctx); err != nil {
				return nil, err
			}
			break
		}

		var (
			turn session.Turn
			err  error
		)
		if answer == cmdSkip {
			turn, err = sess.Skip(ctx)
		} else {
			turn, err = sess.ProcessResponse(ctx, answer)
		}
		if err != nil {
			return nil, err
		}

		printEvaluation(out, turn.Evaluation)
		question, number = turn.Question, turn.QuestionNumber
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read answer: %w", err)
	}

	stats := sess.Stats()
	lipgloss.Fprintln(out)
	lipgloss.Fprintln(out, theme.Subtitle.Render(fmt.Sprintf("Interview complete: %d questions in %s",
		stats.TotalExchanges, stats.Duration)))

	rep, err := sess.Report(ctx)
	if err != nil {
		return nil, err
	}
	printReport(out, rep)
	return rep, nil
}

// readAnswer returns the next non-empty line. ok is false at end of input.
func readAnswer(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line, true
		}
	}
	return "", false
}

func printQuestion(out io.Writer, sess *session.Session, number int, question string) {
	sum := sess.Summary()
	bar := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", number, sum.MaxQuestions),
		sum.ProgressPercentage, true, progressWidth,
	)

	lipgloss.Fprintln(out)
	lipgloss.Fprintln(out, bar.View())
	lipgloss.Fprintln(out, theme.Interviewer.Render("Interviewer: ")+theme.Body.Render(question))
	lipgloss.Fprint(out, theme.Candidate.Render("You: "))
}

func printEvaluation(out io.Writer, ev evaluation.Evaluation) {
	score := float64(ev.Score)
	lipgloss.Fprintln(out, theme.Score(score).Render(fmt.Sprintf("Score: %d/10", ev.Score))+"  "+
		theme.Feedback.Render(ev.Feedback))
}

func printReport(out io.Writer, rep *report.Report) {
	lipgloss.Fprintln(out)
	lipgloss.Fprintln(out, theme.Card.Render(report.ExportText(rep)))
	rec := lipgloss.NewStyle().Bold(true).Foreground(theme.RecommendationColor(string(rep.Recommendation)))
	lipgloss.Fprintln(out, rec.Render("Recommendation: "+string(rep.Recommendation)))
	if rep.ErrorNote != "" {
		lipgloss.Fprintln(out, theme.Warning.Render(rep.ErrorNote))
	}
}

func writeReports(rep *report.Report, jsonPath, textPath string, out io.Writer) error {
	if jsonPath != "" {
		data, err := report.ExportJSON(rep)
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		lipgloss.Fprintln(out, theme.Hint.Render("Report written to "+jsonPath))
	}
	if textPath != "" {
		if err := os.WriteFile(textPath, []byte(report.ExportText(rep)), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		lipgloss.Fprintln(out, theme.Hint.Render("Report written to "+textPath))
	}
	return nil
}
