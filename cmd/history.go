package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/intervue/internal/conversation"
	"github.com/abhisek/intervue/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past interview sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		sessionID, _ := cmd.Flags().GetString("session")

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QuerySessionEvents(cmd.Context(), store.QueryOpts{
			Limit:     limit,
			SessionID: sessionID,
		})
		if err != nil {
			return fmt.Errorf("query session events: %w", err)
		}

		printSessionEvents(cmd.OutOrStdout(), events)
		return nil
	},
}

func printSessionEvents(w io.Writer, events []store.SessionEvent) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No interview sessions recorded yet.")
		return
	}

	fmt.Fprintf(w, "%-19s  %-8s  %-8s  %-24s  %-16s  %-9s  %-5s  %-8s  %s\n",
		"Timestamp", "Session", "Action", "Position", "Candidate", "Questions", "Avg", "Duration", "Recommendation")
	fmt.Fprintln(w, strings.Repeat("─", 120))

	for _, e := range events {
		avg := "-"
		if e.QuestionsAsked > 0 {
			avg = fmt.Sprintf("%.1f", e.AverageScore)
		}
		dur := "-"
		if e.Action != store.ActionStart {
			dur = conversation.FormatDuration(time.Duration(e.DurationSecs) * time.Second)
		}
		rec := e.Recommendation
		if rec == "" {
			rec = "-"
		}
		fmt.Fprintf(w, "%-19s  %-8s  %-8s  %-24s  %-16s  %-9s  %-5s  %-8s  %s\n",
			e.Timestamp.Local().Format(timeLayout),
			truncate(e.SessionID, 8),
			e.Action,
			truncate(e.Position, 24),
			truncate(e.CandidateName, 16),
			fmt.Sprintf("%d/%d", e.QuestionsAsked, e.MaxQuestions),
			avg,
			dur,
			rec,
		)
	}
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	historyCmd.Flags().StringP("session", "s", "", "Show events for one session ID")
}
