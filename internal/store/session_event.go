package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

var sessionEventColumns = []string{
	"id", "sequence", "timestamp", "session_id", "action", "position",
	"candidate_name", "questions_asked", "max_questions", "average_score",
	"recommendation", "duration_secs",
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(tableSessionEvents).
		Columns(sessionEventColumns[1:]...).
		Values(
			seqNum,
			time.Now().UnixMilli(),
			data.SessionID,
			data.Action,
			data.Position,
			data.CandidateName,
			data.QuestionsAsked,
			data.MaxQuestions,
			data.AverageScore,
			data.Recommendation,
			data.DurationSecs,
		).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEvent, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(sessionEventColumns...).
		From(entsql.Table(tableSessionEvents)).
		OrderBy(entsql.Desc("sequence"))

	if opts.SessionID != "" {
		sel.Where(entsql.EQ("session_id", opts.SessionID))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var events []SessionEvent
	for rows.Next() {
		var (
			e       SessionEvent
			tsMilli int64
		)
		err := rows.Scan(
			&e.ID, &e.Sequence, &tsMilli, &e.SessionID, &e.Action, &e.Position,
			&e.CandidateName, &e.QuestionsAsked, &e.MaxQuestions, &e.AverageScore,
			&e.Recommendation, &e.DurationSecs,
		)
		if err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		e.Timestamp = time.UnixMilli(tsMilli)
		events = append(events, e)
	}
	return events, rows.Err()
}
