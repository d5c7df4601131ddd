package conversation

// Export is the conversation handed to report synthesis.
type Export struct {
	History        []Exchange `json:"conversation_history"`
	Statistics     Stats      `json:"statistics"`
	ScoresTimeline []int      `json:"scores_timeline"`
}

// Export snapshots the history and statistics.
func (s *State) Export() Export {
	return Export{
		History:        s.History(),
		Statistics:     s.Stats(),
		ScoresTimeline: s.Scores(),
	}
}
