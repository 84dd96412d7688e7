package session

// EventKind identifies the type of a session event.
type EventKind string

const (
	EventScoreAdded        EventKind = "score_added"
	EventLevelAdvanced     EventKind = "level_advanced"
	EventLifeLost          EventKind = "life_lost"
	EventInputAdded        EventKind = "input_added"
	EventSequenceCompleted EventKind = "sequence_completed"
	EventGameStarted       EventKind = "game_started"
	EventGameEnded         EventKind = "game_ended"
)

// Event is one record in the session's append-only audit trail. Each
// concrete type carries only the fields relevant to its action.
type Event interface {
	Kind() EventKind
}

// ScoreAdded records points credited to the session.
type ScoreAdded struct {
	Points     int
	Reason     string
	TotalScore int
}

func (ScoreAdded) Kind() EventKind { return EventScoreAdded }

// LevelAdvanced records a level-up and any completion bonus granted.
type LevelAdvanced struct {
	Level       int
	BonusPoints int
}

func (LevelAdvanced) Kind() EventKind { return EventLevelAdvanced }

// LifeLost records a life deduction and the lives left afterwards.
type LifeLost struct {
	Reason         string
	LivesRemaining int
}

func (LifeLost) Kind() EventKind { return EventLifeLost }

// InputAdded records one symbol entered during an input round.
type InputAdded struct {
	Symbol   string
	Position int
}

func (InputAdded) Kind() EventKind { return EventInputAdded }

// SequenceCompleted records a fully correct reproduction of the sequence.
type SequenceCompleted struct {
	SequenceLength int
	Streak         int
	PointsEarned   int
}

func (SequenceCompleted) Kind() EventKind { return EventSequenceCompleted }

// GameStarted marks the beginning of a session run.
type GameStarted struct {
	PlayerName string
}

func (GameStarted) Kind() EventKind { return EventGameStarted }

// GameEnded marks the end of a session run with its final figures.
type GameEnded struct {
	FinalScore int
	FinalLevel int
	DurationMs int64
}

func (GameEnded) Kind() EventKind { return EventGameEnded }
