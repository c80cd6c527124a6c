package progression

import "github.com/DanRulev/finquest.git/internal/models"

type State int

const (
	NotStarted State = iota
	AwaitingAnswer
	AnswerChecked
	Finished
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case AwaitingAnswer:
		return "awaiting_answer"
	case AnswerChecked:
		return "answer_checked"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// IsCorrect is the scoring policy: exact, case-sensitive byte equality with
// no trimming or normalisation.
func IsCorrect(selected, correctAnswer string) bool {
	return selected == correctAnswer
}

// Session is the transient quiz state for one user and one lesson.
// It is not safe for concurrent use.
type Session struct {
	lesson      models.LessonView
	questions   []models.Question
	state       State
	index       int
	lastCorrect bool
	finalizing  bool
}

func NewSession() *Session {
	return &Session{}
}

// Start enters AwaitingAnswer(0) for an unlocked lesson with at least one
// question.
func (s *Session) Start(lesson models.LessonView, questions []models.Question) error {
	if s.state != NotStarted {
		return models.ErrSessionActive
	}
	if lesson.IsLocked {
		return models.ErrLessonLocked
	}
	if len(questions) == 0 {
		return models.ErrNoQuestions
	}

	s.lesson = lesson
	s.questions = questions
	s.index = 0
	s.lastCorrect = false
	s.state = AwaitingAnswer

	return nil
}

// Submit checks the selected option against the current question.
func (s *Session) Submit(option string) (bool, error) {
	switch s.state {
	case AwaitingAnswer:
	case AnswerChecked:
		return s.lastCorrect, models.ErrAnswerPending
	default:
		return false, models.ErrNoActiveQuestion
	}

	if option == "" {
		return false, models.ErrNoOptionSelected
	}

	s.lastCorrect = IsCorrect(option, s.questions[s.index].CorrectAnswer)
	s.state = AnswerChecked

	return s.lastCorrect, nil
}

// Next acknowledges a checked answer. A wrong answer returns to the same
// question; a right one advances or finishes the quiz.
func (s *Session) Next() (State, error) {
	if s.state != AnswerChecked {
		return s.state, models.ErrNothingToAcknowledge
	}

	switch {
	case !s.lastCorrect:
		s.state = AwaitingAnswer
	case s.index+1 < len(s.questions):
		s.index++
		s.state = AwaitingAnswer
	default:
		s.state = Finished
	}

	return s.state, nil
}

// Close discards the session. It is refused once finalization has begun.
func (s *Session) Close() error {
	if s.finalizing {
		return models.ErrFinalizeInProgress
	}
	s.reset()
	return nil
}

// BeginFinalize marks the finished session as being finalized so the step
// cannot be issued twice.
func (s *Session) BeginFinalize() error {
	if s.finalizing {
		return models.ErrFinalizeInProgress
	}
	if s.state != Finished {
		return models.ErrNotFinished
	}
	s.finalizing = true
	return nil
}

// EndFinalize clears the in-progress flag. A successful finalization closes
// the session; a failed one leaves it Finished for a retry.
func (s *Session) EndFinalize(ok bool) {
	s.finalizing = false
	if ok {
		s.reset()
	}
}

func (s *Session) reset() {
	*s = Session{}
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Index() int {
	return s.index
}

func (s *Session) QuestionCount() int {
	return len(s.questions)
}

func (s *Session) IsLast() bool {
	return len(s.questions) > 0 && s.index == len(s.questions)-1
}

func (s *Session) LastCorrect() bool {
	return s.lastCorrect
}

func (s *Session) Finalizing() bool {
	return s.finalizing
}

func (s *Session) Lesson() models.LessonView {
	return s.lesson
}

// Current returns the question at the current index while a quiz is active.
func (s *Session) Current() (models.Question, bool) {
	if s.state != AwaitingAnswer && s.state != AnswerChecked {
		return models.Question{}, false
	}
	return s.questions[s.index], true
}
