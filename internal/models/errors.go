package models

import "errors"

var (
	ErrLessonNotFound  = errors.New("lesson not found")
	ErrLessonLocked    = errors.New("lesson is locked")
	ErrNoQuestions     = errors.New("lesson has no questions")
	ErrProfileNotFound = errors.New("profile not found")

	ErrNoOptionSelected     = errors.New("no option selected")
	ErrAnswerPending        = errors.New("answer already checked")
	ErrNoActiveQuestion     = errors.New("no question awaiting an answer")
	ErrNothingToAcknowledge = errors.New("no checked answer to acknowledge")
	ErrSessionActive        = errors.New("quiz session already started")
	ErrNotFinished          = errors.New("quiz is not finished")
	ErrFinalizeInProgress   = errors.New("lesson completion is in progress")
	ErrNoSession            = errors.New("no active quiz session")
)
