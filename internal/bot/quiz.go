package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DanRulev/finquest.git/internal/models"
	"github.com/DanRulev/finquest.git/internal/progression"
	"github.com/DanRulev/finquest.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const noActiveQuiz = "No active quiz. Open 📚 Lessons to start one"

type QuizT struct {
	bot     BotSender
	cache   *cache.Cache
	service LessonSI
	timeout time.Duration
	log     *zap.Logger
}

func NewQuizTAPI(bot BotSender, cache *cache.Cache, service LessonSI, timeout time.Duration, log *zap.Logger) *QuizT {
	return &QuizT{
		bot:     bot,
		cache:   cache,
		service: service,
		timeout: timeout,
		log:     log,
	}
}

func (q *QuizT) sendQuestion(chatID int64, session *progression.Session) {
	question, ok := session.Current()
	if !ok {
		return
	}

	index := session.Index()
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(question.Options)+1)
	for i, option := range question.Options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(option, fmt.Sprintf("%s%d_%d", callbackAnswer, index, i)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✖️ Close", callbackClose),
	))

	msg := tgbotapi.NewMessage(chatID, formatQuestion(session, question))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)

	sendMessage(q.bot, msg, q.log)
}

// begin sends the current question after the lesson pages.
func (q *QuizT) begin(query *tgbotapi.CallbackQuery) string {
	session, ok := q.cache.GetSession(query.From.ID)
	if !ok || session.State() != progression.AwaitingAnswer {
		return noActiveQuiz
	}

	q.sendQuestion(query.Message.Chat.ID, session)
	return ""
}

func (q *QuizT) handleAnswer(query *tgbotapi.CallbackQuery, index, option int) string {
	session, ok := q.cache.GetSession(query.From.ID)
	if !ok {
		return noActiveQuiz
	}

	question, ok := session.Current()
	if !ok || session.Index() != index {
		return "This question is no longer active"
	}
	if option < 0 || option >= len(question.Options) {
		return userError(models.ErrNoOptionSelected)
	}

	correct, err := session.Submit(question.Options[option])
	if err != nil {
		if errors.Is(err, models.ErrAnswerPending) {
			return "You already answered. Tap the button under your answer to continue"
		}
		return noActiveQuiz
	}

	label := "🔁 Try again"
	if correct {
		label = "Next ➡️"
		if session.IsLast() {
			label = "🏁 Finish"
		}
	}

	edit := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID,
		formatFeedback(session, question, question.Options[option], correct))
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(label, callbackQuizNext)),
	)
	edit.ReplyMarkup = &keyboard
	sendMessage(q.bot, edit, q.log)

	return ""
}

func (q *QuizT) handleNext(query *tgbotapi.CallbackQuery) string {
	session, ok := q.cache.GetSession(query.From.ID)
	if !ok {
		return noActiveQuiz
	}

	state, err := session.Next()
	if err != nil {
		if state == progression.Finished {
			return q.finalize(query)
		}
		return "Answer the question first"
	}

	q.clearKeyboard(query.Message)

	if state == progression.Finished {
		return q.finalize(query)
	}

	q.sendQuestion(query.Message.Chat.ID, session)
	return ""
}

// finalize awards the lesson once. On failure the session stays finished so
// the user can retry.
func (q *QuizT) finalize(query *tgbotapi.CallbackQuery) string {
	userID := query.From.ID
	chatID := query.Message.Chat.ID

	session, ok := q.cache.GetSession(userID)
	if !ok {
		return noActiveQuiz
	}

	if err := session.BeginFinalize(); err != nil {
		if errors.Is(err, models.ErrFinalizeInProgress) {
			return "⏳ Saving your result, please wait"
		}
		return "Finish the quiz first"
	}

	lesson := session.Lesson().Lesson

	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	defer cancel()

	res, err := q.service.Finalize(ctx, userID, lesson)
	session.EndFinalize(err == nil)

	if err != nil {
		q.log.Warn("failed to finalize lesson", zap.Int64("user_id", userID), zap.Int64("lesson_id", lesson.ID), zap.Error(err))
		msg := tgbotapi.NewMessage(chatID, userError(err)+"\n\nYour answers are kept. Tap Retry to save the result.")
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🔄 Retry", callbackFinish),
				tgbotapi.NewInlineKeyboardButtonData("✖️ Close", callbackClose),
			),
		)
		sendMessage(q.bot, msg, q.log)
		return ""
	}

	q.cache.DeleteSession(userID)

	msg := tgbotapi.NewMessage(chatID, formatCompletion(lesson, res))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📚 Lessons", callbackLessons),
			tgbotapi.NewInlineKeyboardButtonData("🏠 Menu", callbackMainMenu),
		),
	)
	sendMessage(q.bot, msg, q.log)

	return ""
}

func (q *QuizT) handleClose(query *tgbotapi.CallbackQuery) string {
	userID := query.From.ID

	session, ok := q.cache.GetSession(userID)
	if ok {
		if err := session.Close(); err != nil {
			return "⏳ Saving your result, please wait"
		}
		q.cache.DeleteSession(userID)
	}

	q.clearKeyboard(query.Message)

	msg := tgbotapi.NewMessage(query.Message.Chat.ID, "Lesson closed. Your progress in it was not saved.")
	msg.ReplyMarkup = generateMenuKeyboard()
	sendMessage(q.bot, msg, q.log)

	return ""
}

func (q *QuizT) clearKeyboard(message *tgbotapi.Message) {
	edit := tgbotapi.NewEditMessageReplyMarkup(message.Chat.ID, message.MessageID,
		tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}})
	if _, err := q.bot.Request(edit); err != nil {
		q.log.Debug("failed to clear keyboard", zap.Error(err))
	}
}
