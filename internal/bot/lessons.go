package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DanRulev/finquest.git/internal/models"
	"github.com/DanRulev/finquest.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type LessonT struct {
	bot     BotSender
	cache   *cache.Cache
	service ServiceI
	quiz    *QuizT
	timeout time.Duration
	log     *zap.Logger
}

func NewLessonTAPI(bot BotSender, cache *cache.Cache, service ServiceI, quiz *QuizT, timeout time.Duration, log *zap.Logger) *LessonT {
	return &LessonT{
		bot:     bot,
		cache:   cache,
		service: service,
		quiz:    quiz,
		timeout: timeout,
		log:     log,
	}
}

// showLessons sends the lesson list. With a non-zero messageID the list
// replaces that message instead.
func (l *LessonT) showLessons(chatID, userID int64, messageID int) {
	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	views, err := l.service.Lessons(ctx, userID)
	if err != nil {
		l.log.Warn("failed to get lessons", zap.Int64("user_id", userID), zap.Error(err))
		msg := tgbotapi.NewMessage(chatID, "❌ Failed to load lessons. Please try again")
		retry := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Retry", callbackLessons),
		))
		msg.ReplyMarkup = retry
		sendMessage(l.bot, msg, l.log)
		return
	}

	text := formatLessons(views)
	keyboard := lessonsKeyboard(views)

	if messageID != 0 {
		edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
		if len(views) > 0 {
			edit.ReplyMarkup = &keyboard
		}
		sendMessage(l.bot, edit, l.log)
		return
	}

	msg := tgbotapi.NewMessage(chatID, text)
	if len(views) > 0 {
		msg.ReplyMarkup = keyboard
	}
	sendMessage(l.bot, msg, l.log)
}

func lessonsKeyboard(views []models.LessonView) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(views))
	for _, v := range views {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(lessonLabel(v), fmt.Sprintf("%s%d", callbackLesson, v.ID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// selectLesson starts a quiz session for the lesson and shows its reading
// material first, if there is any.
func (l *LessonT) selectLesson(query *tgbotapi.CallbackQuery, lessonID int64) string {
	userID := query.From.ID
	chatID := query.Message.Chat.ID

	if current, ok := l.cache.GetSession(userID); ok && current.Finalizing() {
		return "⏳ Your previous lesson is still being saved"
	}

	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	session, err := l.service.StartLesson(ctx, userID, lessonID)
	if err != nil {
		if errors.Is(err, models.ErrLessonLocked) {
			return userError(err)
		}
		l.log.Warn("failed to start lesson", zap.Int64("user_id", userID), zap.Int64("lesson_id", lessonID), zap.Error(err))
		sendMessage(l.bot, tgbotapi.NewMessage(chatID, userError(err)), l.log)
		return ""
	}

	l.cache.SetSession(userID, session)

	pages, err := l.service.LessonPages(ctx, lessonID)
	if err != nil {
		l.log.Warn("failed to get lesson pages, starting quiz", zap.Int64("lesson_id", lessonID), zap.Error(err))
	}
	if len(pages) == 0 {
		l.quiz.sendQuestion(chatID, session)
		return ""
	}

	msg := tgbotapi.NewMessage(chatID, formatPage(session.Lesson().Title, pages[0], 1, len(pages)))
	msg.ReplyMarkup = pageKeyboard(lessonID, 1, len(pages))
	sendMessage(l.bot, msg, l.log)

	return ""
}

// showPage replaces the current page message with page n (1-based).
func (l *LessonT) showPage(query *tgbotapi.CallbackQuery, lessonID, n int64) string {
	session, ok := l.cache.GetSession(query.From.ID)
	if !ok || session.Lesson().ID != lessonID {
		return "This lesson is not open anymore. Pick it again from the list"
	}

	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	pages, err := l.service.LessonPages(ctx, lessonID)
	if err != nil {
		l.log.Warn("failed to get lesson pages", zap.Int64("lesson_id", lessonID), zap.Error(err))
		return userError(err)
	}
	if n < 1 || int(n) > len(pages) {
		return "This page does not exist"
	}

	edit := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID,
		formatPage(session.Lesson().Title, pages[n-1], int(n), len(pages)))
	keyboard := pageKeyboard(lessonID, int(n), len(pages))
	edit.ReplyMarkup = &keyboard
	sendMessage(l.bot, edit, l.log)

	return ""
}

func pageKeyboard(lessonID int64, n, total int) tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, 2)
	if n > 1 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", fmt.Sprintf("%s%d_%d", callbackPage, lessonID, n-1)))
	}
	if n < total {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("Next ➡️", fmt.Sprintf("%s%d_%d", callbackPage, lessonID, n+1)))
	} else {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("🧠 Start quiz", callbackQuizBegin))
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		row,
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("✖️ Close", callbackClose)),
	)
}
