package bot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/DanRulev/finquest.git/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonLessons     = "📚 Lessons"
	ButtonProfile     = "👤 Profile"
	ButtonLeaderboard = "🏆 Leaderboard"
	ButtonHelp        = "ℹ️ Help"
)

const (
	callbackLesson    = "lesson_"
	callbackPage      = "page_"
	callbackAnswer    = "answer_"
	callbackQuizBegin = "quiz_begin"
	callbackQuizNext  = "quiz_next"
	callbackFinish    = "quiz_finish"
	callbackClose     = "quiz_close"
	callbackLessons   = "lessons"
	callbackMainMenu  = "main_menu"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "lessons":
		t.handleLessons(message)
	case "profile":
		t.handleProfile(message)
	case "leaderboard":
		t.profile.showLeaderboard(message.Chat.ID)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /start")
		sendMessage(t.bot, msg, t.log)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	if message.From != nil {
		t.profile.ensureProfile(message.From)
	}

	welcomeText := "👋 Welcome to FinQuest!\n\n" +
		"Learn personal finance one short lesson at a time:\n" +
		"• 📚 read a lesson and answer its quiz\n" +
		"• ⭐ earn XP for every lesson you complete\n" +
		"• 🏆 climb the leaderboard\n\n" +
		"Lessons unlock in order. Tap a button below to begin!"

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = generateMenuKeyboard()

	sendMessage(t.bot, msg, t.log)
}

func generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonLessons),
			tgbotapi.NewKeyboardButton(ButtonProfile),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonLeaderboard),
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) showMainMenu(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "🏠 Main menu:")
	msg.ReplyMarkup = generateMenuKeyboard()

	sendMessage(t.bot, msg, t.log)
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Commands:
/start · open the main menu
/lessons · list lessons
/profile · your XP and level
/leaderboard · top learners
/help · this message

🎯 How it works:
• Lessons unlock one after another
• Answer every question correctly to finish a lesson
• A wrong answer lets you try the same question again
• XP is awarded only the first time you finish a lesson
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg, t.log)
}

func (t *TelegramAPI) handleLessons(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}
	t.lessons.showLessons(message.Chat.ID, message.From.ID, 0)
}

func (t *TelegramAPI) handleProfile(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}
	t.profile.showProfile(message.Chat.ID, message.From.ID)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	switch message.Text {
	case ButtonLessons:
		t.handleLessons(message)
	case ButtonProfile:
		t.handleProfile(message)
	case ButtonLeaderboard:
		t.profile.showLeaderboard(message.Chat.ID)
	case ButtonHelp:
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "I didn't get that. Use the buttons below.")
		msg.ReplyMarkup = generateMenuKeyboard()
		sendMessage(t.bot, msg, t.log)
	}
}

// handleCallbackQuery routes the button press and answers the callback. A
// non-empty notice is shown to the user as an alert.
func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	notice := t.routeCallback(query)

	callback := tgbotapi.NewCallback(query.ID, notice)
	callback.ShowAlert = notice != ""
	if _, err := t.bot.Request(callback); err != nil {
		t.log.Warn("failed to answer callback", zap.Error(err))
	}
}

func (t *TelegramAPI) routeCallback(query *tgbotapi.CallbackQuery) string {
	if query.From == nil || query.Message == nil || query.Message.Chat == nil {
		t.log.Warn("incomplete callback query", zap.String("id", query.ID))
		return ""
	}

	data := query.Data

	switch {
	case strings.HasPrefix(data, callbackLesson):
		lessonID, err := strconv.ParseInt(strings.TrimPrefix(data, callbackLesson), 10, 64)
		if err != nil {
			break
		}
		return t.lessons.selectLesson(query, lessonID)

	case strings.HasPrefix(data, callbackPage):
		lessonID, page, ok := parsePair(strings.TrimPrefix(data, callbackPage))
		if !ok {
			break
		}
		return t.lessons.showPage(query, lessonID, page)

	case strings.HasPrefix(data, callbackAnswer):
		index, option, ok := parsePair(strings.TrimPrefix(data, callbackAnswer))
		if !ok {
			break
		}
		return t.quiz.handleAnswer(query, int(index), int(option))

	case data == callbackQuizBegin:
		return t.quiz.begin(query)

	case data == callbackQuizNext:
		return t.quiz.handleNext(query)

	case data == callbackFinish:
		return t.quiz.finalize(query)

	case data == callbackClose:
		return t.quiz.handleClose(query)

	case data == callbackLessons:
		t.lessons.showLessons(query.Message.Chat.ID, query.From.ID, 0)
		return ""

	case data == callbackMainMenu:
		t.showMainMenu(query.Message.Chat.ID)
		return ""
	}

	t.log.Warn("unknown callback data", zap.String("data", data), zap.Int64("user_id", query.From.ID))
	return ""
}

func parsePair(s string) (int64, int64, bool) {
	left, right, found := strings.Cut(s, "_")
	if !found {
		return 0, 0, false
	}
	a, err := strconv.ParseInt(left, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	b, err := strconv.ParseInt(right, 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return a, b, true
}

// userError maps service errors to the text shown in the chat. Store failures
// never end the conversation; the user is asked to try again.
func userError(err error) string {
	switch {
	case errors.Is(err, models.ErrLessonLocked):
		return "🔒 Complete the previous lesson to unlock this one"
	case errors.Is(err, models.ErrLessonNotFound):
		return "❌ This lesson no longer exists"
	case errors.Is(err, models.ErrNoQuestions):
		return "❌ This lesson has no questions yet. Try another one"
	case errors.Is(err, models.ErrProfileNotFound):
		return "❌ Profile not found. Send /start first"
	case errors.Is(err, context.DeadlineExceeded):
		return "⏳ The server took too long to respond. Please try again"
	default:
		return "❌ Something went wrong. Please try again later"
	}
}
