package bot

import (
	"context"
	"time"

	"github.com/DanRulev/finquest.git/internal/models"
	"github.com/DanRulev/finquest.git/internal/progression"
	"github.com/DanRulev/finquest.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type LessonSI interface {
	Lessons(ctx context.Context, userID int64) ([]models.LessonView, error)
	StartLesson(ctx context.Context, userID, lessonID int64) (*progression.Session, error)
	LessonPages(ctx context.Context, lessonID int64) ([]models.LessonPage, error)
	Finalize(ctx context.Context, userID int64, lesson models.Lesson) (models.CompletionResult, error)
}

type ProfileSI interface {
	EnsureProfile(ctx context.Context, userID int64, username string) error
	Profile(ctx context.Context, userID int64) (models.ProfileSummary, error)
}

type LeaderboardSI interface {
	Leaderboard(ctx context.Context) (models.LeaderboardSnapshot, error)
}

type ServiceI interface {
	LessonSI
	ProfileSI
	LeaderboardSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type TelegramAPI struct {
	api     *tgbotapi.BotAPI
	bot     BotSender
	lessons *LessonT
	quiz    *QuizT
	profile *ProfileT
	log     *zap.Logger
}

func NewTelegramAPI(botToken, env string, service ServiceI, cache *cache.Cache, timeout time.Duration, log *zap.Logger) (*TelegramAPI, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	api.Debug = env == "development"

	t := newTelegramAPI(api, service, cache, timeout, log)
	t.api = api

	log.Info("authorized on telegram", zap.String("account", api.Self.UserName))

	return t, nil
}

func newTelegramAPI(bot BotSender, service ServiceI, cache *cache.Cache, timeout time.Duration, log *zap.Logger) *TelegramAPI {
	quiz := NewQuizTAPI(bot, cache, service, timeout, log)

	return &TelegramAPI{
		bot:     bot,
		lessons: NewLessonTAPI(bot, cache, service, quiz, timeout, log),
		quiz:    quiz,
		profile: NewProfileTAPI(bot, service, timeout, log),
		log:     log,
	}
}

// Start processes updates one at a time until ctx is cancelled.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			t.handleUpdate(update)
		}
	}
}

func (t *TelegramAPI) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(update.Message)
		} else {
			t.handleMessage(update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(update.CallbackQuery)
	}
}

func sendMessage(bot BotSender, msg tgbotapi.Chattable, log *zap.Logger) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Warn("failed to send message", zap.Error(err))
		return
	}
	if sentMsg.Chat != nil {
		log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID))
	}
}
