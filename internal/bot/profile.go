package bot

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type ProfileT struct {
	bot     BotSender
	service ServiceI
	timeout time.Duration
	log     *zap.Logger
}

func NewProfileTAPI(bot BotSender, service ServiceI, timeout time.Duration, log *zap.Logger) *ProfileT {
	return &ProfileT{
		bot:     bot,
		service: service,
		timeout: timeout,
		log:     log,
	}
}

func (p *ProfileT) ensureProfile(user *tgbotapi.User) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if err := p.service.EnsureProfile(ctx, user.ID, displayName(user)); err != nil {
		p.log.Warn("failed to ensure profile", zap.Int64("user_id", user.ID), zap.Error(err))
	}
}

func (p *ProfileT) showProfile(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	summary, err := p.service.Profile(ctx, userID)
	if err != nil {
		p.log.Warn("failed to get profile", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(p.bot, tgbotapi.NewMessage(chatID, userError(err)), p.log)
		return
	}

	sendMessage(p.bot, tgbotapi.NewMessage(chatID, formatProfile(summary)), p.log)
}

func (p *ProfileT) showLeaderboard(chatID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	snapshot, err := p.service.Leaderboard(ctx)
	if err != nil {
		p.log.Warn("failed to get leaderboard", zap.Error(err))
		sendMessage(p.bot, tgbotapi.NewMessage(chatID, "❌ Failed to load the leaderboard. Please try again"), p.log)
		return
	}

	sendMessage(p.bot, tgbotapi.NewMessage(chatID, formatLeaderboard(snapshot)), p.log)
}

func displayName(user *tgbotapi.User) string {
	if user.UserName != "" {
		return user.UserName
	}
	return user.FirstName
}
