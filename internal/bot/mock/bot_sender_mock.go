package mock_bot

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

type MockBot struct {
	SentMessages []tgbotapi.Chattable
	Requests     []tgbotapi.Chattable
}

func (m *MockBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.SentMessages = append(m.SentMessages, c)
	return tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 123}}, nil
}

func (m *MockBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	m.Requests = append(m.Requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// LastCallback returns the most recent callback answer, if any.
func (m *MockBot) LastCallback() (tgbotapi.CallbackConfig, bool) {
	for i := len(m.Requests) - 1; i >= 0; i-- {
		if cb, ok := m.Requests[i].(tgbotapi.CallbackConfig); ok {
			return cb, true
		}
	}
	return tgbotapi.CallbackConfig{}, false
}

func ClearSentMessages(bot *MockBot) {
	bot.SentMessages = nil
	bot.Requests = nil
}
