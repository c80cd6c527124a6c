package bot

import (
	"errors"
	"strings"
	"testing"
	"time"

	mock_bot "github.com/DanRulev/finquest.git/internal/bot/mock"
	"github.com/DanRulev/finquest.git/internal/models"
	"github.com/DanRulev/finquest.git/internal/progression"
	"github.com/DanRulev/finquest.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testUserID = 456

func newTelegramMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI)) (*TelegramAPI, *mock_bot.MockBot, *cache.Cache) {
	mockService := mock_bot.NewMockServiceI(ctrl)
	mockBot := &mock_bot.MockBot{}
	c := cache.NewCache()

	if setupMock != nil {
		setupMock(mockService)
	}

	return newTelegramAPI(mockBot, mockService, c, time.Second, zap.NewNop()), mockBot, c
}

func callback(data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:   "cb",
		From: &tgbotapi.User{ID: testUserID},
		Message: &tgbotapi.Message{
			MessageID: 100,
			Chat:      &tgbotapi.Chat{ID: 123},
		},
		Data: data,
	}
}

func textMessage(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 123},
		From: &tgbotapi.User{ID: testUserID, UserName: "alice"},
		Text: text,
	}
}

func budgeting() models.LessonView {
	return models.LessonView{
		Lesson: models.Lesson{ID: 2, Title: "Budgeting", XP: 20, Order: 1, QuestionCount: 2},
		Number: 1,
	}
}

func budgetingQuestions() []models.Question {
	return []models.Question{
		{ID: 1, LessonID: 2, Title: "What is a budget?", Options: models.Options{"A plan", "A loan"}, CorrectAnswer: "A plan",
			Explanation: sqlString("A budget plans income and spending")},
		{ID: 2, LessonID: 2, Title: "Needs come first?", Options: models.Options{"Needs", "Taxes"}, CorrectAnswer: "Needs"},
	}
}

func startedSession(t *testing.T, view models.LessonView, questions []models.Question) *progression.Session {
	t.Helper()

	s := progression.NewSession()
	require.NoError(t, s.Start(view, questions))
	return s
}

func lastSent(t *testing.T, mb *mock_bot.MockBot) tgbotapi.Chattable {
	t.Helper()

	require.NotEmpty(t, mb.SentMessages)
	return mb.SentMessages[len(mb.SentMessages)-1]
}

func lastText(t *testing.T, mb *mock_bot.MockBot) string {
	t.Helper()

	switch m := lastSent(t, mb).(type) {
	case tgbotapi.MessageConfig:
		return m.Text
	case tgbotapi.EditMessageTextConfig:
		return m.Text
	}
	t.Fatalf("unexpected message type %T", lastSent(t, mb))
	return ""
}

func editButtons(t *testing.T, mb *mock_bot.MockBot) []string {
	t.Helper()

	edit, ok := lastSent(t, mb).(tgbotapi.EditMessageTextConfig)
	require.True(t, ok)
	require.NotNil(t, edit.ReplyMarkup)

	var labels []string
	for _, row := range edit.ReplyMarkup.InlineKeyboard {
		for _, b := range row {
			labels = append(labels, b.Text)
		}
	}
	return labels
}

func TestTelegramAPI_TwoQuestionLesson(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	view := budgeting()
	tg, mb, c := newTelegramMock(t, ctrl, func(ms *mock_bot.MockServiceI) {
		ms.EXPECT().StartLesson(gomock.Any(), int64(testUserID), int64(2)).
			Return(startedSession(t, view, budgetingQuestions()), nil)
		ms.EXPECT().LessonPages(gomock.Any(), int64(2)).Return(nil, nil)
		ms.EXPECT().Finalize(gomock.Any(), int64(testUserID), view.Lesson).
			Return(models.CompletionResult{LessonID: 2, Awarded: true, XPAwarded: 20, TotalXP: 30}, nil)
	})

	tg.handleCallbackQuery(callback("lesson_2"))
	assert.True(t, strings.HasPrefix(lastText(t, mb), "❓ Question 1/2"))

	// wrong answer keeps the question
	tg.handleCallbackQuery(callback("answer_0_1"))
	assert.Contains(t, lastText(t, mb), "❌ Incorrect")
	assert.Contains(t, lastText(t, mb), "A budget plans income and spending")
	assert.Equal(t, []string{"🔁 Try again"}, editButtons(t, mb))

	tg.handleCallbackQuery(callback("quiz_next"))
	assert.True(t, strings.HasPrefix(lastText(t, mb), "❓ Question 1/2"))

	tg.handleCallbackQuery(callback("answer_0_0"))
	assert.Contains(t, lastText(t, mb), "✅ Correct!")
	assert.Equal(t, []string{"Next ➡️"}, editButtons(t, mb))

	tg.handleCallbackQuery(callback("quiz_next"))
	assert.True(t, strings.HasPrefix(lastText(t, mb), "❓ Question 2/2"))

	// a button from the first question no longer applies
	sent := len(mb.SentMessages)
	tg.handleCallbackQuery(callback("answer_0_0"))
	cb, ok := mb.LastCallback()
	require.True(t, ok)
	assert.Equal(t, "This question is no longer active", cb.Text)
	assert.True(t, cb.ShowAlert)
	assert.Len(t, mb.SentMessages, sent)

	tg.handleCallbackQuery(callback("answer_1_0"))
	assert.Equal(t, []string{"🏁 Finish"}, editButtons(t, mb))

	// second tap before acknowledging is ignored
	tg.handleCallbackQuery(callback("answer_1_1"))
	cb, _ = mb.LastCallback()
	assert.Contains(t, cb.Text, "already answered")

	tg.handleCallbackQuery(callback("quiz_next"))
	assert.True(t, strings.HasPrefix(lastText(t, mb), "🎉 Level completed! +20 XP earned!"))
	assert.Contains(t, lastText(t, mb), "Total XP: 30")

	_, ok = c.GetSession(testUserID)
	assert.False(t, ok)
}

func TestTelegramAPI_FinalizeRetry(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	view := budgeting()
	questions := budgetingQuestions()[:1]

	tg, mb, c := newTelegramMock(t, ctrl, func(ms *mock_bot.MockServiceI) {
		gomock.InOrder(
			ms.EXPECT().Finalize(gomock.Any(), int64(testUserID), view.Lesson).
				Return(models.CompletionResult{}, errors.New("connection reset")),
			ms.EXPECT().Finalize(gomock.Any(), int64(testUserID), view.Lesson).
				Return(models.CompletionResult{LessonID: 2, TotalXP: 30}, nil),
		)
	})

	session := startedSession(t, view, questions)
	c.SetSession(testUserID, session)

	tg.handleCallbackQuery(callback("answer_0_0"))
	tg.handleCallbackQuery(callback("quiz_next"))

	assert.Contains(t, lastText(t, mb), "Tap Retry")
	got, ok := c.GetSession(testUserID)
	require.True(t, ok)
	assert.Equal(t, progression.Finished, got.State())
	assert.False(t, got.Finalizing())

	tg.handleCallbackQuery(callback("quiz_finish"))
	assert.True(t, strings.HasPrefix(lastText(t, mb), "You already completed this lesson (no additional XP earned)"))

	_, ok = c.GetSession(testUserID)
	assert.False(t, ok)
}

func TestTelegramAPI_SelectLesson(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		f          func(*testing.T, *mock_bot.MockServiceI)
		wantNotice string
		wantText   string
		wantStored bool
	}{
		{
			name: "locked lesson shows an alert",
			f: func(t *testing.T, ms *mock_bot.MockServiceI) {
				ms.EXPECT().StartLesson(gomock.Any(), int64(testUserID), int64(2)).Return(nil, models.ErrLessonLocked)
			},
			wantNotice: "🔒 Complete the previous lesson to unlock this one",
		},
		{
			name: "lesson without questions",
			f: func(t *testing.T, ms *mock_bot.MockServiceI) {
				ms.EXPECT().StartLesson(gomock.Any(), int64(testUserID), int64(2)).Return(nil, models.ErrNoQuestions)
			},
			wantText: "❌ This lesson has no questions yet. Try another one",
		},
		{
			name: "store failure",
			f: func(t *testing.T, ms *mock_bot.MockServiceI) {
				ms.EXPECT().StartLesson(gomock.Any(), int64(testUserID), int64(2)).Return(nil, errors.New("db down"))
			},
			wantText: "❌ Something went wrong. Please try again later",
		},
		{
			name: "pages are shown before the quiz",
			f: func(t *testing.T, ms *mock_bot.MockServiceI) {
				ms.EXPECT().StartLesson(gomock.Any(), int64(testUserID), int64(2)).
					Return(startedSession(t, budgeting(), budgetingQuestions()), nil)
				ms.EXPECT().LessonPages(gomock.Any(), int64(2)).Return([]models.LessonPage{
					{ID: 1, LessonID: 2, Order: 1, Title: "Why budget", Content: models.Options{"Know where money goes"}},
				}, nil)
			},
			wantText:   "📖 Budgeting (1/1)\n\nWhy budget\n\nKnow where money goes",
			wantStored: true,
		},
		{
			name: "page failure falls back to the quiz",
			f: func(t *testing.T, ms *mock_bot.MockServiceI) {
				ms.EXPECT().StartLesson(gomock.Any(), int64(testUserID), int64(2)).
					Return(startedSession(t, budgeting(), budgetingQuestions()), nil)
				ms.EXPECT().LessonPages(gomock.Any(), int64(2)).Return(nil, errors.New("db down"))
			},
			wantText:   "❓ Question 1/2\n\nWhat is a budget?",
			wantStored: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tg, mb, c := newTelegramMock(t, ctrl, func(ms *mock_bot.MockServiceI) { tt.f(t, ms) })

			tg.handleCallbackQuery(callback("lesson_2"))

			cb, ok := mb.LastCallback()
			require.True(t, ok)
			assert.Equal(t, tt.wantNotice, cb.Text)
			assert.Equal(t, tt.wantNotice != "", cb.ShowAlert)

			if tt.wantText == "" {
				assert.Empty(t, mb.SentMessages)
			} else {
				assert.Equal(t, tt.wantText, lastText(t, mb))
			}

			_, stored := c.GetSession(testUserID)
			assert.Equal(t, tt.wantStored, stored)
		})
	}
}

func TestTelegramAPI_PagesThenQuiz(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pages := []models.LessonPage{
		{ID: 1, LessonID: 2, Order: 1, Title: "One", Content: models.Options{"first"}},
		{ID: 2, LessonID: 2, Order: 2, Title: "Two", Content: models.Options{"second", "more"}},
	}
	tg, mb, c := newTelegramMock(t, ctrl, func(ms *mock_bot.MockServiceI) {
		ms.EXPECT().LessonPages(gomock.Any(), int64(2)).Return(pages, nil).Times(2)
	})
	c.SetSession(testUserID, startedSession(t, budgeting(), budgetingQuestions()))

	tg.handleCallbackQuery(callback("page_2_2"))
	assert.Equal(t, "📖 Budgeting (2/2)\n\nTwo\n\nsecond\n\nmore", lastText(t, mb))
	assert.Equal(t, []string{"⬅️ Back", "🧠 Start quiz", "✖️ Close"}, editButtons(t, mb))

	tg.handleCallbackQuery(callback("page_2_3"))
	cb, _ := mb.LastCallback()
	assert.Equal(t, "This page does not exist", cb.Text)

	tg.handleCallbackQuery(callback("quiz_begin"))
	assert.True(t, strings.HasPrefix(lastText(t, mb), "❓ Question 1/2"))
}

func TestTelegramAPI_Close(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tg, mb, c := newTelegramMock(t, ctrl, nil)

	session := startedSession(t, budgeting(), budgetingQuestions())
	c.SetSession(testUserID, session)

	tg.handleCallbackQuery(callback("quiz_close"))
	assert.Equal(t, "Lesson closed. Your progress in it was not saved.", lastText(t, mb))
	_, ok := c.GetSession(testUserID)
	assert.False(t, ok)

	// no session: answers are refused
	tg.handleCallbackQuery(callback("answer_0_0"))
	cb, _ := mb.LastCallback()
	assert.Equal(t, noActiveQuiz, cb.Text)
}

func TestTelegramAPI_CloseDuringFinalize(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tg, mb, c := newTelegramMock(t, ctrl, nil)

	session := startedSession(t, budgeting(), budgetingQuestions()[:1])
	_, err := session.Submit("A plan")
	require.NoError(t, err)
	_, err = session.Next()
	require.NoError(t, err)
	require.NoError(t, session.BeginFinalize())
	c.SetSession(testUserID, session)

	tg.handleCallbackQuery(callback("quiz_close"))
	cb, _ := mb.LastCallback()
	assert.Contains(t, cb.Text, "Saving your result")

	tg.handleCallbackQuery(callback("quiz_finish"))
	cb, _ = mb.LastCallback()
	assert.Contains(t, cb.Text, "Saving your result")

	_, ok := c.GetSession(testUserID)
	assert.True(t, ok)
}

func TestTelegramAPI_HandleMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		f        func(*mock_bot.MockServiceI)
		wantText string
	}{
		{
			name: "lessons button",
			text: ButtonLessons,
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Lessons(gomock.Any(), int64(testUserID)).Return([]models.LessonView{
					budgeting(),
					{Lesson: models.Lesson{ID: 3, Title: "Investing", Difficulty: models.DifficultyHard, XP: 30, Order: 2, QuestionCount: 1}, Number: 2, IsLocked: true},
				}, nil)
			},
			wantText: "📚 Lessons",
		},
		{
			name: "lessons failure",
			text: ButtonLessons,
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Lessons(gomock.Any(), int64(testUserID)).Return(nil, errors.New("db down"))
			},
			wantText: "❌ Failed to load lessons. Please try again",
		},
		{
			name: "profile button",
			text: ButtonProfile,
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Profile(gomock.Any(), int64(testUserID)).Return(models.ProfileSummary{
					Profile:          models.Profile{ID: testUserID, Username: "alice", XP: 60},
					CompletedLessons: 2,
					TotalLessons:     3,
				}, nil)
			},
			wantText: "👤 alice",
		},
		{
			name: "profile missing",
			text: ButtonProfile,
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Profile(gomock.Any(), int64(testUserID)).Return(models.ProfileSummary{}, models.ErrProfileNotFound)
			},
			wantText: "❌ Profile not found. Send /start first",
		},
		{
			name: "leaderboard button",
			text: ButtonLeaderboard,
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Leaderboard(gomock.Any()).Return(models.LeaderboardSnapshot{
					Entries: []models.LeaderboardEntry{{Rank: 1, UserID: 4, Username: "dave", XP: 70}},
				}, nil)
			},
			wantText: "🏆 Leaderboard\n🥇 dave: 70 XP",
		},
		{
			name:     "unknown text",
			text:     "hello",
			wantText: "I didn't get that. Use the buttons below.",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tg, mb, _ := newTelegramMock(t, ctrl, tt.f)

			tg.handleMessage(textMessage(tt.text))

			require.Len(t, mb.SentMessages, 1)
			assert.True(t, strings.HasPrefix(lastText(t, mb), tt.wantText), lastText(t, mb))
		})
	}
}

func TestTelegramAPI_StartCommand(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tg, mb, _ := newTelegramMock(t, ctrl, func(ms *mock_bot.MockServiceI) {
		ms.EXPECT().EnsureProfile(gomock.Any(), int64(testUserID), "alice").Return(errors.New("db down"))
	})

	message := textMessage("/start")
	message.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 6}}
	tg.handleUpdate(tgbotapi.Update{Message: message})

	// a failed upsert still greets the user
	msg, ok := lastSent(t, mb).(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(msg.Text, "👋 Welcome to FinQuest!"))
	assert.IsType(t, tgbotapi.ReplyKeyboardMarkup{}, msg.ReplyMarkup)
}

func TestParsePair(t *testing.T) {
	t.Parallel()

	a, b, ok := parsePair("12_3")
	assert.True(t, ok)
	assert.Equal(t, int64(12), a)
	assert.Equal(t, int64(3), b)

	for _, bad := range []string{"", "12", "x_1", "1_y", "1_"} {
		_, _, ok := parsePair(bad)
		assert.False(t, ok, bad)
	}
}
