package telegram

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/quiz-pro-nobis/internal/domain/entities"
)

const (
	msgWelcome = "Welcome to Quiz Pro Nobis!\n\n" +
		"/categories — list quiz categories\n" +
		"/question ID — show a question"
	msgHelp                 = "Available commands:\n\n/categories — list quiz categories\n/question ID — show a question, e.g. /question q1"
	msgUseQuestion          = "Usage: /question ID, e.g. /question q1."
	msgQuestionNotFound     = "Question not found."
	msgQuestionsUnavailable = "Questions are not available right now."
	msgNoCategories         = "There are no questions yet."
	msgInternalError        = "Something went wrong. Please try again later."
	msgUnknownCommand       = "Unknown command. Use /help to see the available commands."
)

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

func renderCategories(categories []*entities.Category) string {
	if len(categories) == 0 {
		return msgNoCategories
	}

	var b strings.Builder
	b.WriteString("<b>Categories</b>\n")
	for _, c := range categories {
		fmt.Fprintf(&b, "\n<b>%s</b> (%s)\nQuestions: %d\nDifficulties: %s\n",
			html.EscapeString(c.Name),
			html.EscapeString(c.PartSection),
			c.QuestionCount,
			html.EscapeString(strings.Join(c.Difficulties.Sorted(), ", ")),
		)
	}
	return b.String()
}

func renderQuestion(q *entities.Question) string {
	text := fmt.Sprintf("<b>%s</b>\nCategory: %s (%s)\nDifficulty: %s",
		html.EscapeString(q.QuestionID),
		html.EscapeString(q.Category),
		html.EscapeString(q.PartSection),
		html.EscapeString(q.Difficulty),
	)

	body, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return text
	}
	return text + "\n\n<pre>" + html.EscapeString(string(body)) + "</pre>"
}
