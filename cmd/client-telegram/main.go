package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"ai-email-sender/pkg/form"
	"ai-email-sender/pkg/httpMailer"
)

const helpText = `Send me what the email should say and I will draft it.
/body <text> replaces the draft
/send <recipient> <subject> sends the draft`

// Send any text message to the bot after the bot has been started

func main() {
	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		fmt.Println("BOT_TOKEN must be set")

		os.Exit(1)
		return
	}

	serverURL := os.Getenv("SERVER_URL")
	if serverURL == "" {
		serverURL = "http://127.0.0.1:8080"
	}

	usernameLimits := make([]string, 0)
	if usernameLimitsEnv := os.Getenv("USERNAME_LIMITS"); usernameLimitsEnv != "" {
		for _, u := range strings.Split(usernameLimitsEnv, ",") {
			usernameLimits = append(usernameLimits, strings.TrimSpace(u))
		}
	}

	l := New(httpMailer.New(serverURL), usernameLimits)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	b, err := bot.New(token, bot.WithDefaultHandler(l.Handler))
	if err != nil {
		fmt.Println(err)

		os.Exit(1)
		return
	}

	b.Start(ctx)
}

// chatPage is the per chat set of form elements. Element updates are queued as replies.
type chatPage struct {
	mu      sync.Mutex
	pending []string

	prompt, body, recipient, subject *form.Field
	section                          *form.Section
	ctrl                             *form.Controller
}

func newChatPage(api *httpMailer.Client) *chatPage {
	p := &chatPage{
		prompt:    form.NewField(""),
		body:      form.NewField(""),
		recipient: form.NewField(""),
		subject:   form.NewField(""),
		section:   &form.Section{},
	}
	p.body.OnChange = func(v string) {
		p.queue("Draft:\n\n" + v)
	}
	status := &form.Label{OnChange: p.queue}

	p.ctrl = form.New(api, form.Elements{
		Prompt:       p.prompt,
		EmailSection: p.section,
		EmailBody:    p.body,
		Recipient:    p.recipient,
		Subject:      p.subject,
		Status:       status,
		Alerter:      form.AlertFunc(p.queue),
	})

	return p
}

func (p *chatPage) queue(msg string) {
	if msg == "" {
		return
	}
	p.pending = append(p.pending, msg)
}

func (p *chatPage) flush() []string {
	res := p.pending
	p.pending = nil

	return res
}

// Logic .
type Logic struct {
	api        *httpMailer.Client
	userLimits []string

	mu    sync.Mutex
	chats map[int64]*chatPage
}

// New .
func New(api *httpMailer.Client, userLimits []string) *Logic {
	return &Logic{
		api:        api,
		userLimits: userLimits,
		chats:      make(map[int64]*chatPage),
	}
}

// Handler .
func (l *Logic) Handler(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	replies := l.handleText(ctx, update.Message.Chat.ID, update.Message.From.Username, update.Message.Text)
	for _, r := range replies {
		_, err := b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: update.Message.Chat.ID,
			Text:   r,
		})
		if err != nil {
			fmt.Println("error sending response back to Telegram:", err)

			return
		}
	}
}

func (l *Logic) allowed(username string) bool {
	if len(l.userLimits) == 0 {
		return true
	}
	for _, u := range l.userLimits {
		if username == u {
			return true
		}
	}

	return false
}

func (l *Logic) page(chatID int64) *chatPage {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.chats[chatID]
	if !ok {
		p = newChatPage(l.api)
		l.chats[chatID] = p
	}

	return p
}

// handleText runs one chat message through the chat's page and returns the replies.
func (l *Logic) handleText(ctx context.Context, chatID int64, username, text string) []string {
	if !l.allowed(username) {
		return []string{"🙅You are not allowed to use this bot."}
	}

	text = strings.TrimSpace(text)
	if text == "" || text == "/start" || text == "/help" {
		return []string{helpText}
	}

	// one message at a time per chat
	p := l.page(chatID)
	p.mu.Lock()
	defer p.mu.Unlock()

	cmd := strings.Fields(text)[0]
	args := strings.TrimSpace(strings.TrimPrefix(text, cmd))

	switch cmd {
	case "/body":
		if !p.section.Visible() {
			return []string{"Generate a draft first."}
		}
		p.body.SetValue(args)

	case "/send":
		if !p.section.Visible() {
			return []string{"Generate a draft first."}
		}
		fields := strings.Fields(args)
		if len(fields) < 2 {
			return []string{"Usage: /send <recipient> <subject>"}
		}
		p.recipient.SetValue(fields[0])
		p.subject.SetValue(strings.Join(fields[1:], " "))
		_ = p.ctrl.SendEmail(ctx)

	default:
		p.prompt.SetValue(text)
		_ = p.ctrl.HandleGenerateSubmit(ctx, nil)
	}

	return p.flush()
}
