package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/HoursLedger/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const timeLayout = "02/01/2006 15:04"

type TelegramNotifier struct {
	bot         *tgbotapi.BotAPI
	adminChatID *int64
	loc         *time.Location
	logger      logger.Logger
}

// NewTelegramNotifier returns a notifier that only logs when token is empty.
// adminChatID receives request alerts and the digest; zero disables them.
func NewTelegramNotifier(token string, adminChatID int64, loc *time.Location, logger logger.Logger) (*TelegramNotifier, error) {
	n := &TelegramNotifier{loc: loc, logger: logger}
	if adminChatID != 0 {
		n.adminChatID = &adminChatID
	}

	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return n, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	n.bot = bot

	return n, nil
}

func (n *TelegramNotifier) NotifyRequestCreated(ctx context.Context, req domain.PendingRequest) {
	n.send(ctx, n.adminChatID, requestCreatedText(req, n.loc))
}

func (n *TelegramNotifier) NotifyRequestResolved(ctx context.Context, client *domain.Client, req domain.PendingRequest) {
	n.send(ctx, client.TelegramChatID, requestResolvedText(req))
}

func (n *TelegramNotifier) SendDigest(ctx context.Context, overview *domain.Overview) {
	n.send(ctx, n.adminChatID, digestText(overview, n.loc))
}

func requestCreatedText(req domain.PendingRequest, loc *time.Location) string {
	var b strings.Builder
	title := "*New request*"
	if req.Request.Urgency != domain.UrgencyNormal {
		title = "*New urgent request*"
	}
	fmt.Fprintf(&b, "%s\n\n", title)
	fmt.Fprintf(&b, "Client: %s\n", escape(req.ClientName))
	fmt.Fprintf(&b, "Package: %s\n", escape(req.PackageName))
	fmt.Fprintf(&b, "Lesson: %s (%gh)\n", req.LessonStart.In(loc).Format(timeLayout), req.Hours)
	fmt.Fprintf(&b, "Request: %s", escape(req.Request.Status))
	return b.String()
}

func requestResolvedText(req domain.PendingRequest) string {
	title := "*Request approved*"
	if req.Request.Outcome == domain.OutcomeRejected {
		title = "*Request rejected*"
	}

	msg := req.Request.Status
	if req.Request.Notification != nil && req.Request.Notification.Message != "" {
		msg = req.Request.Notification.Message
	}
	return fmt.Sprintf("%s\n\nPackage: %s\n%s", title, escape(req.PackageName), escape(msg))
}

func digestText(o *domain.Overview, loc *time.Location) string {
	var b strings.Builder
	b.WriteString("*Weekly overview*\n")

	b.WriteString("\n*Next 7 days*\n")
	if len(o.Upcoming) == 0 {
		b.WriteString("No lessons scheduled.\n")
	}
	for _, l := range o.Upcoming {
		mark := ""
		if l.Pending {
			mark = " (request open)"
		}
		fmt.Fprintf(&b, "- %s: %s, %s %gh%s\n",
			l.Start.In(loc).Format(timeLayout), escape(l.ClientName), escape(l.PackageName), l.Hours, mark)
	}

	if len(o.LowHours) > 0 {
		b.WriteString("\n*Low hours*\n")
		for _, p := range o.LowHours {
			fmt.Fprintf(&b, "- %s, %s: %gh left\n", escape(p.ClientName), escape(p.PackageName), p.RemainingHours)
		}
	}

	return b.String()
}

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

func escape(s string) string {
	return markdownEscaper.Replace(s)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
