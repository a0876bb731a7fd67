// Package notify copies delivered leads to the owner's Telegram chats.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"bestchungsan/internal/labels"
	"bestchungsan/internal/model"
)

const queueSize = 32

var ErrQueueFull = errors.New("telegram notification queue is full")

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts in a background goroutine so a slow Bot API
// never delays the visitor's response.
type TelegramNotifier struct {
	api     messageSender
	chatIDs []int64
	logger  *zap.Logger

	queue  chan string
	stopCh chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
}

// NewTelegramNotifier logs in with token and starts the sender loop.
// admins is a comma-separated list of chat ids.
func NewTelegramNotifier(token, admins string, logger *zap.Logger) (*TelegramNotifier, error) {
	chatIDs, err := ParseChatIDs(admins)
	if err != nil {
		return nil, err
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("error creating telegram bot: %w", err)
	}
	return newTelegramNotifier(api, chatIDs, logger), nil
}

func newTelegramNotifier(api messageSender, chatIDs []int64, logger *zap.Logger) *TelegramNotifier {
	n := &TelegramNotifier{
		api:     api,
		chatIDs: chatIDs,
		logger:  logger,
		queue:   make(chan string, queueSize),
		stopCh:  make(chan struct{}),
	}
	n.wg.Add(1)
	go n.run()
	return n
}

// ParseChatIDs parses "123, -100456" into chat ids.
func ParseChatIDs(s string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid telegram chat id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, errors.New("no telegram chat ids configured")
	}
	return ids, nil
}

// Notify queues the summary without blocking.
func (n *TelegramNotifier) Notify(_ context.Context, channel string, sub model.Submission) error {
	select {
	case n.queue <- Summary(channel, sub):
		return nil
	default:
		return ErrQueueFull
	}
}

func (n *TelegramNotifier) run() {
	defer n.wg.Done()
	for {
		select {
		case text := <-n.queue:
			n.deliver(text)
		case <-n.stopCh:
			for {
				select {
				case text := <-n.queue:
					n.deliver(text)
				default:
					return
				}
			}
		}
	}
}

func (n *TelegramNotifier) deliver(text string) {
	for _, id := range n.chatIDs {
		if _, err := n.api.Send(tgbotapi.NewMessage(id, text)); err != nil {
			n.logger.Error("error sending telegram notification", zap.Error(err), zap.Int64("chat_id", id))
		}
	}
}

// Stop sends what is already queued and ends the loop.
func (n *TelegramNotifier) Stop() {
	n.once.Do(func() { close(n.stopCh) })
	n.wg.Wait()
}

// Summary is the plain-text message posted for one lead.
func Summary(channel string, s model.Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "새 관리비 추심 의뢰 (%s)\n", channel)
	fmt.Fprintf(&b, "의뢰인: %s (%s)\n", s.ClientName, labels.ClientType(s.ClientType))
	fmt.Fprintf(&b, "연락처: %s\n", s.ClientPhone)
	fmt.Fprintf(&b, "이메일: %s\n", s.ClientEmail)
	fmt.Fprintf(&b, "아파트: %s", s.ApartmentName)
	if s.DebtorUnit != "" {
		fmt.Fprintf(&b, " %s", s.DebtorUnit)
	}
	fmt.Fprintf(&b, "\n미납: %s원 / %s", model.FormatAmount(s.UnpaidAmount), labels.UnpaidDetails(s.UnpaidDetails))
	return b.String()
}
