package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"cafe-telegram/beverage"
	"cafe-telegram/config"
	"cafe-telegram/models"
	"cafe-telegram/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	api   *tgbotapi.BotAPI
	cfg   *config.Config
	admin int64

	// Message the current draft is rendered in, per user, so condiment taps
	// edit one message instead of flooding the chat.
	draftMsg   map[int64]int
	draftMsgMu sync.RWMutex
}

func New(cfg *config.Config) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:      api,
		cfg:      cfg,
		admin:    cfg.Telegram.AdminID,
		draftMsg: make(map[int64]int),
	}, nil
}

func (b *Bot) setBotCommands() error {
	cfg := tgbotapi.SetMyCommandsConfig{
		Commands: []tgbotapi.BotCommand{
			{Command: "start", Description: "Empezar"},
			{Command: "menu", Description: "Armar una bebida"},
			{Command: "pedidos", Description: "Mis pedidos"},
		},
	}
	_, err := b.api.Request(cfg)
	return err
}

func (b *Bot) Start() {
	if err := b.setBotCommands(); err != nil {
		log.Printf("set commands: %v", err)
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.CallbackQuery != nil {
			b.handleCallback(update.CallbackQuery)
			continue
		}
		if update.Message == nil {
			continue
		}
		msg := update.Message
		userID := msg.From.ID
		text := strings.TrimSpace(msg.Text)

		switch {
		case text == "/start":
			b.handleStart(msg.Chat.ID, userID, msg.From.UserName)
		case text == "/menu":
			b.sendBaseMenu(msg.Chat.ID, userID)
		case text == "/pedidos":
			b.handleOrders(msg.Chat.ID, userID)
		case strings.HasPrefix(text, "/stats"):
			b.handleStats(msg.Chat.ID, userID, text)
		}
	}
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send error: %v", err)
	}
}

func (b *Bot) sendWithInline(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	sent, err := b.api.Send(msg)
	if err != nil {
		log.Printf("send error: %v", err)
		return 0, err
	}
	return sent.MessageID, nil
}

func (b *Bot) setDraftMsg(userID int64, messageID int) {
	b.draftMsgMu.Lock()
	b.draftMsg[userID] = messageID
	b.draftMsgMu.Unlock()
}

func (b *Bot) getDraftMsg(userID int64) (int, bool) {
	b.draftMsgMu.RLock()
	id, ok := b.draftMsg[userID]
	b.draftMsgMu.RUnlock()
	return id, ok
}

func (b *Bot) clearDraftMsg(userID int64) {
	b.draftMsgMu.Lock()
	delete(b.draftMsg, userID)
	b.draftMsgMu.Unlock()
}

func (b *Bot) handleStart(chatID int64, userID int64, username string) {
	if err := services.TouchCustomer(context.Background(), userID, username); err != nil {
		log.Printf("touch customer %d: %v", userID, err)
	}
	b.send(chatID, "¡Bienvenido! Arma tu café con /menu y síguelo con /pedidos.")
	b.sendBaseMenu(chatID, userID)
}

// sendBaseMenu starts a fresh composition: any previous draft is dropped.
func (b *Bot) sendBaseMenu(chatID int64, userID int64) {
	ctx := context.Background()
	if err := services.DeleteDraft(ctx, userID); err != nil {
		log.Printf("delete draft %d: %v", userID, err)
	}
	b.clearDraftMsg(userID)

	items, err := services.ListMenuByCategory(ctx, models.CategoryBase)
	if err != nil {
		log.Printf("list base menu: %v", err)
		b.send(chatID, "El menú no está disponible ahora, inténtalo de nuevo.")
		return
	}
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, it := range items {
		label := fmt.Sprintf("%s %s", it.Name, services.FormatPrice(it.Price))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "base:"+it.Kind),
		))
	}
	if len(rows) == 0 {
		b.send(chatID, "El menú está vacío.")
		return
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err := b.sendWithInline(chatID, "Elige tu bebida:", kb); err != nil {
		return
	}
}

func (b *Bot) condimentKeyboard() tgbotapi.InlineKeyboardMarkup {
	ctx := context.Background()
	items, err := services.ListMenuByCategory(ctx, models.CategoryCondiment)
	if err != nil {
		log.Printf("list condiment menu: %v", err)
	}
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, it := range items {
		label := fmt.Sprintf("+ %s (+%s)", it.Name, services.FormatPrice(it.Price))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "add:"+it.Kind),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Confirmar pedido", "done"),
		tgbotapi.NewInlineKeyboardButtonData("Cancelar", "cancel"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// draftSummary composes the stored draft and renders the running total.
func draftSummary(d *services.Draft) string {
	bev, err := beverage.Compose(d.BaseKind, d.Condiments)
	if err != nil {
		log.Printf("compose draft: %v", err)
		return "Tu bebida"
	}
	return fmt.Sprintf("Tu bebida: %s\nTotal: %s", bev.Description(), services.FormatPrice(bev.Price()))
}

func (b *Bot) showDraft(chatID int64, userID int64, d *services.Draft) {
	text := draftSummary(d)
	kb := b.condimentKeyboard()
	if msgID, ok := b.getDraftMsg(userID); ok {
		edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
		edit.ReplyMarkup = &kb
		_, err := b.api.Send(edit)
		if err == nil || strings.Contains(err.Error(), "not modified") {
			return
		}
		log.Printf("edit draft message: %v", err)
	}
	if msgID, err := b.sendWithInline(chatID, text, kb); err == nil {
		b.setDraftMsg(userID, msgID)
	}
}

func (b *Bot) handleCallback(cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil {
		return
	}
	ctx := context.Background()
	chatID := cq.Message.Chat.ID
	userID := cq.From.ID
	data := cq.Data

	answer := func(text string) {
		if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, text)); err != nil {
			log.Printf("answer callback: %v", err)
		}
	}

	switch {
	case strings.HasPrefix(data, "base:"):
		kind := strings.TrimPrefix(data, "base:")
		d := &services.Draft{BaseKind: kind}
		if err := services.SaveDraft(ctx, userID, d); err != nil {
			log.Printf("save draft %d: %v", userID, err)
			answer("No se pudo empezar el pedido.")
			return
		}
		b.setDraftMsg(userID, cq.Message.MessageID)
		b.showDraft(chatID, userID, d)
		answer("")

	case strings.HasPrefix(data, "add:"):
		kind := strings.TrimPrefix(data, "add:")
		d, err := services.AddCondimentToDraft(ctx, userID, kind)
		if err != nil {
			log.Printf("add condiment %s for %d: %v", kind, userID, err)
			answer("Primero elige una bebida con /menu.")
			return
		}
		b.showDraft(chatID, userID, d)
		answer("")

	case data == "done":
		b.finishDraft(ctx, cq, chatID, userID, answer)

	case data == "cancel":
		if err := services.DeleteDraft(ctx, userID); err != nil {
			log.Printf("delete draft %d: %v", userID, err)
		}
		b.clearDraftMsg(userID)
		edit := tgbotapi.NewEditMessageText(chatID, cq.Message.MessageID, "Pedido cancelado.")
		if _, err := b.api.Send(edit); err != nil {
			log.Printf("edit cancel message: %v", err)
		}
		answer("Cancelado")

	case strings.HasPrefix(data, "st:"):
		b.handleStatusCallback(ctx, cq, data, answer)
	}
}

func (b *Bot) finishDraft(ctx context.Context, cq *tgbotapi.CallbackQuery, chatID, userID int64, answer func(string)) {
	d, err := services.GetDraft(ctx, userID)
	if err != nil || d == nil {
		answer("No hay pedido en curso, usa /menu.")
		return
	}
	o, err := services.CreateOrder(ctx, models.CreateOrderInput{
		UserID:     userID,
		ChatID:     strconv.FormatInt(chatID, 10),
		BaseKind:   d.BaseKind,
		Condiments: d.Condiments,
	})
	if err != nil {
		log.Printf("create order for %d: %v", userID, err)
		answer("No se pudo crear el pedido.")
		return
	}
	if err := services.DeleteDraft(ctx, userID); err != nil {
		log.Printf("delete draft %d: %v", userID, err)
	}
	b.clearDraftMsg(userID)

	edit := tgbotapi.NewEditMessageText(chatID, cq.Message.MessageID, services.BuildOrderCard(o))
	if _, err := b.api.Send(edit); err != nil {
		log.Printf("edit receipt message: %v", err)
		b.send(chatID, services.BuildOrderCard(o))
	}
	answer("¡Pedido recibido!")
	b.notifyAdmin(o)
}

// notifyAdmin sends the new order to the counter with the advance-status button.
func (b *Bot) notifyAdmin(o *models.Order) {
	if b.admin == 0 {
		return
	}
	kb, ok := b.statusKeyboard(o)
	if !ok {
		b.send(b.admin, services.BuildOrderCard(o))
		return
	}
	if _, err := b.sendWithInline(b.admin, services.BuildOrderCard(o), kb); err != nil {
		log.Printf("notify admin about order %d: %v", o.ID, err)
	}
}

func nextStatus(status string) (string, bool) {
	switch status {
	case services.OrderStatusNew:
		return services.OrderStatusPreparing, true
	case services.OrderStatusPreparing:
		return services.OrderStatusReady, true
	case services.OrderStatusReady:
		return services.OrderStatusDelivered, true
	}
	return "", false
}

func (b *Bot) statusKeyboard(o *models.Order) (tgbotapi.InlineKeyboardMarkup, bool) {
	next, ok := nextStatus(o.Status)
	if !ok {
		return tgbotapi.InlineKeyboardMarkup{}, false
	}
	label := "→ " + services.StatusLabel(next)
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("st:%d:%s", o.ID, next)),
		),
	)
	return kb, true
}

func (b *Bot) handleStatusCallback(ctx context.Context, cq *tgbotapi.CallbackQuery, data string, answer func(string)) {
	if cq.From.ID != b.admin {
		answer("Solo el mostrador puede cambiar el estado.")
		return
	}
	parts := strings.Split(data, ":")
	if len(parts) != 3 {
		answer("")
		return
	}
	orderID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		answer("")
		return
	}
	to := parts[2]

	o, err := services.GetOrder(ctx, orderID)
	if err != nil {
		log.Printf("get order %d: %v", orderID, err)
		answer("Pedido no encontrado.")
		return
	}
	if err := services.UpdateOrderStatus(ctx, orderID, o.Status, to); err != nil {
		log.Printf("advance order %d to %s: %v", orderID, to, err)
		answer("El pedido ya cambió de estado.")
		return
	}
	o.Status = to

	// Refresh the admin card in place
	edit := tgbotapi.NewEditMessageText(cq.Message.Chat.ID, cq.Message.MessageID, services.BuildOrderCard(o))
	if kb, ok := b.statusKeyboard(o); ok {
		edit.ReplyMarkup = &kb
	}
	if _, err := b.api.Send(edit); err != nil && !strings.Contains(err.Error(), "not modified") {
		log.Printf("edit admin card for order %d: %v", orderID, err)
	}
	answer(services.StatusLabel(to))

	// Tell the customer
	if customerChatID, parseErr := strconv.ParseInt(o.ChatID, 10, 64); parseErr == nil && customerChatID != 0 {
		b.send(customerChatID, services.BuildOrderCard(o))
	}
}

func (b *Bot) handleOrders(chatID int64, userID int64) {
	orders, err := services.ListOrdersByUser(context.Background(), userID, 5)
	if err != nil {
		log.Printf("list orders for %d: %v", userID, err)
		b.send(chatID, "No se pudieron cargar tus pedidos.")
		return
	}
	if len(orders) == 0 {
		b.send(chatID, "Todavía no tienes pedidos. Usa /menu para armar uno.")
		return
	}
	var lines []string
	for _, o := range orders {
		lines = append(lines, services.BuildOrderCard(&o))
	}
	b.send(chatID, strings.Join(lines, "\n\n"))
}

func (b *Bot) handleStats(chatID int64, userID int64, text string) {
	if userID != b.admin {
		return
	}
	// /stats [YYYY-MM-DD], defaults to today
	date := time.Now().Format("2006-01-02")
	if fields := strings.Fields(text); len(fields) > 1 {
		date = fields[1]
	}
	s, err := services.GetDailyStats(context.Background(), date)
	if err != nil {
		log.Printf("stats for %s: %v", date, err)
		b.send(chatID, "No se pudieron calcular las estadísticas.")
		return
	}
	b.send(chatID, fmt.Sprintf(
		"Pedidos: %d\nIngresos: %s\nCondimentos servidos: %d",
		s.OrdersCount, services.FormatPrice(s.Revenue), s.CondimentCount,
	))
}
