package handler

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"wordbow/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Dynamic callback data prefixes
const (
	prefixPage   = "page_"
	prefixDay    = "day_"
	prefixSnooze = "snooze_"
	prefixRetire = "retire_"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit(). A "message is not modified"
// error only acknowledges the callback and returns nil; any other error is
// returned so the caller can send a new message instead.
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// already edited by another callback
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// editOrSend edits the callback message, falling back to a new message
func (h *Handler) editOrSend(c tele.Context, userID int64, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}
	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleCallback handles callbacks not routed to a button handler
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Debug("Processing callback",
		zap.String("data", data),
		zap.String("id", callback.ID),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	key := callback.Unique
	if key == "" {
		key = data
	}
	switch key {
	case btnAddWord.Unique:
		return h.handleAdd(c)
	case btnViewDays.Unique, btnBackToDays.Unique:
		return h.handleViewDays(c)
	case btnRandomCard.Unique, btnMore.Unique:
		return h.handleRandomCard(c)
	case btnCancel.Unique:
		return h.handleCancel(c)
	case btnBack.Unique, btnMainMenu.Unique:
		return h.handleStart(c)
	}

	switch {
	case strings.HasPrefix(data, prefixPage):
		return h.handlePagination(c, data)
	case strings.HasPrefix(data, prefixDay):
		return h.handleDaySelection(c, data)
	case strings.HasPrefix(data, prefixSnooze):
		return h.handleHide(c, data, prefixSnooze)
	case strings.HasPrefix(data, prefixRetire):
		return h.handleHide(c, data, prefixRetire)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// daysMarkup builds the day list with navigation for page of totalPages
func daysMarkup(days []domain.Day, page, totalPages int) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(days)+2)

	for _, day := range days {
		btnText := fmt.Sprintf("%s (%d)", day.DisplayString(), day.WordCount)
		rows = append(rows, markup.Row(markup.Data(btnText, prefixDay+day.DateString())))
	}

	if totalPages > 1 {
		navRow := tele.Row{}
		if page > 1 {
			navRow = append(navRow, markup.Data("⬅️", fmt.Sprintf("%s%d", prefixPage, page-1)))
		}
		if page < totalPages {
			navRow = append(navRow, markup.Data("➡️", fmt.Sprintf("%s%d", prefixPage, page+1)))
		}
		if len(navRow) > 0 {
			rows = append(rows, navRow)
		}
	}

	rows = append(rows, markup.Row(btnBack))
	markup.Inline(rows...)
	return markup
}

// handleViewDays shows the first page of days with words
func (h *Handler) handleViewDays(c tele.Context) error {
	return h.showDays(c, 1)
}

// handlePagination handles page navigation
func (h *Handler) handlePagination(c tele.Context, data string) error {
	page, err := strconv.Atoi(strings.TrimPrefix(data, prefixPage))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Неверная страница"})
	}
	return h.showDays(c, page)
}

func (h *Handler) showDays(c tele.Context, page int) error {
	userID := c.Sender().ID

	days, totalPages, err := h.wordService.GetDaysList(userID, page)
	if err != nil {
		h.logger.Error("Failed to get days list", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка при загрузке данных"})
	}

	if len(days) == 0 {
		return c.Respond(&tele.CallbackResponse{
			Text:      textNoWords,
			ShowAlert: true,
		})
	}

	return h.editOrSend(c, userID, "📅 Вот твои дни:\n\n", daysMarkup(days, max(page, 1), totalPages))
}

// handleDaySelection shows words for selected day
func (h *Handler) handleDaySelection(c tele.Context, data string) error {
	userID := c.Sender().ID
	dateStr := strings.TrimPrefix(data, prefixDay)

	words, err := h.wordService.GetWordsByDate(userID, dateStr)
	if err != nil {
		h.logger.Error("Failed to get words by date", zap.Error(err), zap.String("date", dateStr))
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка при загрузке"})
	}

	if len(words) == 0 {
		return c.Respond(&tele.CallbackResponse{Text: "Нет слов за этот день"})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📝 Слова за выбранный день (%d):\n\n", len(words))
	for i, w := range words {
		fmt.Fprintf(&b, "%d. %s%s\n\n", i+1, formatEntry(w.Word, w.Pronunciation, w.Meaning), statusMark(w))
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnBackToDays, btnMainMenu),
	)

	return h.editOrSend(c, userID, b.String(), markup)
}

// statusMark flags entries that are currently out of the game
func statusMark(w domain.Word) string {
	switch {
	case w.HiddenForever:
		return " 🗑"
	case w.HiddenUntil != nil:
		return " 💤"
	default:
		return ""
	}
}

// handleRandomCard shows a random active entry with snooze and retire buttons
func (h *Handler) handleRandomCard(c tele.Context) error {
	userID := c.Sender().ID

	lock := h.lockUser(userID)
	defer lock.Unlock()

	word, err := h.wordService.GetRandomCard(userID)
	if err != nil {
		h.logger.Error("Failed to get random word", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка при загрузке"})
	}

	if word == nil {
		return c.Respond(&tele.CallbackResponse{
			Text:      textNoWords,
			ShowAlert: true,
		})
	}

	text := "🎲 Случайная карточка:\n\n" + formatEntry(word.Word, word.Pronunciation, word.Meaning)
	return h.editOrSend(c, userID, text, cardMarkup(word.ID))
}

func cardMarkup(wordID int) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("💤 Скрыть на 7 дней", prefixSnooze+strconv.Itoa(wordID)),
			markup.Data("🗑 Убрать из игры", prefixRetire+strconv.Itoa(wordID)),
		),
		markup.Row(btnMore),
		markup.Row(btnBack),
	)
	return markup
}

// handleHide snoozes or retires the entry named in data
func (h *Handler) handleHide(c tele.Context, data, prefix string) error {
	userID := c.Sender().ID

	wordID, err := strconv.Atoi(strings.TrimPrefix(data, prefix))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Неверная карточка"})
	}

	lock := h.lockUser(userID)
	defer lock.Unlock()

	var note string
	if prefix == prefixRetire {
		err = h.wordService.Retire(userID, wordID)
		note = "Слово убрано из игры"
	} else {
		err = h.wordService.Snooze(userID, wordID)
		note = "Слово скрыто на 7 дней"
	}
	if err != nil {
		h.logger.Error("Failed to hide word", zap.Error(err), zap.Int("word_id", wordID), zap.String("action", strings.TrimSuffix(prefix, "_")))
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка при сохранении"})
	}

	h.logger.Info("Word hidden",
		zap.Int64("user_id", userID),
		zap.Int("word_id", wordID),
		zap.String("action", strings.TrimSuffix(prefix, "_")),
	)
	return c.Respond(&tele.CallbackResponse{Text: note})
}

// handleCancel cancels current operation and resets state
func (h *Handler) handleCancel(c tele.Context) error {
	userID := c.Sender().ID
	h.ResetState(userID)
	return h.editOrSend(c, userID, textMainMenu, mainMenuMarkup())
}
