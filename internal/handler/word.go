package handler

import (
	"errors"
	"fmt"
	"strings"

	"wordbow/internal/domain"
	"wordbow/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// noPronunciation skips the pronunciation step
const noPronunciation = "-"

const (
	textAskWord          = "Жду слово"
	textAskPronunciation = "Жду произношение, например kæt (или «-», чтобы пропустить)"
	textAskMeaning       = "Жду значение: оно появится в игре как цель"
)

// handleAdd starts the add flow from the menu or /add
func (h *Handler) handleAdd(c tele.Context) error {
	userID := c.Sender().ID
	h.SetState(userID, &domain.StateData{State: domain.StateWaitingWord})
	return h.editOrSend(c, userID, textAskWord, cancelMarkup())
}

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Commands have their own handlers
	if strings.HasPrefix(text, "/") {
		return nil
	}

	authorized, err := h.authService.Admit(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(textError)
	}

	if !authorized {
		return h.handlePassword(c, userID, text)
	}

	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingPronunciation:
		pronunciation := text
		if pronunciation == noPronunciation {
			pronunciation = ""
		}
		h.SetState(userID, &domain.StateData{
			State:                domain.StateWaitingMeaning,
			CurrentWord:          state.CurrentWord,
			CurrentPronunciation: pronunciation,
		})
		return c.Send(textAskMeaning, cancelMarkup())

	case domain.StateWaitingMeaning:
		return h.saveEntry(c, userID, state, text)

	default:
		// Idle or waiting for a word: the text is a new word
		h.SetState(userID, &domain.StateData{
			State:       domain.StateWaitingPronunciation,
			CurrentWord: text,
		})
		return c.Send(textAskPronunciation, cancelMarkup())
	}
}

func (h *Handler) handlePassword(c tele.Context, userID int64, text string) error {
	if !h.authService.CheckPassword(text) {
		h.logger.Info("Wrong password", zap.Int64("user_id", userID))
		return c.Send("Неверный пароль")
	}

	if err := h.authService.AuthorizeUser(userID); err != nil {
		h.logger.Error("Failed to authorize user", zap.Error(err))
		return c.Send(textError)
	}

	h.logger.Info("User authorized", zap.Int64("user_id", userID))
	h.ResetState(userID)
	return c.Send("✅ Доступ разрешён!\n\n"+textMainMenu, mainMenuMarkup())
}

func (h *Handler) saveEntry(c tele.Context, userID int64, state *domain.StateData, meaning string) error {
	word := state.CurrentWord
	pronunciation := state.CurrentPronunciation

	err := h.wordService.SaveEntry(userID, word, pronunciation, meaning)
	switch {
	case errors.Is(err, service.ErrEmptyEntry):
		return c.Send("Значение не может быть пустым. "+textAskMeaning, cancelMarkup())
	case errors.Is(err, service.ErrEntryTooLong):
		h.SetState(userID, &domain.StateData{State: domain.StateWaitingWord})
		return c.Send(fmt.Sprintf(
			"Слишком длинно: слово до %d символов, значение до %d. Начнём заново. %s",
			service.MaxWordLength, service.MaxMeaningLength, textAskWord,
		), cancelMarkup())
	case err != nil:
		h.logger.Error("Failed to save entry",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send("Не удалось сохранить слово. Попробуйте ещё раз.")
	}

	h.logger.Info("Entry saved",
		zap.Int64("user_id", userID),
		zap.String("word", word),
		zap.String("pronunciation", pronunciation),
		zap.String("meaning", meaning),
	)

	h.SetState(userID, &domain.StateData{State: domain.StateWaitingWord})
	return c.Send(fmt.Sprintf("✅ Сохранено: %s\n\nМожешь отправить следующее слово или вернуться в /start", formatEntry(word, pronunciation, meaning)))
}

// formatEntry renders an entry the way the game shows it
func formatEntry(word, pronunciation, meaning string) string {
	if pronunciation != "" {
		return fmt.Sprintf("%s (%s) — %s", word, pronunciation, meaning)
	}
	return fmt.Sprintf("%s — %s", word, meaning)
}
