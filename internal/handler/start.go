package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start and the buttons leading back to the menu
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	authorized, err := h.authService.Admit(userID)
	if err != nil {
		h.logger.Error("Failed to admit user", zap.Error(err))
		return c.Send(textError)
	}

	h.ResetState(userID)
	if !authorized {
		return c.Send(textAskPassword)
	}

	return h.editOrSend(c, userID, textMainMenu, mainMenuMarkup())
}

// handleLogout signs the contributor out of the bot
func (h *Handler) handleLogout(c tele.Context) error {
	userID := c.Sender().ID

	if err := h.authService.Logout(userID); err != nil {
		h.logger.Error("Failed to log out user", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(textError)
	}

	h.ResetState(userID)
	h.logger.Info("User logged out", zap.Int64("user_id", userID))
	return c.Send("👋 Вы вышли. Чтобы вернуться, отправьте /start и пароль.")
}
