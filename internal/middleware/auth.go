package middleware

import (
	"strings"

	"wordbow/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AuthMiddleware keeps unauthorized users out of everything except /start and
// plain text, which the text handler treats as a password attempt
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return nil
			}

			authorized, err := authService.Admit(sender.ID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				if c.Callback() != nil {
					return c.Respond(&tele.CallbackResponse{Text: "Произошла ошибка. Попробуйте позже."})
				}
				return c.Send("Произошла ошибка. Попробуйте позже.")
			}
			if authorized {
				return next(c)
			}

			if c.Callback() != nil {
				logger.Info("Rejected callback from unauthorized user", zap.Int64("user_id", sender.ID))
				return c.Respond(&tele.CallbackResponse{
					Text:      "Сначала введи пароль: /start",
					ShowAlert: true,
				})
			}

			text := strings.TrimSpace(c.Text())
			if text == "/start" || !strings.HasPrefix(text, "/") {
				return next(c)
			}
			return c.Send("Привет! Это редакция словаря для игры. Введи пароль:")
		}
	}
}
