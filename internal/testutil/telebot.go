package testutil

import (
	tele "gopkg.in/telebot.v3"
)

// FakeContext records what a handler sends. Only the methods the bot handlers
// use are implemented; calling anything else panics on the nil embedded Context.
// Field names must not collide with tele.Context methods.
type FakeContext struct {
	tele.Context

	User      *tele.User
	Input     string
	Press     *tele.Callback
	EditError error

	Sent      []string
	Edited    []string
	Out       []string
	Responses []*tele.CallbackResponse
	Markups   []*tele.ReplyMarkup
}

var _ tele.Context = (*FakeContext)(nil)

// NewMessageContext fakes a text message from userID
func NewMessageContext(userID int64, text string) *FakeContext {
	return &FakeContext{User: &tele.User{ID: userID}, Input: text}
}

// NewCallbackContext fakes an inline button press from userID
func NewCallbackContext(userID int64, unique, data string) *FakeContext {
	return &FakeContext{
		User:  &tele.User{ID: userID},
		Press: &tele.Callback{ID: "cb", Unique: unique, Data: data},
	}
}

func (c *FakeContext) Sender() *tele.User {
	return c.User
}

func (c *FakeContext) Text() string {
	return c.Input
}

func (c *FakeContext) Callback() *tele.Callback {
	return c.Press
}

func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	c.Sent = append(c.Sent, toText(what))
	c.Out = append(c.Out, toText(what))
	c.recordMarkup(opts)
	return nil
}

func (c *FakeContext) Edit(what interface{}, opts ...interface{}) error {
	if c.EditError != nil {
		return c.EditError
	}
	c.Edited = append(c.Edited, toText(what))
	c.Out = append(c.Out, toText(what))
	c.recordMarkup(opts)
	return nil
}

func (c *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) == 0 {
		c.Responses = append(c.Responses, &tele.CallbackResponse{})
		return nil
	}
	c.Responses = append(c.Responses, resp...)
	return nil
}

// Last returns the most recent sent or edited text
func (c *FakeContext) Last() string {
	if len(c.Out) == 0 {
		return ""
	}
	return c.Out[len(c.Out)-1]
}

// LastResponse returns the text of the most recent callback answer
func (c *FakeContext) LastResponse() string {
	if len(c.Responses) == 0 {
		return ""
	}
	return c.Responses[len(c.Responses)-1].Text
}

// Buttons lists the unique of every inline button in the last markup
func (c *FakeContext) Buttons() []string {
	if len(c.Markups) == 0 {
		return nil
	}
	var uniques []string
	for _, row := range c.Markups[len(c.Markups)-1].InlineKeyboard {
		for _, btn := range row {
			uniques = append(uniques, btn.Unique)
		}
	}
	return uniques
}

func (c *FakeContext) recordMarkup(opts []interface{}) {
	for _, opt := range opts {
		if m, ok := opt.(*tele.ReplyMarkup); ok {
			c.Markups = append(c.Markups, m)
		}
	}
}

func toText(what interface{}) string {
	if s, ok := what.(string); ok {
		return s
	}
	return ""
}
