package chat

import "github.com/samber/lo"

// ParseModeHTML marks reply text as Telegram-style HTML.
const ParseModeHTML = "HTML"

// Button is an inline keyboard button carrying callback data.
type Button struct {
	Text string `json:"text"`
	Data string `json:"data"`
}

// Reply is what the front end renders back to the user.
type Reply struct {
	Text      string     `json:"text"`
	ParseMode string     `json:"parse_mode,omitempty"`
	Keyboard  [][]Button `json:"keyboard,omitempty"`
}

func reply(text string, rows ...[]Button) Reply {
	return Reply{Text: text, ParseMode: ParseModeHTML, Keyboard: rows}
}

func row(buttons ...Button) []Button {
	return buttons
}

// column lays out one button per row.
func column(buttons []Button) [][]Button {
	return lo.Map(buttons, func(b Button, _ int) []Button { return row(b) })
}
