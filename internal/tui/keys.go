package tui

import "github.com/charmbracelet/bubbles/key"

type calendarKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Pick      key.Binding
	Clock     key.Binding
	Done      key.Binding
	Cancel    key.Binding
}

func newCalendarKeyMap() calendarKeyMap {
	return calendarKeyMap{
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		PrevMonth: key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next month")),
		Pick:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "pick day")),
		Clock:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "time")),
		Done:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "done")),
		Cancel:    key.NewBinding(key.WithKeys("esc", "q", "ctrl+c", "ctrl+g"), key.WithHelp("esc", "cancel")),
	}
}

func (k calendarKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.PrevMonth, k.NextMonth, k.Clock, k.Done, k.Cancel}
}

func (k calendarKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PrevMonth, k.NextMonth, k.Pick},
		{k.Clock, k.Done, k.Cancel},
	}
}

type clockKeyMap struct {
	Toggle  key.Binding
	Dec     key.Binding
	Inc     key.Binding
	BigDec  key.Binding
	BigInc  key.Binding
	Confirm key.Binding
	Done    key.Binding
	Cancel  key.Binding
}

func newClockKeyMap() clockKeyMap {
	return clockKeyMap{
		Toggle:  key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "hours/minutes")),
		Dec:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "back")),
		Inc:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "forward")),
		BigDec:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "-5 min")),
		BigInc:  key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "+5 min")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ok")),
		Done:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "done")),
		Cancel:  key.NewBinding(key.WithKeys("esc", "ctrl+g"), key.WithHelp("esc", "back")),
	}
}

func (k clockKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Dec, k.Inc, k.Confirm, k.Cancel}
}

func (k clockKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Dec, k.Inc, k.BigDec, k.BigInc},
		{k.Confirm, k.Done, k.Cancel},
	}
}
