package form

import "sync"

// Event is the submission event of the generate form.
type Event interface {
	PreventDefault()
}

// Input is an editable value holder (prompt, emailBody, recipient, subject).
type Input interface {
	Value() string
	SetValue(v string)
}

// Revealer is a hidden part of the page that can be made visible (emailSection).
type Revealer interface {
	Show()
}

// Text is a display-only node (status).
type Text interface {
	SetText(s string)
}

// Alerter raises a user-visible alert.
type Alerter interface {
	Alert(msg string)
}

// Elements holds the page handles the controller reads and writes.
type Elements struct {
	Prompt       Input
	EmailSection Revealer
	EmailBody    Input
	Recipient    Input
	Subject      Input
	Status       Text
	Alerter      Alerter
}

// Field is an in-memory Input.
type Field struct {
	mu sync.RWMutex
	v  string

	// OnChange is called after SetValue, outside the lock.
	OnChange func(v string)
}

// NewField .
func NewField(v string) *Field {
	return &Field{v: v}
}

// Value .
func (f *Field) Value() string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.v
}

// SetValue .
func (f *Field) SetValue(v string) {
	f.mu.Lock()
	f.v = v
	f.mu.Unlock()

	if f.OnChange != nil {
		f.OnChange(v)
	}
}

// Section is an in-memory Revealer, hidden until Show is called.
type Section struct {
	mu      sync.RWMutex
	visible bool
}

// Show .
func (s *Section) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.visible = true
}

// Visible .
func (s *Section) Visible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.visible
}

// Label is an in-memory Text.
type Label struct {
	mu   sync.RWMutex
	text string

	// OnChange is called after SetText, outside the lock.
	OnChange func(s string)
}

// SetText .
func (l *Label) SetText(s string) {
	l.mu.Lock()
	l.text = s
	l.mu.Unlock()

	if l.OnChange != nil {
		l.OnChange(s)
	}
}

// Text .
func (l *Label) Text() string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.text
}

// AlertFunc adapts a function to Alerter.
type AlertFunc func(msg string)

// Alert .
func (f AlertFunc) Alert(msg string) { f(msg) }

// AlertLog records every alert raised.
type AlertLog struct {
	mu   sync.Mutex
	msgs []string
}

// Alert .
func (a *AlertLog) Alert(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.msgs = append(a.msgs, msg)
}

// Messages returns a copy of the recorded alerts.
func (a *AlertLog) Messages() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return append([]string(nil), a.msgs...)
}

// SubmitEvent is a minimal Event that remembers whether PreventDefault was called.
type SubmitEvent struct {
	prevented bool
}

// PreventDefault .
func (e *SubmitEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented .
func (e *SubmitEvent) DefaultPrevented() bool { return e.prevented }
