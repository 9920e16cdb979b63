package console

import (
	"errors"
	"sync"

	"github.com/jsamuelsen/quotation-service/internal/domain"
)

// Session errors.
var (
	// ErrSessionOpen is returned when opening a session while another is open.
	ErrSessionOpen = errors.New("a quotation is already being edited")

	// ErrNoSession is returned when submitting without an open session.
	ErrNoSession = errors.New("no quotation is being edited")
)

// Mode is the state of the add/edit modal.
type Mode int

// Session modes.
const (
	ModeClosed Mode = iota
	ModeAdding
	ModeEditing
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeClosed:
		return "closed"
	case ModeAdding:
		return "adding"
	case ModeEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// SessionView is a point-in-time copy of the session.
type SessionView struct {
	Mode      Mode
	EditingID int64
	Form      Form
}

// Open reports whether the modal is shown.
func (v SessionView) Open() bool {
	return v.Mode != ModeClosed
}

// Editing reports whether an existing record is being changed.
func (v SessionView) Editing() bool {
	return v.Mode == ModeEditing
}

// Session is the add/edit state machine:
//
//	Closed -> Adding -> Closed
//	Closed -> Editing(id) -> Closed
//
// Transitions only happen through OpenAdd, OpenEdit, Cancel and Close.
type Session struct {
	mu        sync.Mutex
	mode      Mode
	editingID int64
	form      Form
}

// NewSession returns a closed session.
func NewSession() *Session {
	return &Session{}
}

// OpenAdd enters Adding with an empty form.
func (s *Session) OpenAdd() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != ModeClosed {
		return ErrSessionOpen
	}

	s.mode = ModeAdding
	s.editingID = 0
	s.form = EmptyForm()

	return nil
}

// OpenEdit enters Editing for rec with the form pre-populated from it.
func (s *Session) OpenEdit(rec domain.QuotationRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != ModeClosed {
		return ErrSessionOpen
	}

	s.mode = ModeEditing
	s.editingID = rec.ID
	s.form = FormFromRecord(rec)

	return nil
}

// Update keeps the session open with the form as last submitted.
func (s *Session) Update(form Form) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == ModeClosed {
		return ErrNoSession
	}

	s.form = form

	return nil
}

// Cancel closes the session without saving. Cancelling a closed session
// is a no-op.
func (s *Session) Cancel() {
	s.Close()
}

// Close returns to Closed and discards the form.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode = ModeClosed
	s.editingID = 0
	s.form = Form{}
}

// CloseIfEditing closes the session when it is editing id.
func (s *Session) CloseIfEditing(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == ModeEditing && s.editingID == id {
		s.mode = ModeClosed
		s.editingID = 0
		s.form = Form{}
	}
}

// View returns a copy of the current state.
func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SessionView{Mode: s.mode, EditingID: s.editingID, Form: s.form}
}
