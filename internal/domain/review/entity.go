package review

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnknownSet = errors.New("unknown review set")
	ErrNotFound   = errors.New("review entry not found")
)

// Set is one of the status sets an applicant can be placed into.
type Set string

const (
	Shortlisted Set = "shortlisted"
	Rejected    Set = "rejected"
	Appointed   Set = "appointed"
)

func (s Set) Valid() bool {
	switch s {
	case Shortlisted, Rejected, Appointed:
		return true
	default:
		return false
	}
}

// Opposite is the set a move into s clears. Appointed has none.
func (s Set) Opposite() (Set, bool) {
	switch s {
	case Shortlisted:
		return Rejected, true
	case Rejected:
		return Shortlisted, true
	default:
		return "", false
	}
}

type Entry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Status string

const (
	StatusNotApplied  Status = "not_applied"
	StatusSubmitted   Status = "submitted"
	StatusRejected    Status = "rejected"
	StatusShortlisted Status = "shortlisted"
	StatusAppointed   Status = "appointed"
)

type Membership struct {
	HasApplied  bool
	Shortlisted bool
	Rejected    bool
	Appointed   bool
}

// DeriveStatus resolves an applicant's overall status. Appointment wins over
// shortlisting, which wins over rejection.
func DeriveStatus(m Membership) Status {
	switch {
	case m.Appointed:
		return StatusAppointed
	case m.Shortlisted:
		return StatusShortlisted
	case m.Rejected:
		return StatusRejected
	case m.HasApplied:
		return StatusSubmitted
	default:
		return StatusNotApplied
	}
}
