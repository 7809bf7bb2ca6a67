package domain

// DraftState is the lifecycle state of a draft booking.
type DraftState string

const (
	DraftStateDraft     DraftState = "draft"
	DraftStateConfirmed DraftState = "confirmed"
	DraftStateDeleted   DraftState = "deleted"
)

// CanTransition reports whether a draft may move from one state to another.
// Only draft -> confirmed and draft -> deleted exist; both are terminal.
func CanTransition(from, to DraftState) bool {
	if from != DraftStateDraft {
		return false
	}
	return to == DraftStateConfirmed || to == DraftStateDeleted
}

// IsTerminal returns true for states with no outgoing transitions.
func (s DraftState) IsTerminal() bool {
	return s == DraftStateConfirmed || s == DraftStateDeleted
}

// ConfirmedFromDraft builds the confirmed booking a draft converts into.
// The draft itself is left untouched.
func ConfirmedFromDraft(draft *Booking) *Booking {
	draftID := draft.ID
	return &Booking{
		VenueID:          draft.VenueID,
		UserID:           draft.UserID,
		Date:             draft.Date,
		StartTime:        draft.StartTime,
		EndTime:          draft.EndTime,
		SetupMinutes:     draft.SetupMinutes,
		BreakdownMinutes: draft.BreakdownMinutes,
		IsOverride:       draft.IsOverride,
		Status:           StatusConfirmed,
		SourceDraftID:    &draftID,
		Notes:            draft.Notes,
	}
}

// DraftStateOf maps a stored record to its draft lifecycle state.
// A missing record is deleted; any non-draft record has left the draft state.
func DraftStateOf(b *Booking) DraftState {
	switch {
	case b == nil:
		return DraftStateDeleted
	case b.IsDraft():
		return DraftStateDraft
	default:
		return DraftStateConfirmed
	}
}
