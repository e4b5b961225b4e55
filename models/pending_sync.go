package models

// PendingSync marks a local row whose change has not reached the remote yet.
// The zero value means the row is in sync.
type PendingSync string

const (
	// PendingSyncNone means the row matches the remote state.
	PendingSyncNone PendingSync = ""
	// PendingSyncAdd marks a post created while offline.
	PendingSyncAdd PendingSync = "ADD"
	// PendingSyncUpdate marks a synced post edited while offline.
	PendingSyncUpdate PendingSync = "UPDATE"
	// PendingSyncDelete marks a synced post deleted while offline.
	PendingSyncDelete PendingSync = "DELETE"
)

// IsPending reports whether p carries an unconfirmed mutation.
func (p PendingSync) IsPending() bool {
	return p != PendingSyncNone
}

// ParsePendingSync converts a stored marker back to a PendingSync.
// Unknown values are treated as no marker.
func ParsePendingSync(s string) PendingSync {
	switch PendingSync(s) {
	case PendingSyncAdd:
		return PendingSyncAdd
	case PendingSyncUpdate:
		return PendingSyncUpdate
	case PendingSyncDelete:
		return PendingSyncDelete
	default:
		return PendingSyncNone
	}
}
