package model

import (
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Activity struct {
	bun.BaseModel `bun:"table:activity,alias:a"`

	ID          int         `bun:",pk,autoincrement" json:"id"`
	Name        string      `bun:",notnull,type:varchar" json:"name"`
	Description null.String `bun:"type:varchar" json:"description"`
	Schedule    null.String `bun:"type:varchar" json:"schedule"`

	// MaxParticipants is the capacity of the activity. Null means unlimited.
	MaxParticipants null.Int `bun:"type:integer" json:"max_participants"`
}

// HasCapacityFor reports whether an activity already holding count participants
// can take one more.
func (a *Activity) HasCapacityFor(count int) bool {
	if !a.MaxParticipants.Valid {
		return true
	}
	return int64(count) < a.MaxParticipants.Int64
}
