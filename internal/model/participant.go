package model

import "github.com/uptrace/bun"

// Participant is a student, identified by email.
type Participant struct {
	bun.BaseModel `bun:"table:participant,alias:p"`

	ID    int    `bun:",pk,autoincrement" json:"id"`
	Email string `bun:",notnull,type:varchar" json:"email"`
}
