package model

import "github.com/uptrace/bun"

// ActivityParticipant records that a participant is signed up for an activity.
type ActivityParticipant struct {
	bun.BaseModel `bun:"table:activity_participant,alias:ap"`

	ActivityID    int `bun:",pk" json:"activityId"`
	ParticipantID int `bun:",pk" json:"participantId"`
}

// ActivityParticipantEmail is a link row joined with its participant's email.
type ActivityParticipantEmail struct {
	ActivityID    int    `bun:"activity_id"`
	ParticipantID int    `bun:"participant_id"`
	Email         string `bun:"email"`
}
