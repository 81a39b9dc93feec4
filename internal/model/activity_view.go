package model

import "gopkg.in/guregu/null.v3"

type ActivityView struct {
	ID              int         `json:"id"`
	Name            string      `json:"name"`
	Description     null.String `json:"description"`
	Schedule        null.String `json:"schedule"`
	MaxParticipants null.Int    `json:"max_participants"`
	Participants    []string    `json:"participants"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
