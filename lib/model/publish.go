package model

import (
	"time"
)

type PublishState string

const (
	NotInitialized PublishState = "not-initialized"
	Initialized    PublishState = "initialized"
	Staged         PublishState = "staged"
	Committed      PublishState = "committed"
	Pushed         PublishState = "pushed"
)

// Publish records one publish attempt. Failed attempts are kept too, with
// the last state they reached.
type Publish struct {
	ID UUID

	State      PublishState
	CommitHash string
	Message    string

	Families  int
	TotalSize int64

	StartedAt  time.Time
	FinishedAt time.Time
}

func NewPublish() *Publish {
	return &Publish{
		ID:        NewUUID("p"),
		State:     NotInitialized,
		StartedAt: time.Now(),
	}
}
