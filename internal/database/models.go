package database

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID
	Email     string
	CreatedAt time.Time
}

type Session struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	JobDescriptionText string
	ResumeText         string
	VectorStore        json.RawMessage
	CreatedAt          time.Time
}

type Message struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Text      string
	IsUser    bool
	Seq       int64
	CreatedAt time.Time
}

type AnalysisReport struct {
	ID                  uuid.UUID
	SessionID           uuid.UUID
	Pace                int32
	ClarityScore        int32
	Sentiment           string
	QualitativeFeedback string
	CreatedAt           time.Time
}
