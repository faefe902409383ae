package main

import (
	"time"

	"github.com/google/uuid"

	"github.com/prepmate/interviewd/internal/database"
)

type createSessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
}

type askRequest struct {
	SessionID uuid.UUID `json:"session_id"`
	Query     string    `json:"query"`
}

type askResponse struct {
	Question string `json:"question"`
}

type analyzeRequest struct {
	SessionID uuid.UUID `json:"session_id"`
}

type messageResponse struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"is_user"`
	CreatedAt time.Time `json:"created_at"`
}

type sessionResponse struct {
	ID                 uuid.UUID         `json:"id"`
	JobDescriptionText string            `json:"job_description_text"`
	ResumeText         string            `json:"resume_text"`
	Messages           []messageResponse `json:"messages"`
	CreatedAt          time.Time         `json:"created_at"`
}

type reportResponse struct {
	SessionID           uuid.UUID `json:"session_id"`
	Pace                int32     `json:"pace"`
	ClarityScore        int32     `json:"clarity_score"`
	Sentiment           string    `json:"sentiment"`
	QualitativeFeedback string    `json:"qualitative_feedback"`
	CreatedAt           time.Time `json:"created_at"`
}

type statusResponse struct {
	Message string `json:"message"`
}

func toSessionResponse(s database.Session, messages []database.Message) sessionResponse {
	out := sessionResponse{
		ID:                 s.ID,
		JobDescriptionText: s.JobDescriptionText,
		ResumeText:         s.ResumeText,
		Messages:           make([]messageResponse, 0, len(messages)),
		CreatedAt:          s.CreatedAt,
	}
	for _, m := range messages {
		out.Messages = append(out.Messages, messageResponse{
			ID:        m.ID,
			Text:      m.Text,
			IsUser:    m.IsUser,
			CreatedAt: m.CreatedAt,
		})
	}
	return out
}

func toReportResponse(r database.AnalysisReport) reportResponse {
	return reportResponse{
		SessionID:           r.SessionID,
		Pace:                r.Pace,
		ClarityScore:        r.ClarityScore,
		Sentiment:           r.Sentiment,
		QualitativeFeedback: r.QualitativeFeedback,
		CreatedAt:           r.CreatedAt,
	}
}
