package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/prepmate/interviewd/internal/chunker"
	"github.com/prepmate/interviewd/internal/database"
	"github.com/prepmate/interviewd/internal/document"
	"github.com/prepmate/interviewd/internal/gemini"
	"github.com/prepmate/interviewd/internal/interview"
)

const maxResumeUploadBytes = 32 << 20

type apiConfig struct {
	service    *interview.Service
	reports    reportStore
	pool       analysisSubmitter
	r2Client   *s3.Client
	r2Bucket   string
	httpClient *http.Client
}

// analysisSubmitter is the slice of the worker pool the handlers need.
type analysisSubmitter interface {
	Submit(sessionID uuid.UUID) <-chan error
}

type reportStore interface {
	GetAnalysisReportBySession(ctx context.Context, sessionID uuid.UUID) (database.AnalysisReport, error)
}

// handleCreateSession accepts a multipart form with a jobUrl field and
// either an inline resume upload or a resumeKey referencing a
// pre-uploaded object. The session id is returned only once the vector
// index is fully built.
func (api *apiConfig) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxResumeUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	jobUrl := r.FormValue("jobUrl")
	if jobUrl == "" {
		respondError(w, http.StatusBadRequest, "missing job URL")
		return
	}

	resumeData, resumeMime, err := api.readResume(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	jobDescriptionText, err := document.ScrapeJobDescription(ctx, api.httpClient, jobUrl)
	if err != nil {
		log.Printf("error scraping %s: %v", jobUrl, err)
		respondError(w, http.StatusBadGateway, "could not retrieve job description from the provided URL")
		return
	}

	resumeText, err := document.ExtractResumeText(resumeMime, resumeData)
	if err != nil {
		log.Printf("error extracting resume text: %v", err)
		respondError(w, http.StatusBadRequest, "could not extract text from the resume")
		return
	}

	session, err := api.service.CreateSession(ctx, jobDescriptionText, resumeText)
	if err != nil {
		log.Printf("error creating session: %v", err)
		respondError(w, statusForError(err), "failed to create interview session")
		return
	}

	respondJSON(w, http.StatusCreated, createSessionResponse{SessionID: session.ID})
}

func (api *apiConfig) readResume(r *http.Request) ([]byte, string, error) {
	file, header, err := r.FormFile("resume")
	if err == nil {
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, "", errors.New("could not read resume upload")
		}
		return data, resumeMIME(header.Filename, header.Header.Get("Content-Type")), nil
	}

	resumeKey := r.FormValue("resumeKey")
	if resumeKey == "" {
		return nil, "", errors.New("missing resume file or resumeKey")
	}
	if api.r2Client == nil {
		return nil, "", errors.New("resumeKey given but object storage is not configured")
	}

	data, err := document.DownloadResume(r.Context(), api.r2Client, api.r2Bucket, resumeKey)
	if err != nil {
		log.Printf("error downloading resume %s: %v", resumeKey, err)
		return nil, "", errors.New("could not download resume object")
	}
	return data, resumeMIME(resumeKey, ""), nil
}

func (api *apiConfig) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(r.PathValue("sessionId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	session, messages, err := api.service.GetSession(r.Context(), sessionID)
	if err != nil {
		respondError(w, statusForError(err), "failed to fetch session")
		return
	}
	respondJSON(w, http.StatusOK, toSessionResponse(session, messages))
}

func (api *apiConfig) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	question, err := api.service.NextQuestion(r.Context(), req.SessionID, req.Query)
	if err != nil {
		log.Printf("error generating question for session %s: %v", req.SessionID, err)
		respondError(w, statusForError(err), "failed to generate question")
		return
	}
	respondJSON(w, http.StatusOK, askResponse{Question: question})
}

// handleAnalyze acknowledges immediately and hands the transcript to
// the background pool; completion is observed by polling the report
// endpoint.
func (api *apiConfig) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SessionID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	api.pool.Submit(req.SessionID)
	respondJSON(w, http.StatusAccepted, statusResponse{Message: "Analysis started."})
}

func (api *apiConfig) handleGetReport(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(r.PathValue("sessionId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	report, err := api.reports.GetAnalysisReportBySession(r.Context(), sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		respondJSON(w, http.StatusAccepted, statusResponse{Message: "Report is being generated."})
		return
	}
	if err != nil {
		log.Printf("error fetching report for session %s: %v", sessionID, err)
		respondError(w, http.StatusInternalServerError, "failed to fetch report")
		return
	}
	respondJSON(w, http.StatusOK, toReportResponse(report))
}

func resumeMIME(filename, contentType string) string {
	if contentType != "" && contentType != "application/octet-stream" {
		return contentType
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "text/plain"
	}
}

func statusForError(err error) int {
	var embedErr *gemini.EmbeddingError
	var genErr *gemini.GenerationError
	switch {
	case errors.Is(err, interview.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, interview.ErrMissingInput), errors.Is(err, chunker.ErrInvalidConfig):
		return http.StatusBadRequest
	case errors.As(err, &embedErr), errors.As(err, &genErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("error encoding response: %v", err)
	}
}

func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, statusResponse{Message: message})
}
