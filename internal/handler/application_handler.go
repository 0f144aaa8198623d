package handler

import (
	"encoding/json"
	"net/http"

	"github.com/careerhive/jobmatch/internal/domain"
)

func (h *Handler) decodeApplication(r *http.Request) (jobID, personID string, err error) {
	jobID = r.PathValue("jobID")

	var req ApplicationRequest
	if decodeErr := json.NewDecoder(r.Body).Decode(&req); decodeErr != nil {
		return "", "", domain.NewInvalidRequestError("invalid request body")
	}

	return jobID, req.PersonID, nil
}

func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	jobID, personID, err := h.decodeApplication(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	job, err := h.applicationService.Apply(r.Context(), jobID, personID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, ApplicationResponse{
		Job: domainJobToHTTP(job),
	})
}

func (h *Handler) AcceptCandidate(w http.ResponseWriter, r *http.Request) {
	jobID, personID, err := h.decodeApplication(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	job, err := h.applicationService.Accept(r.Context(), jobID, personID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, ApplicationResponse{
		Job: domainJobToHTTP(job),
	})
}

func (h *Handler) RejectCandidate(w http.ResponseWriter, r *http.Request) {
	jobID, personID, err := h.decodeApplication(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	job, err := h.applicationService.Reject(r.Context(), jobID, personID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, ApplicationResponse{
		Job: domainJobToHTTP(job),
	})
}
