package handler

import (
	"encoding/json"
	"net/http"

	"github.com/careerhive/jobmatch/internal/domain"
)

func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewInvalidRequestError("invalid request body"))
		return
	}

	job, err := h.jobService.CreateJob(r.Context(), &domain.Job{
		CompanyID:         req.BusinessID,
		Name:              req.Name,
		Description:       req.Description,
		Skills:            req.Skills,
		Location:          req.Location,
		EmploymentType:    domain.EmploymentType(req.EmploymentType),
		NumberOfPositions: req.NumberOfPositions,
		AssignedTo:        req.AssignedTo,
		JobApplicants:     req.JobApplicants,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, CreateJobResponse{
		Job: domainJobToHTTP(job),
	})
}

func (h *Handler) GetBusinessJobs(w http.ResponseWriter, r *http.Request) {
	businessID := r.URL.Query().Get("business_id")

	rosters, err := h.jobService.JobsForBusiness(r.Context(), businessID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response := BusinessJobsResponse{
		Jobs: make([]JobRosterResponse, 0, len(rosters)),
	}
	for _, roster := range rosters {
		response.Jobs = append(response.Jobs, JobRosterResponse{
			Job:        domainJobToHTTP(roster.Job),
			Assigned:   domainPersonsToHTTP(roster.Assigned),
			Applicants: domainPersonsToHTTP(roster.Applicants),
		})
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *Handler) GetAllJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobService.AllJobs(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	response := AllJobsResponse{
		Count: len(jobs),
		Jobs:  make([]JobResponse, 0, len(jobs)),
	}
	for _, job := range jobs {
		response.Jobs = append(response.Jobs, domainJobToHTTP(job))
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *Handler) GetRelevantJobs(w http.ResponseWriter, r *http.Request) {
	personID := r.URL.Query().Get("person_id")
	if personID == "" {
		h.handleError(w, domain.NewInvalidRequestError("person_id parameter is required"))
		return
	}

	matches, err := h.matchingService.RelevantJobs(r.Context(), personID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response := RelevantJobsResponse{
		Count: len(matches),
		Jobs:  make([]MatchedJobResponse, 0, len(matches)),
	}
	for _, match := range matches {
		response.Jobs = append(response.Jobs, MatchedJobResponse{
			JobResponse: domainJobToHTTP(match.Job),
			Score:       match.Score,
		})
	}

	h.writeJSON(w, http.StatusOK, response)
}
