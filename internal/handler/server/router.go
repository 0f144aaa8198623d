package server

import (
	"net/http"

	"github.com/careerhive/jobmatch/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /register/person", h.RegisterPerson)
	mux.HandleFunc("POST /register/business", h.RegisterBusiness)
	mux.HandleFunc("PUT /persons/update", h.UpdatePerson)

	mux.HandleFunc("GET /user/jobs", h.GetRelevantJobs)
	mux.HandleFunc("POST /user/jobs/{jobID}/apply", h.Apply)
	mux.HandleFunc("GET /user/tasks", h.GetPersonTasks)
	mux.HandleFunc("GET /user/businesses", h.GetBusinesses)

	mux.HandleFunc("GET /business/jobs", h.GetBusinessJobs)
	mux.HandleFunc("POST /business/jobs", h.CreateJob)
	mux.HandleFunc("GET /business/jobs/all", h.GetAllJobs)
	mux.HandleFunc("PATCH /business/jobs/{jobID}/accept", h.AcceptCandidate)
	mux.HandleFunc("PATCH /business/jobs/{jobID}/reject", h.RejectCandidate)
	mux.HandleFunc("GET /business/teams", h.GetTeams)
	mux.HandleFunc("GET /business/employees", h.GetEmployees)

	mux.HandleFunc("POST /business/tasks", h.CreateTask)
	mux.HandleFunc("PATCH /business/tasks/{taskID}/status", h.UpdateTaskStatus)
	mux.HandleFunc("GET /business/tasks", h.GetBusinessTasks)
}
