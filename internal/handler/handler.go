package handler

import "github.com/careerhive/jobmatch/internal/service"

type Handler struct {
	accountService     service.AccountService
	jobService         service.JobService
	matchingService    service.MatchingService
	applicationService service.ApplicationService
	teamService        service.TeamService
	taskService        service.TaskService
}

func NewHandler(
	accountService service.AccountService,
	jobService service.JobService,
	matchingService service.MatchingService,
	applicationService service.ApplicationService,
	teamService service.TeamService,
	taskService service.TaskService,
) *Handler {
	return &Handler{
		accountService:     accountService,
		jobService:         jobService,
		matchingService:    matchingService,
		applicationService: applicationService,
		teamService:        teamService,
		taskService:        taskService,
	}
}
