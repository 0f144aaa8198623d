package handler

import (
	"time"

	"github.com/careerhive/jobmatch/internal/domain"
)

func domainPersonToHTTP(person *domain.Person) PersonResponse {
	return PersonResponse{
		PersonID: person.ID,
		FullName: person.FullName,
		Email:    person.Email,
		Skills:   person.Skills,
		Location: person.Location,
	}
}

func domainPersonsToHTTP(persons []*domain.Person) []PersonResponse {
	result := make([]PersonResponse, 0, len(persons))
	for _, person := range persons {
		result = append(result, domainPersonToHTTP(person))
	}
	return result
}

func domainBusinessToHTTP(business *domain.Business) BusinessResponse {
	return BusinessResponse{
		BusinessID: business.ID,
		Name:       business.Name,
		Field:      business.Field,
		About:      business.About,
		Email:      business.Email,
		Location:   business.Location,
	}
}

func domainJobToHTTP(job *domain.Job) JobResponse {
	var createdAt *string
	if !job.CreatedAt.IsZero() {
		createdAtStr := job.CreatedAt.Format(time.RFC3339)
		createdAt = &createdAtStr
	}

	return JobResponse{
		JobID:             job.ID,
		CompanyID:         job.CompanyID,
		CompanyName:       job.CompanyName,
		Name:              job.Name,
		Description:       job.Description,
		Skills:            job.Skills,
		Location:          job.Location,
		EmploymentType:    string(job.EmploymentType),
		NumberOfPositions: job.NumberOfPositions,
		AssignedTo:        job.AssignedTo,
		JobApplicants:     job.JobApplicants,
		CreatedAt:         createdAt,
	}
}

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	return TeamResponse{
		JobID:   team.JobID,
		JobName: team.JobName,
		Members: domainPersonsToHTTP(team.Members),
	}
}

func domainTaskToHTTP(task *domain.Task) TaskResponse {
	var createdAt *string
	if !task.CreatedAt.IsZero() {
		createdAtStr := task.CreatedAt.Format(time.RFC3339)
		createdAt = &createdAtStr
	}

	return TaskResponse{
		TaskID:      task.ID,
		BusinessID:  task.BusinessID,
		Name:        task.Name,
		Importance:  string(task.Importance),
		Description: task.Description,
		AssignedTo:  task.AssignedTo,
		DueDate:     task.DueDate.Format(time.RFC3339),
		Status:      string(task.Status),
		CreatedAt:   createdAt,
	}
}

func domainTasksToHTTP(tasks []*domain.Task) []TaskResponse {
	result := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		result = append(result, domainTaskToHTTP(task))
	}
	return result
}
