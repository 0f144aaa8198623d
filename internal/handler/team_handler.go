package handler

import "net/http"

func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	businessID := r.URL.Query().Get("business_id")

	teams, err := h.teamService.Teams(r.Context(), businessID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response := TeamsResponse{
		Teams: make([]TeamResponse, 0, len(teams)),
	}
	for _, team := range teams {
		response.Teams = append(response.Teams, domainTeamToHTTP(team))
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	businessID := r.URL.Query().Get("business_id")

	persons, err := h.teamService.AssignedPersons(r.Context(), businessID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, EmployeesResponse{
		Users: domainPersonsToHTTP(persons),
	})
}
