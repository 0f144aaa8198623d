package handler

import (
	"encoding/json"
	"net/http"

	"github.com/careerhive/jobmatch/internal/domain"
)

func (h *Handler) RegisterPerson(w http.ResponseWriter, r *http.Request) {
	var req RegisterPersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewInvalidRequestError("invalid request body"))
		return
	}

	person, err := h.accountService.CreatePerson(r.Context(), &domain.Person{
		FullName: req.FullName,
		Email:    req.Email,
		Skills:   req.Skills,
		Location: req.Location,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, RegisterPersonResponse{
		Person: domainPersonToHTTP(person),
	})
}

func (h *Handler) RegisterBusiness(w http.ResponseWriter, r *http.Request) {
	var req RegisterBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewInvalidRequestError("invalid request body"))
		return
	}

	business, err := h.accountService.CreateBusiness(r.Context(), &domain.Business{
		Name:     req.Name,
		Field:    req.Field,
		About:    req.About,
		Email:    req.Email,
		Location: req.Location,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, RegisterBusinessResponse{
		Business: domainBusinessToHTTP(business),
	})
}

func (h *Handler) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	var req UpdatePersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewInvalidRequestError("invalid request body"))
		return
	}

	person, err := h.accountService.UpdatePerson(r.Context(), &domain.Person{
		ID:       req.PersonID,
		FullName: req.FullName,
		Skills:   req.Skills,
		Location: req.Location,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, RegisterPersonResponse{
		Person: domainPersonToHTTP(person),
	})
}

func (h *Handler) GetBusinesses(w http.ResponseWriter, r *http.Request) {
	businesses, err := h.accountService.Businesses(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	response := BusinessesResponse{
		Businesses: make([]BusinessResponse, 0, len(businesses)),
	}
	for _, business := range businesses {
		response.Businesses = append(response.Businesses, domainBusinessToHTTP(business))
	}

	h.writeJSON(w, http.StatusOK, response)
}
