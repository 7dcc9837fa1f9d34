package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"golf_stats/internal/app"
	"golf_stats/internal/bag"

	"github.com/go-chi/chi/v5"
)

const maxBagBody = 64 << 10

// GetBag returns the saved bag grouped by club type
func (h *Handler) GetBag(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.bags.Get(r.Context()))
}

// PutBag replaces the whole bag
func (h *Handler) PutBag(w http.ResponseWriter, r *http.Request) {
	var b app.Bag
	if err := decodeBody(w, r, &b); err != nil {
		respondError(w, http.StatusBadRequest, "invalid bag body", err)
		return
	}

	view, err := h.bags.Replace(r.Context(), b)
	if err != nil {
		respondBagError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// GetClubPresets lists the standard clubs per type
func (h *Handler) GetClubPresets(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, bag.Presets)
}

// AddClub adds a preset or custom club
func (h *Handler) AddClub(w http.ResponseWriter, r *http.Request) {
	var req bag.NewClub
	if err := decodeBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid club body", err)
		return
	}

	club, view, err := h.bags.AddClub(r.Context(), req)
	if err != nil {
		respondBagError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"club": club,
		"bag":  view,
	})
}

// DeleteClub removes a club by id
func (h *Handler) DeleteClub(w http.ResponseWriter, r *http.Request) {
	view, err := h.bags.RemoveClub(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondBagError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

func respondBagError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bag.ErrDuplicateClub):
		respondError(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, bag.ErrClubNotFound):
		respondError(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, bag.ErrInvalidClub):
		respondError(w, http.StatusBadRequest, err.Error(), nil)
	default:
		respondError(w, http.StatusInternalServerError, "failed to update bag", err)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBagBody)).Decode(v)
}
