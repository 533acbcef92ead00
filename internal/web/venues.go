package web

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/fyyur/internal/models"
	"github.com/desertthunder/fyyur/internal/projection"
	"github.com/desertthunder/fyyur/internal/server"
	"github.com/desertthunder/fyyur/internal/shared"
)

type venueForm struct {
	Venue  *models.Venue
	Action string
}

type searchPage struct {
	Kind   string // path prefix of the result links
	Term   string
	Result projection.SearchResult
}

func (h *Handler) listVenues(w http.ResponseWriter, r *http.Request) {
	st, ok := h.store(w, r)
	if !ok {
		return
	}

	areas, err := h.dir.Areas(r.Context(), st)
	if err != nil {
		h.Fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "venues", "Venues", areas, nil)
}

func (h *Handler) searchVenues(w http.ResponseWriter, r *http.Request) {
	st, ok := h.store(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.Fail(w, r, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err))
		return
	}

	term := field(r.PostForm, "search_term")
	result, err := h.dir.SearchVenues(r.Context(), st, term)
	if err != nil {
		h.Fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "search", "Venue search", searchPage{Kind: "venues", Term: term, Result: result}, nil)
}

func (h *Handler) showVenue(w http.ResponseWriter, r *http.Request) {
	st, ok := h.store(w, r)
	if !ok {
		return
	}

	id, err := server.PathID(r, "id")
	if err != nil {
		h.Fail(w, r, err)
		return
	}

	venue, err := h.dir.Venue(r.Context(), st, id)
	if err != nil {
		h.Fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "show_venue", venue.Name, venue, nil)
}

func (h *Handler) newVenue(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "venue_form", "List a new venue",
		venueForm{Venue: &models.Venue{}, Action: "/venues/create"}, nil)
}

func (h *Handler) createVenue(w http.ResponseWriter, r *http.Request) {
	st, ok := h.store(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.Fail(w, r, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err))
		return
	}

	venue := &models.Venue{}
	populateVenue(venue, r.PostForm)

	if err := h.dir.CreateVenue(r.Context(), st, venue); err != nil {
		if !clientError(err) {
			h.Fail(w, r, err)
			return
		}
		h.render(w, r, server.Status(err), "venue_form", "List a new venue",
			venueForm{Venue: venue, Action: "/venues/create"}, formFailure("Venue", venue.Name, err))
		return
	}

	log.FromContext(r.Context()).Info("venue listed", "id", venue.ID, "name", venue.Name)
	setFlash(w, "success", "Venue "+venue.Name+" was successfully listed!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) editVenue(w http.ResponseWriter, r *http.Request) {
	st, ok := h.store(w, r)
	if !ok {
		return
	}

	id, err := server.PathID(r, "id")
	if err != nil {
		h.Fail(w, r, err)
		return
	}

	venue, err := h.dir.FindVenue(r.Context(), st, id)
	if err != nil {
		h.Fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "venue_form", "Edit venue",
		venueForm{Venue: venue, Action: fmt.Sprintf("/venues/%d/edit", id)}, nil)
}

func (h *Handler) updateVenue(w http.ResponseWriter, r *http.Request) {
	st, ok := h.store(w, r)
	if !ok {
		return
	}

	id, err := server.PathID(r, "id")
	if err != nil {
		h.Fail(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.Fail(w, r, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err))
		return
	}

	venue, err := h.dir.FindVenue(r.Context(), st, id)
	if err != nil {
		h.Fail(w, r, err)
		return
	}
	populateVenue(venue, r.PostForm)

	if err := h.dir.UpdateVenue(r.Context(), st, venue); err != nil {
		if !clientError(err) {
			h.Fail(w, r, err)
			return
		}
		h.render(w, r, server.Status(err), "venue_form", "Edit venue",
			venueForm{Venue: venue, Action: fmt.Sprintf("/venues/%d/edit", id)},
			&Flash{Kind: "danger", Message: "An error occurred. Venue could not be updated: " + reason(err)})
		return
	}

	log.FromContext(r.Context()).Info("venue updated", "id", venue.ID)
	setFlash(w, "success", "Venue "+venue.Name+" was successfully updated!")
	http.Redirect(w, r, fmt.Sprintf("/venues/%d", id), http.StatusSeeOther)
}

func (h *Handler) deleteVenue(w http.ResponseWriter, r *http.Request) {
	st, ok := h.store(w, r)
	if !ok {
		return
	}

	id, err := server.PathID(r, "id")
	if err != nil {
		server.WriteError(w, err)
		return
	}

	if err := h.dir.DeleteVenue(r.Context(), st, id); err != nil {
		server.WriteError(w, err)
		return
	}

	log.FromContext(r.Context()).Info("venue deleted", "id", id)
	server.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "deleted": id})
}
