package web

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/fyyur/internal/models"
	"github.com/desertthunder/fyyur/internal/server"
	"github.com/desertthunder/fyyur/internal/shared"
)

func (h *Handler) newShow(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "show_form", "List a new show", &models.Show{}, nil)
}

func (h *Handler) createShow(w http.ResponseWriter, r *http.Request) {
	st, ok := h.store(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.Fail(w, r, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err))
		return
	}

	show := &models.Show{}
	err := populateShow(show, r.PostForm)
	if err == nil {
		err = h.dir.CreateShow(r.Context(), st, show)
	}

	if err != nil {
		if !clientError(err) {
			h.Fail(w, r, err)
			return
		}
		h.render(w, r, server.Status(err), "show_form", "List a new show", show, formFailure("Show", "", err))
		return
	}

	log.FromContext(r.Context()).Info("show listed", "id", show.ID, "venue_id", show.VenueID, "artist_id", show.ArtistID)
	setFlash(w, "success", "Show was successfully listed!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
