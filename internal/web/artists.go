package web

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/fyyur/internal/models"
	"github.com/desertthunder/fyyur/internal/server"
	"github.com/desertthunder/fyyur/internal/shared"
)

type artistForm struct {
	Artist *models.Artist
	Action string
}

func (h *Handler) listArtists(w http.ResponseWriter, r *http.Request) {
	st, ok := h.store(w, r)
	if !ok {
		return
	}

	artists, err := h.dir.Artists(r.Context(), st)
	if err != nil {
		h.Fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "artists", "Artists", artists, nil)
}

func (h *Handler) searchArtists(w http.ResponseWriter, r *http.Request) {
	st, ok := h.store(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.Fail(w, r, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err))
		return
	}

	term := field(r.PostForm, "search_term")
	result, err := h.dir.SearchArtists(r.Context(), st, term)
	if err != nil {
		h.Fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "search", "Artist search", searchPage{Kind: "artists", Term: term, Result: result}, nil)
}

func (h *Handler) showArtist(w http.ResponseWriter, r *http.Request) {
	st, ok := h.store(w, r)
	if !ok {
		return
	}

	id, err := server.PathID(r, "id")
	if err != nil {
		h.Fail(w, r, err)
		return
	}

	artist, err := h.dir.Artist(r.Context(), st, id)
	if err != nil {
		h.Fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "show_artist", artist.Name, artist, nil)
}

func (h *Handler) newArtist(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "artist_form", "List a new artist",
		artistForm{Artist: &models.Artist{}, Action: "/artists/create"}, nil)
}

func (h *Handler) createArtist(w http.ResponseWriter, r *http.Request) {
	st, ok := h.store(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.Fail(w, r, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err))
		return
	}

	artist := &models.Artist{}
	populateArtist(artist, r.PostForm)

	if err := h.dir.CreateArtist(r.Context(), st, artist); err != nil {
		if !clientError(err) {
			h.Fail(w, r, err)
			return
		}
		h.render(w, r, server.Status(err), "artist_form", "List a new artist",
			artistForm{Artist: artist, Action: "/artists/create"}, formFailure("Artist", artist.Name, err))
		return
	}

	log.FromContext(r.Context()).Info("artist listed", "id", artist.ID, "name", artist.Name)
	setFlash(w, "success", "Artist "+artist.Name+" was successfully listed!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) editArtist(w http.ResponseWriter, r *http.Request) {
	st, ok := h.store(w, r)
	if !ok {
		return
	}

	id, err := server.PathID(r, "id")
	if err != nil {
		h.Fail(w, r, err)
		return
	}

	artist, err := h.dir.FindArtist(r.Context(), st, id)
	if err != nil {
		h.Fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "artist_form", "Edit artist",
		artistForm{Artist: artist, Action: fmt.Sprintf("/artists/%d/edit", id)}, nil)
}

func (h *Handler) updateArtist(w http.ResponseWriter, r *http.Request) {
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

	artist, err := h.dir.FindArtist(r.Context(), st, id)
	if err != nil {
		h.Fail(w, r, err)
		return
	}
	populateArtist(artist, r.PostForm)

	if err := h.dir.UpdateArtist(r.Context(), st, artist); err != nil {
		if !clientError(err) {
			h.Fail(w, r, err)
			return
		}
		h.render(w, r, server.Status(err), "artist_form", "Edit artist",
			artistForm{Artist: artist, Action: fmt.Sprintf("/artists/%d/edit", id)},
			&Flash{Kind: "danger", Message: "An error occurred. Artist could not be updated: " + reason(err)})
		return
	}

	log.FromContext(r.Context()).Info("artist updated", "id", artist.ID)
	setFlash(w, "success", "Artist "+artist.Name+" was successfully updated!")
	http.Redirect(w, r, fmt.Sprintf("/artists/%d", id), http.StatusSeeOther)
}

func (h *Handler) deleteArtist(w http.ResponseWriter, r *http.Request) {
	st, ok := h.store(w, r)
	if !ok {
		return
	}

	id, err := server.PathID(r, "id")
	if err != nil {
		server.WriteError(w, err)
		return
	}

	if err := h.dir.DeleteArtist(r.Context(), st, id); err != nil {
		server.WriteError(w, err)
		return
	}

	log.FromContext(r.Context()).Info("artist deleted", "id", id)
	server.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "deleted": id})
}
