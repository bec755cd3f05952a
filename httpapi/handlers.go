package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/katalvlaran/degrees/bfs"
	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/render"
	"github.com/katalvlaran/degrees/service"
)

type handler struct {
	svc     *service.Service
	log     *zap.Logger
	metrics http.Handler
}

type personRef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BirthYear int    `json:"birth,omitempty"`
}

type movieRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Year  int    `json:"year,omitempty"`
}

type personDetail struct {
	personRef
	Movies []movieRef `json:"movies"`
}

type neighborBody struct {
	MovieID  string `json:"movie_id"`
	PersonID string `json:"person_id"`
}

type stepBody struct {
	Movie movieRef  `json:"movie"`
	From  personRef `json:"from"`
	To    personRef `json:"to"`
}

type pathBody struct {
	Outcome  string     `json:"outcome"`
	Degrees  int        `json:"degrees"`
	Explored int        `json:"explored"`
	Steps    []stepBody `json:"steps"`
	Report   []string   `json:"report"`
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	st := h.svc.Graph().Stats()
	h.respondJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"people":  st.People,
		"movies":  st.Movies,
		"credits": st.Credits,
	})
}

func (h *handler) findPeople(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		h.respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	g := h.svc.Graph()
	ids := g.PeopleNamed(name)
	if len(ids) == 0 {
		h.respondError(w, http.StatusNotFound, "person not found")
		return
	}
	out := make([]personRef, 0, len(ids))
	for _, id := range ids {
		out = append(out, h.personRef(id))
	}
	h.respondJSON(w, http.StatusOK, out)
}

func (h *handler) getPerson(w http.ResponseWriter, r *http.Request) {
	g := h.svc.Graph()
	p, ok := g.Person(chi.URLParam(r, "id"))
	if !ok {
		h.respondError(w, http.StatusNotFound, "person not found")
		return
	}
	out := personDetail{
		personRef: personRef{ID: p.ID, Name: p.Name, BirthYear: p.BirthYear},
		Movies:    make([]movieRef, 0, len(p.Movies)),
	}
	for _, id := range p.Movies {
		out.Movies = append(out.Movies, h.movieRef(id))
	}
	h.respondJSON(w, http.StatusOK, out)
}

func (h *handler) neighbors(w http.ResponseWriter, r *http.Request) {
	nbrs, err := h.svc.NeighborsOf(chi.URLParam(r, "id"))
	if errors.Is(err, core.ErrPersonNotFound) || errors.Is(err, core.ErrEmptyID) {
		h.respondError(w, http.StatusNotFound, "person not found")
		return
	}
	if err != nil {
		h.log.Error("neighbors failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "neighbors failed")
		return
	}
	out := make([]neighborBody, 0, len(nbrs))
	for _, n := range nbrs {
		out = append(out, neighborBody{MovieID: n.MovieID, PersonID: n.PersonID})
	}
	h.respondJSON(w, http.StatusOK, out)
}

func (h *handler) path(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	source, target := q.Get("source"), q.Get("target")
	if source == "" || target == "" {
		h.respondError(w, http.StatusBadRequest, "source and target are required")
		return
	}

	res, err := h.svc.FindShortestPath(r.Context(), source, target)
	switch {
	case err == nil:
	case errors.Is(err, bfs.ErrSourceNotFound), errors.Is(err, bfs.ErrTargetNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, bfs.ErrExploreLimit):
		h.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case errors.Is(err, context.DeadlineExceeded):
		h.respondError(w, http.StatusGatewayTimeout, "search timed out")
		return
	case errors.Is(err, context.Canceled):
		h.respondError(w, http.StatusServiceUnavailable, "search canceled")
		return
	default:
		h.log.Error("search failed", zap.String("source", source), zap.String("target", target), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "search failed")
		return
	}

	body := pathBody{
		Outcome:  res.Outcome.String(),
		Degrees:  res.Degrees(),
		Explored: res.Explored,
		Steps:    make([]stepBody, 0, len(res.Steps)),
		Report:   render.Lines(h.svc.Graph(), source, res),
	}
	prev := source
	for _, s := range res.Steps {
		body.Steps = append(body.Steps, stepBody{
			Movie: h.movieRef(s.MovieID),
			From:  h.personRef(prev),
			To:    h.personRef(s.PersonID),
		})
		prev = s.PersonID
	}
	h.respondJSON(w, http.StatusOK, body)
}

func (h *handler) personRef(id string) personRef {
	p, _ := h.svc.Graph().Person(id)
	return personRef{ID: id, Name: p.Name, BirthYear: p.BirthYear}
}

func (h *handler) movieRef(id string) movieRef {
	m, _ := h.svc.Graph().Movie(id)
	return movieRef{ID: id, Title: m.Title, Year: m.Year}
}

func (h *handler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error("failed to encode response", zap.Error(err))
	}
}

func (h *handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]any{
		"error":   true,
		"message": message,
		"code":    status,
	})
}
