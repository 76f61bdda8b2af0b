package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"

	"github.com/papapp1293/FantasyFootballDraftHelper/controller"
	"github.com/papapp1293/FantasyFootballDraftHelper/db"
	"github.com/papapp1293/FantasyFootballDraftHelper/draft"
	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps domain errors onto HTTP statuses: conflicts for state
// machine violations, 404 for unknown ids, 400 for bad input.
func writeError(render *render.Render, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, draft.ErrSessionNotFound), errors.Is(err, db.ErrPlayerNotFound),
		errors.Is(err, db.ErrDraftNotFound):
		status = http.StatusNotFound
	case errors.Is(err, draft.ErrTurnViolation), errors.Is(err, draft.ErrPlayerUnavailable),
		errors.Is(err, draft.ErrSessionComplete), errors.Is(err, draft.ErrSessionNotStarted),
		errors.Is(err, draft.ErrSessionStarted):
		status = http.StatusConflict
	case errors.Is(err, model.ErrInvalidConfig), errors.Is(err, draft.ErrPoolTooSmall):
		status = http.StatusBadRequest
	}
	render.JSON(w, status, errorResponse{Error: err.Error()})
}

func rootHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, map[string]string{"service": "draft-helper"})
	}
}

func listPlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode := model.ScoringPPR
		if q := r.URL.Query().Get("mode"); q != "" {
			var err error
			if mode, err = model.ParseScoringMode(q); err != nil {
				render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
				return
			}
		}
		limit := intParam(r, "limit", 0)

		players, err := ctrl.ListPlayers(r.Context(), mode, limit)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, players)
	}
}

func getPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := ctrl.GetPlayer(r.Context(), chi.URLParam(r, "playerID"))
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, p)
	}
}

func createDraftHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := model.DefaultLeagueConfig()
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: "invalid league config: " + err.Error()})
			return
		}

		view, err := ctrl.CreateSession(r.Context(), cfg)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, view)
	}
}

func listDraftsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, ctrl.ListSessions())
	}
}

func deleteDraftHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.DeleteSession(chi.URLParam(r, "sessionID")); err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"deleted": chi.URLParam(r, "sessionID")})
	}
}

func getDraftHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := ctrl.GetState(chi.URLParam(r, "sessionID"))
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, view)
	}
}

func startDraftHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := ctrl.StartSession(chi.URLParam(r, "sessionID"))
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, view)
	}
}

type pickRequest struct {
	TeamID   int    `json:"team_id"`
	PlayerID string `json:"player_id"`
}

func submitPickHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req pickRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: "invalid pick request: " + err.Error()})
			return
		}

		view, err := ctrl.SubmitPick(r.Context(), chi.URLParam(r, "sessionID"), req.TeamID, req.PlayerID)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, view)
	}
}

func advanceBotsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := ctrl.AdvanceBots(r.Context(), chi.URLParam(r, "sessionID"))
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, view)
	}
}

func adviceHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode := model.AdviceDeterministic
		if r.URL.Query().Get("mode") == string(model.AdviceStochastic) {
			mode = model.AdviceStochastic
		}
		teamID := intParam(r, "team_id", 0)
		limit := intParam(r, "limit", 10)

		cands, err := ctrl.GetAdvice(r.Context(), chi.URLParam(r, "sessionID"), teamID, mode, limit)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, cands)
	}
}

func availabilityHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := intParam(r, "team_id", 0)
		trials := intParam(r, "trials", 0)

		forecast, err := ctrl.ForecastAvailability(r.Context(), chi.URLParam(r, "sessionID"), teamID, trials)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, forecast)
	}
}

type seasonRequest struct {
	Teams    []model.TeamProjection `json:"teams"`
	Schedule model.Schedule         `json:"schedule"`
	Playoffs model.PlayoffFormat    `json:"playoffs"`
	Trials   int                    `json:"trials"`
}

func seasonHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req seasonRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: "invalid season request: " + err.Error()})
			return
		}

		summary, err := ctrl.SimulateSeason(r.Context(), req.Teams, req.Schedule, req.Playoffs, req.Trials)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, summary)
	}
}

func seasonFromDraftHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trials := intParam(r, "trials", 0)

		summary, err := ctrl.SimulateSeasonFromSession(r.Context(), chi.URLParam(r, "sessionID"), trials)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, summary)
	}
}

func upsertPlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var players []*model.Player
		if err := json.NewDecoder(r.Body).Decode(&players); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: "invalid player list: " + err.Error()})
			return
		}

		if err := ctrl.UpsertPlayers(r.Context(), players); err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]int{"updated": len(players)})
	}
}

func calibrateHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weights, err := ctrl.CalibrateWeights(r.Context())
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, weights)
	}
}

func intParam(r *http.Request, name string, fallback int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
