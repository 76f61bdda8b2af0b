package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"

	"github.com/papapp1293/FantasyFootballDraftHelper/controller"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(render))

	r.Route("/players", func(r chi.Router) {
		r.Get("/", listPlayersHandler(ctrl, render))
		r.Get("/{playerID}", getPlayerHandler(ctrl, render))
	})

	r.Route("/drafts", func(r chi.Router) {
		r.Get("/", listDraftsHandler(ctrl, render))
		r.Post("/", createDraftHandler(ctrl, render))
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", getDraftHandler(ctrl, render))
			r.Delete("/", deleteDraftHandler(ctrl, render))
			r.Post("/start", startDraftHandler(ctrl, render))
			r.Post("/picks", submitPickHandler(ctrl, render))
			r.Post("/advance", advanceBotsHandler(ctrl, render))
			r.Get("/advice", adviceHandler(ctrl, render))
			r.Get("/availability", availabilityHandler(ctrl, render))
			r.Post("/season", seasonFromDraftHandler(ctrl, render))
		})
	})

	r.Post("/season", seasonHandler(ctrl, render))

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second)) // calibration replays every stored draft

		r.Post("/players", upsertPlayersHandler(ctrl, render))
		r.Post("/calibrate", calibrateHandler(ctrl, render))
	})

	return r
}
