package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	saveadmin "injetora-apontamentos/http-server/admin/save"
	getdashboard "injetora-apontamentos/http-server/dashboard/get"
	getlists "injetora-apontamentos/http-server/lists/get"
	"injetora-apontamentos/http-server/login"
	"injetora-apontamentos/http-server/products/ncrate"
	getreadings "injetora-apontamentos/http-server/readings/get"
	"injetora-apontamentos/http-server/readings/remove"
	savereading "injetora-apontamentos/http-server/readings/save"
	updatereading "injetora-apontamentos/http-server/readings/update"
	"injetora-apontamentos/http-server/report/excel"
	getsectors "injetora-apontamentos/http-server/sectors/get"
	getshift "injetora-apontamentos/http-server/shift/get"
	gettarget "injetora-apontamentos/http-server/target/get"
	savetarget "injetora-apontamentos/http-server/target/save"
	getunderproduction "injetora-apontamentos/http-server/underproduction/get"
	saveunderproduction "injetora-apontamentos/http-server/underproduction/save"
	"injetora-apontamentos/internal/config"
	"injetora-apontamentos/internal/middleware/auth"
	"injetora-apontamentos/internal/storage"
	"injetora-apontamentos/internal/token"
)

const frontendDir = "./frontend-dist"

// Storage é tudo que as rotas pedem ao banco; *mysql.Storage satisfaz.
type Storage interface {
	CreateReading(ctx context.Context, r storage.Reading) (storage.Reading, error)
	ListReadings(ctx context.Context, f storage.ReadingFilter) ([]storage.Reading, error)
	UpdateReading(ctx context.Context, id int64, upd storage.ReadingUpdate) (storage.Reading, error)
	DeleteReading(ctx context.Context, id int64) error
	NCTotalsByPart(ctx context.Context, f storage.ReadingFilter) ([]storage.PartNCRate, error)
	ListSectors(ctx context.Context) ([]storage.Sector, error)
	CreateUnderproduction(ctx context.Context, ev storage.UnderproductionEvent) (storage.UnderproductionEvent, error)
	ListUnderproduction(ctx context.Context, f storage.UnderproductionFilter) ([]storage.UnderproductionEvent, error)
	GetDailyTarget(ctx context.Context) (storage.DailyTarget, bool, error)
	UpsertDailyTarget(ctx context.Context, valor int, updatedBy string) (storage.DailyTarget, error)
	CreateEmployee(ctx context.Context, e storage.Employee) (storage.Employee, error)
	SavePart(ctx context.Context, p storage.Part) (storage.Part, error)
	CreateMachine(ctx context.Context, m storage.Machine) (storage.Machine, error)
	CreateSector(ctx context.Context, s storage.Sector) (storage.Sector, error)
}

type Tokens interface {
	login.TokenIssuer
	auth.TokenParser
}

type Deps struct {
	Storage       Storage
	Lists         getlists.ListsProvider
	Excel         excel.ExcelGenerator
	Authenticator login.Authenticator
	Tokens        Tokens
}

func routes(cfg config.Config, log *slog.Logger, deps Deps) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	st := deps.Storage

	// públicas
	router.Post("/login", login.Login(log, deps.Authenticator, deps.Tokens))
	router.Get("/api/meta-producao", gettarget.GetDailyTarget(log, st))
	router.Get("/api/data/lists", getlists.GetLists(log, deps.Lists))
	router.Get("/api/apontamentos/injetora", getreadings.GetReadings(log, st))
	router.Get("/api/turnos/horarios", getshift.GetShiftSlots())

	router.Group(func(r chi.Router) {
		r.Use(auth.Bearer(log, deps.Tokens))

		r.Post("/api/apontamentos/injetora", savereading.SaveReading(log, st))
		r.Get("/api/apontamentos/injetora/excel", excel.GenerateReadingsExcel(log, deps.Excel))
		r.Get("/api/produtos/taxa-nc", ncrate.GetNCRateByPart(log, st))
		r.Get("/api/dashboard", getdashboard.GetDashboard(log, st))
		r.Get("/api/setores", getsectors.GetSectors(log, st))
		r.Post("/api/improdutividade", saveunderproduction.SaveUnderproduction(log, st))
		r.Get("/api/improdutividade/analise", getunderproduction.GetUnderproductionAnalysis(log, st))

		// supervisor
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireLevel(token.LevelSupervisor))

			r.Post("/api/meta-producao", savetarget.SaveDailyTarget(log, st))
			r.Put("/api/apontamentos/injetora/{id}", updatereading.UpdateReading(log, st))
			r.Delete("/api/apontamentos/injetora/{id}", remove.DeleteReading(log, st))
		})
	})

	// cadastros do supervisor
	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.Bearer(log, deps.Tokens))
	adminRouter.Use(auth.RequireLevel(token.LevelSupervisor))

	adminRouter.Post("/funcionarios", saveadmin.SaveEmployee(log, st))
	adminRouter.Post("/pecas", saveadmin.SavePart(log, st))
	adminRouter.Post("/maquinas", saveadmin.SaveMachine(log, st))
	adminRouter.Post("/setores", saveadmin.SaveSector(log, st))

	router.Mount("/api/admin", adminRouter)

	mountFrontend(router, log)

	return router
}

// mountFrontend serve o build do front (SPA) quando a pasta existe.
func mountFrontend(router *chi.Mux, log *slog.Logger) {
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("pasta do frontend não encontrada, servindo só a API", "path", frontendDir)
		return
	}

	fileServer := http.FileServer(http.Dir(frontendDir))
	router.Handle("/assets/*", fileServer)

	// SPA fallback: qualquer outro caminho → index.html
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})
}
