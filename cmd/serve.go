package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/desertthunder/fyyur/internal/api"
	"github.com/desertthunder/fyyur/internal/quiz"
	"github.com/desertthunder/fyyur/internal/server"
	"github.com/desertthunder/fyyur/internal/services"
	"github.com/desertthunder/fyyur/internal/shared"
	"github.com/desertthunder/fyyur/internal/web"
	"github.com/urfave/cli/v3"
)

// site is one HTTP application the serve command can run.
type site struct {
	name    string
	addr    string
	handler http.Handler
}

func (r *Runner) fyyurSite(db *sql.DB) (site, error) {
	logger := shared.WithLogger(r.logger, "app", "fyyur")
	router, err := web.NewRouter(db, services.NewDirectory(r.now), logger)
	if err != nil {
		return site{}, fmt.Errorf("failed to build fyyur router: %w", err)
	}
	return site{name: "fyyur", addr: r.config.FyyurAddr(), handler: router}, nil
}

func (r *Runner) triviaSite(db *sql.DB) site {
	logger := shared.WithLogger(r.logger, "app", "trivia")
	trivia := services.NewTrivia(r.config.Trivia.PageSize, quiz.NewSelector(nil))
	return site{name: "trivia", addr: r.config.TriviaAddr(), handler: api.NewRouter(db, trivia, logger)}
}

// ServeFyyur runs the booking site.
func (r *Runner) ServeFyyur(ctx context.Context, cmd *cli.Command) error {
	return r.serve(ctx, true, false)
}

// ServeTrivia runs the trivia API.
func (r *Runner) ServeTrivia(ctx context.Context, cmd *cli.Command) error {
	return r.serve(ctx, false, true)
}

// ServeAll runs both applications against the same database.
func (r *Runner) ServeAll(ctx context.Context, cmd *cli.Command) error {
	return r.serve(ctx, true, true)
}

func (r *Runner) serve(ctx context.Context, fyyur, trivia bool) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	var sites []site
	if fyyur {
		s, err := r.fyyurSite(db)
		if err != nil {
			return err
		}
		sites = append(sites, s)
	}
	if trivia {
		sites = append(sites, r.triviaSite(db))
	}

	return r.runSites(ctx, sites)
}

// runSites serves every site until ctx ends or one of them fails, then shuts the rest down.
func (r *Runner) runSites(ctx context.Context, sites []site) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errs := make(chan error, len(sites))
	for _, s := range sites {
		go func() {
			errs <- server.Serve(ctx, s.name, s.addr, s.handler, r.logger)
			cancel()
		}()
	}

	var all []error
	for range sites {
		if err := <-errs; err != nil {
			all = append(all, err)
		}
	}
	return errors.Join(all...)
}
