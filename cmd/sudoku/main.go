package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	httpadapter "github.com/chischaschos/sudoku/internal/adapters/http"
	"github.com/chischaschos/sudoku/internal/codec"
	"github.com/chischaschos/sudoku/internal/domain"
	"github.com/chischaschos/sudoku/internal/infrastructure/storage"
	"github.com/chischaschos/sudoku/internal/ports"
	"github.com/chischaschos/sudoku/internal/recorder"
	"github.com/chischaschos/sudoku/internal/solver"
	"github.com/chischaschos/sudoku/internal/topology"
	"github.com/chischaschos/sudoku/internal/usecase"
	"github.com/chischaschos/sudoku/internal/validator"
)

// newService wires providers → use cases for both board variants.
func newService(dataDir string) *usecase.Service {
	solvers := make(map[domain.Variant]ports.Solver, 2)
	validators := make(map[domain.Variant]ports.Validator, 2)
	for _, v := range []domain.Variant{domain.Classic, domain.Diagonal} {
		topo := topology.For(v)
		solvers[v] = solver.New(topo)
		validators[v] = validator.New(topo)
	}
	return usecase.NewService(solvers, validators, storage.NewFS(dataDir))
}

func main() {
	var logLevel string

	root := &cobra.Command{
		Use:   "sudoku",
		Short: "Constraint-propagation sudoku solver",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			lvl, err := zerolog.ParseLevel(strings.ToLower(logLevel))
			if err != nil {
				lvl = zerolog.InfoLevel
			}
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).Level(lvl)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")

	root.AddCommand(newSolveCmd(), newServeCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newSolveCmd() *cobra.Command {
	var (
		diagonal bool
		pretty   bool
		unique   bool
		save     bool
		dataDir  string
	)
	cmd := &cobra.Command{
		Use:   "solve <grid>",
		Short: "Solve an 81-character grid ('.' for unknown cells)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			v := domain.Classic
			if diagonal {
				v = domain.Diagonal
			}
			uc := newService(dataDir)

			rec, st, err := uc.Solve(cmd.Context(), args[0], v)
			if errors.Is(err, solver.ErrUnsolvable) {
				log.Fatal().Int("nodes", st.Nodes).Msg("no solution exists")
			}
			if err != nil {
				log.Fatal().Err(err).Msg("solve grid")
			}

			if pretty {
				topo := topology.For(v)
				b, err := codec.Parse(topo, rec.Solution, recorder.Nop{})
				if err != nil {
					log.Fatal().Err(err).Msg("render solution")
				}
				fmt.Print(codec.Render(topo, b))
			} else {
				fmt.Println(rec.Solution)
			}
			log.Info().
				Str("variant", v.String()).
				Int("nodes", st.Nodes).
				Int("assignments", len(rec.Steps)).
				Dur("took", st.Duration).
				Msg("solved")

			if unique {
				one, _, err := uc.Unique(cmd.Context(), args[0], v)
				if err != nil {
					log.Fatal().Err(err).Msg("uniqueness check")
				}
				log.Info().Bool("unique", one).Msg("uniqueness check")
			}
			if save {
				if err := uc.Save(cmd.Context(), rec); err != nil {
					log.Fatal().Err(err).Msg("save solve record")
				}
				log.Info().Str("id", rec.ID).Str("dir", dataDir).Msg("record saved")
			}
		},
	}
	cmd.Flags().BoolVar(&diagonal, "diagonal", false, "add both main diagonals as units")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "print the solution as a 9x9 grid")
	cmd.Flags().BoolVar(&unique, "unique", false, "also check the puzzle has exactly one solution")
	cmd.Flags().BoolVar(&save, "save", false, "persist the solve record with its assignment log")
	cmd.Flags().StringVar(&dataDir, "data", "./data", "save directory")
	return cmd
}

func newServeCmd() *cobra.Command {
	var (
		addr    string
		dataDir string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solve/validate/replay HTTP API",
		Run: func(cmd *cobra.Command, args []string) {
			uc := newService(dataDir)
			e := gin.Default()
			httpadapter.New(uc).Register(e)

			log.Info().Str("addr", addr).Str("data", dataDir).Msg("listening")
			if err := e.Run(addr); err != nil {
				log.Fatal().Err(err).Msg("run server")
			}
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&dataDir, "data", "./data", "save directory")
	return cmd
}
