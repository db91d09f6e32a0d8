package main

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/someonegg/psmatch"
)

func main() {
	app := &cli.App{
		Name:  "ps-assign",
		Usage: "Fair randomized assignment of items by probabilistic serial",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "trace the eating rounds and session steps",
			},
		},
		Before: func(ctx *cli.Context) error {
			if ctx.Bool("verbose") {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			solveCmd,
			assignCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

var inputFlag = &cli.StringFlag{
	Name:     "input",
	Aliases:  []string{"i"},
	Required: true,
	Usage:    "specify the session file (.json or .yaml)",
}

var solveCmd = &cli.Command{
	Name:    "solve",
	Usage:   "Print the assignment probabilities",
	Aliases: []string{"s"},
	Flags: []cli.Flag{
		inputFlag,
		&cli.StringFlag{
			Name:  "format",
			Value: "table",
			Usage: "specify the output format (table, json, yaml)",
		},
	},
	Action: func(ctx *cli.Context) error {
		var (
			inputFile = ctx.String("input")
			format    = ctx.String("format")
			verbose   = ctx.Bool("verbose")
		)
		switch format {
		case "table", "json", "yaml":
		default:
			return errors.New("invalid format")
		}
		return doSolve(os.Stdout, inputFile, format, verbose)
	},
}

var assignCmd = &cli.Command{
	Name:    "assign",
	Usage:   "Draw a concrete assignment",
	Aliases: []string{"a"},
	Flags: []cli.Flag{
		inputFlag,
		&cli.StringFlag{
			Name:    "seed",
			EnvVars: []string{"PS_ASSIGN_SEED"},
			Usage:   "specify a seed for reproducible draws",
		},
		&cli.IntFlag{
			Name:  "trials",
			Value: 1,
			Usage: "specify the number of independent draws (>1 prints frequencies)",
		},
		&cli.StringFlag{
			Name:  "rounding",
			Value: "weighted",
			Usage: "specify the rounding policy (weighted, greedy)",
		},
		&cli.Float64Flag{
			Name:  "sens",
			Value: 0.05,
			Usage: "specify the greedy tie sensitivity (0.0-1.0)",
		},
		&cli.StringFlag{
			Name:  "output",
			Usage: "specify the output assignment.json",
		},
	},
	Action: func(ctx *cli.Context) error {
		var (
			inputFile  = ctx.String("input")
			seed       = ctx.String("seed")
			trials     = ctx.Int("trials")
			rounding   = ctx.String("rounding")
			sens       = ctx.Float64("sens")
			outputFile = ctx.String("output")
			verbose    = ctx.Bool("verbose")
		)
		if trials < 1 {
			return errors.New("invalid trials")
		}
		if !(sens >= 0.0 && sens <= 1.0) {
			return errors.New("invalid sens")
		}
		var rounder psmatch.Rounder
		switch rounding {
		case "weighted":
			rounder = psmatch.WeightedRounder()
		case "greedy":
			rounder = psmatch.GreedyRounder(sens)
		default:
			return errors.New("invalid rounding")
		}
		return doAssign(os.Stdout, inputFile, seed, trials, outputFile, rounder, verbose)
	},
}
