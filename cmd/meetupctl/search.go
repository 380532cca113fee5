package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"meetup/config"
	logs "meetup/internal/infra/log"
	"meetup/internal/infra/maps"
	"meetup/internal/usecase"
	"meetup/internal/usecase/impl"

	"github.com/pkg/errors"
)

// Same bounds the HTTP search form enforces
const (
	minWalkMinutes = 5
	maxWalkMinutes = 30
	maxMinRating   = 5
)

type searchOptions struct {
	OriginA    string
	OriginB    string
	MaxMinutes int
	MinRating  int
	Cuisines   []string
}

func (o searchOptions) validate() error {
	if o.MaxMinutes < minWalkMinutes || o.MaxMinutes > maxWalkMinutes {
		return errors.Errorf("-minutes must be between %d and %d, got %d", minWalkMinutes, maxWalkMinutes, o.MaxMinutes)
	}
	if o.MinRating < 0 || o.MinRating > maxMinRating {
		return errors.Errorf("-rating must be between 0 and %d, got %d", maxMinRating, o.MinRating)
	}

	return nil
}

func runSearch(ctx context.Context, out io.Writer, opts searchOptions) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	client, err := maps.NewClient(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to create maps client")
	}

	matchUC := impl.NewMatchService(
		maps.NewGeocoder(client, cfg, logger),
		maps.NewPlacesSearcher(client, cfg, logger),
		maps.NewDistanceMatrix(client, cfg, logger),
		cfg,
		logger,
	)

	result, err := matchUC.FindMatches(ctx, &usecase.FindMatchesInput{
		OriginA:    opts.OriginA,
		OriginB:    opts.OriginB,
		MaxMinutes: opts.MaxMinutes,
		MinRating:  opts.MinRating,
		Cuisines:   opts.Cuisines,
	})
	if err != nil {
		return err
	}

	return printMatches(out, result, opts.MaxMinutes)
}

// printMatches writes the results table, or a notice when nothing matched
func printMatches(out io.Writer, result *usecase.MatchResult, maxMinutes int) error {
	fmt.Fprintf(out, "A: %s\nB: %s\n\n", result.OriginA.DisplayName(), result.OriginB.DisplayName())

	if len(result.Matches) == 0 {
		fmt.Fprintf(out, "No venues within %d walking minutes of both locations (%d candidates checked).\n",
			maxMinutes, result.RatedCount)

		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tRATING\tMINS FROM A\tMINS FROM B\tLINK")
	for _, m := range result.Matches {
		fmt.Fprintf(tw, "%s\t%.1f\t%.1f\t%.1f\t%s\n", m.Name, m.Rating, m.MinutesFromA, m.MinutesFromB, m.MapsURL)
	}

	return errors.WithStack(tw.Flush())
}

func splitCuisines(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	cuisines := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			cuisines = append(cuisines, part)
		}
	}

	return cuisines
}
