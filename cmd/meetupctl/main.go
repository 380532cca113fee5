package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - search:        Run a meetup search and print the results table
// - hash-password: Print the bcrypt hash for access.passwordHash

func main() {
	// Subcommand definitions
	searchCmd := flag.NewFlagSet("search", flag.ExitOnError)
	hashCmd := flag.NewFlagSet("hash-password", flag.ExitOnError)

	// search parameters
	searchA := searchCmd.String("a", "", "Location A (address or place name)")
	searchB := searchCmd.String("b", "", "Location B (address or place name)")
	searchMinutes := searchCmd.Int("minutes", 15, "Maximum walking minutes from each location (5-30)")
	searchRating := searchCmd.Int("rating", 4, "Minimum venue rating (0-5)")
	searchCuisine := searchCmd.String("cuisine", "", "Comma separated cuisines, empty for Any")

	// hash-password parameters
	hashPassword := hashCmd.String("password", "", "Shared password to hash")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := ctlFlags{
		Search: searchFlags{
			cmd:     searchCmd,
			a:       searchA,
			b:       searchB,
			minutes: searchMinutes,
			rating:  searchRating,
			cuisine: searchCuisine,
		},
		Hash: hashFlags{
			cmd:      hashCmd,
			password: hashPassword,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Search searchFlags
	Hash   hashFlags
}

type searchFlags struct {
	cmd     *flag.FlagSet
	a       *string
	b       *string
	minutes *int
	rating  *int
	cuisine *string
}

type hashFlags struct {
	cmd      *flag.FlagSet
	password *string
}

func runSubcommand(ctx context.Context, flags *ctlFlags) error {
	switch os.Args[1] {
	case "search":
		return handleSearch(ctx, flags)
	case "hash-password":
		return handleHashPassword(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleSearch(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Search.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse search flags")
	}

	if *flags.Search.a == "" || *flags.Search.b == "" {
		return errors.New("-a and -b flags are required for search command")
	}

	opts := searchOptions{
		OriginA:    *flags.Search.a,
		OriginB:    *flags.Search.b,
		MaxMinutes: *flags.Search.minutes,
		MinRating:  *flags.Search.rating,
		Cuisines:   splitCuisines(*flags.Search.cuisine),
	}
	if err := opts.validate(); err != nil {
		return err
	}

	return runSearch(ctx, os.Stdout, opts)
}

func handleHashPassword(flags *ctlFlags) error {
	if err := flags.Hash.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse hash-password flags")
	}

	if *flags.Hash.password == "" {
		return errors.New("-password flag is required for hash-password command")
	}

	return runHashPassword(os.Stdout, *flags.Hash.password)
}

func printUsage() {
	fmt.Println("Usage: meetupctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  search          Find venues within walking distance of two locations")
	fmt.Println("  hash-password   Hash a shared password for the access gate")
	fmt.Println("")
	fmt.Println("Use 'meetupctl <command> -h' for more information about a command.")
}

// Command implementations are in their respective files
