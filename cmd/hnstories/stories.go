package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pevans/hnstories"
	"github.com/pevans/hnstories/hackernews"
)

func handleList(category hackernews.Category, args []string) {
	// Parse flags for list commands
	fs := flag.NewFlagSet(string(category), flag.ExitOnError)
	count := fs.Int("n", 10, "Number of stories to show")
	format := fs.String("format", "table", "Output format: table, json, compact")
	fs.Parse(args)

	if err := validateFormat(*format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel, logger := setup()
	defer cancel()

	var (
		stories []hnstories.Story
		err     error
	)
	if category == hackernews.CategoryTop {
		stories, err = hnstories.GetTopStories(ctx, *count)
	} else {
		stories, err = hnstories.GetNewStories(ctx, *count)
	}
	if err != nil {
		logger.WithError(err).Error("failed to fetch stories")
		cancel()
		os.Exit(1)
	}

	printStories(os.Stdout, stories, *format)
}

func handleSearch(args []string) {
	// Parse flags for search command
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	count := fs.Int("n", 10, "Number of stories to show")
	format := fs.String("format", "table", "Output format: table, json, compact")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: search query is required\n")
		fmt.Fprintf(os.Stderr, "Usage: hnstories search [-n N] [-format F] <query>\n")
		os.Exit(1)
	}
	query := strings.Join(fs.Args(), " ")

	if err := validateFormat(*format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel, logger := setup()
	defer cancel()

	stories, err := hnstories.SearchNewStoriesByTitle(ctx, query, *count)
	if err != nil {
		logger.WithError(err).WithField("query", query).Error("search failed")
		cancel()
		os.Exit(1)
	}

	printStories(os.Stdout, stories, *format)
}
