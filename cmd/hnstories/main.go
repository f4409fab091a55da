package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pevans/hnstories"
	"github.com/pevans/hnstories/hackernews"
	"github.com/sirupsen/logrus"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Get subcommand
	subcommand := os.Args[1]

	switch subcommand {
	case "top":
		handleList(hackernews.CategoryTop, os.Args[2:])
	case "new":
		handleList(hackernews.CategoryNew, os.Args[2:])
	case "search":
		handleSearch(os.Args[2:])
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command: %s\n\n", subcommand)
		printUsage()
		os.Exit(1)
	}
}

// setup loads configuration, builds the logger and installs the API client
// used by the hnstories package functions.
func setup() (context.Context, context.CancelFunc, *logrus.Logger) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	clientConfig, err := cfg.ClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	hnstories.SetDefaultClient(hackernews.NewClient(clientConfig, logger))
	logger.WithFields(logrus.Fields{
		"base_url":    clientConfig.BaseURL,
		"timeout":     clientConfig.Timeout,
		"concurrency": clientConfig.Concurrency,
	}).Debug("client configured")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	return ctx, cancel, logger
}

func printUsage() {
	fmt.Println("hnstories - Hacker News stories from the command line")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  hnstories <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  top        Show the current top stories")
	fmt.Println("  new        Show the newest stories")
	fmt.Println("  search     Rank the 100 newest stories by title match")
	fmt.Println("  help       Show this help message")
	fmt.Println()
	fmt.Println("Flags (top, new, search):")
	fmt.Println("  -n         Number of stories (default 10)")
	fmt.Println("  -format    Output format: table, json, compact (default table)")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  HNSTORIES_BASE_URL     API root (default: " + hackernews.DefaultBaseURL + ")")
	fmt.Println("  HNSTORIES_TIMEOUT      Per-request timeout, e.g. 10s (default: none)")
	fmt.Println("  HNSTORIES_CONCURRENCY  Maximum parallel item requests (default: unbounded)")
	fmt.Println("  HNSTORIES_LOG_LEVEL    Log level (default: info)")
}
