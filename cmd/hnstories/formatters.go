package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pevans/hnstories"
)

func validateFormat(format string) error {
	switch format {
	case "table", "json", "compact":
		return nil
	default:
		return fmt.Errorf("--format must be 'table', 'json' or 'compact'")
	}
}

func printStories(w io.Writer, stories []hnstories.Story, format string) {
	switch format {
	case "json":
		printStoriesJSON(w, stories)
	case "compact":
		printStoriesCompact(w, stories)
	default:
		printStoriesTable(w, stories)
	}
}

// printStoriesTable prints stories in human-readable table format
func printStoriesTable(w io.Writer, stories []hnstories.Story) {
	if len(stories) == 0 {
		fmt.Fprintln(w, "No stories to display.")
		return
	}

	for i, story := range stories {
		// Truncate title for display
		title := displayTitle(story)
		if runes := []rune(title); len(runes) > 70 {
			title = string(runes[:67]) + "..."
		}

		fmt.Fprintf(w, "%2d. %s\n", i+1, title)
		fmt.Fprintf(w, "    %s points by %s | %s\n",
			displayScore(story),
			displayString(story.By, "unknown"),
			displayTime(story),
		)
		if story.URL != nil {
			fmt.Fprintf(w, "    URL: %s\n", *story.URL)
		}
		fmt.Fprintf(w, "    Comments: %s\n", story.CommentsURL)
		fmt.Fprintln(w)
	}
}

// printStoriesJSON prints stories in JSON format
func printStoriesJSON(w io.Writer, stories []hnstories.Story) {
	if stories == nil {
		stories = []hnstories.Story{}
	}

	output := map[string]any{
		"stories": stories,
		"total":   len(stories),
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Fprintf(w, "Error: failed to marshal JSON: %v\n", err)
		return
	}

	fmt.Fprintln(w, string(data))
}

// printStoriesCompact prints one line per story
func printStoriesCompact(w io.Writer, stories []hnstories.Story) {
	if len(stories) == 0 {
		fmt.Fprintln(w, "No stories to display.")
		return
	}

	for _, story := range stories {
		fmt.Fprintf(w, "[%s] %s (%s)\n", displayScore(story), displayTitle(story), story.CommentsURL)
	}
}

func displayTitle(story hnstories.Story) string {
	return displayString(story.Title, "(No title)")
}

func displayString(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}

func displayScore(story hnstories.Story) string {
	if story.Score == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *story.Score)
}

func displayTime(story hnstories.Story) string {
	if story.Timestamp == nil {
		return "unknown time"
	}
	return time.Unix(*story.Timestamp, 0).UTC().Format("2006-01-02 15:04")
}
