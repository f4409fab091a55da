package hackernews

import "strconv"

// CommentsURLPrefix is the discussion page for an item, completed with the
// item's ID.
const CommentsURLPrefix = "https://news.ycombinator.com/item?id="

// Item is a raw Hacker News item as returned by /item/{id}.json. Every field
// is optional at the decode boundary.
type Item struct {
	ID    *int64  `json:"id"`
	Type  *string `json:"type"`
	Title *string `json:"title"`
	URL   *string `json:"url"`
	By    *string `json:"by"`
	Score *int    `json:"score"`
	Time  *int64  `json:"time"` // Unix time
}

// Story is the shaped record handed back to callers. Fields missing upstream
// stay nil and encode as null.
type Story struct {
	Title       *string `json:"title"`
	URL         *string `json:"url"`
	CommentsURL string  `json:"comments_url"`
	By          *string `json:"by"`
	Score       *int    `json:"score"`
	Timestamp   *int64  `json:"timestamp"`
}

// ShapeStory converts a raw item into a Story. The comments URL is built from
// the item's own id field; when that is absent the ID component is empty.
func ShapeStory(item Item) Story {
	id := ""
	if item.ID != nil {
		id = strconv.FormatInt(*item.ID, 10)
	}

	return Story{
		Title:       item.Title,
		URL:         item.URL,
		CommentsURL: CommentsURLPrefix + id,
		By:          item.By,
		Score:       item.Score,
		Timestamp:   item.Time,
	}
}

// ShapeStories converts items to stories, keeping their order.
func ShapeStories(items []Item) []Story {
	stories := make([]Story, 0, len(items))
	for _, item := range items {
		stories = append(stories, ShapeStory(item))
	}
	return stories
}

// TitleOrEmpty returns the story title, or "" when it is missing.
func (s Story) TitleOrEmpty() string {
	if s.Title == nil {
		return ""
	}
	return *s.Title
}
