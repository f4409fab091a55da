package hackernews

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func int64Ptr(i int64) *int64 { return &i }

// TestShapeStory_Complete verifies every field is mapped
func TestShapeStory_Complete(t *testing.T) {
	item := Item{
		ID:    int64Ptr(8863),
		Type:  strPtr("story"),
		Title: strPtr("My YC app: Dropbox"),
		URL:   strPtr("http://www.getdropbox.com/u/2/screencast.html"),
		By:    strPtr("dhouston"),
		Score: intPtr(111),
		Time:  int64Ptr(1175714200),
	}

	story := ShapeStory(item)

	require.NotNil(t, story.Title)
	assert.Equal(t, "My YC app: Dropbox", *story.Title)
	require.NotNil(t, story.URL)
	assert.Equal(t, "http://www.getdropbox.com/u/2/screencast.html", *story.URL)
	assert.Equal(t, "https://news.ycombinator.com/item?id=8863", story.CommentsURL)
	require.NotNil(t, story.By)
	assert.Equal(t, "dhouston", *story.By)
	require.NotNil(t, story.Score)
	assert.Equal(t, 111, *story.Score)
	require.NotNil(t, story.Timestamp)
	assert.Equal(t, int64(1175714200), *story.Timestamp)
}

// TestShapeStory_MissingOptionalFields verifies missing fields stay nil
func TestShapeStory_MissingOptionalFields(t *testing.T) {
	item := Item{
		ID: int64Ptr(121003),
		By: strPtr("tel"),
	}

	story := ShapeStory(item)

	assert.Nil(t, story.Title)
	assert.Nil(t, story.URL, "Ask HN style stories have no url")
	assert.Nil(t, story.Score)
	assert.Nil(t, story.Timestamp)
	assert.Equal(t, "https://news.ycombinator.com/item?id=121003", story.CommentsURL)
}

// TestShapeStory_MissingID verifies the comments URL keeps an empty ID
func TestShapeStory_MissingID(t *testing.T) {
	story := ShapeStory(Item{Title: strPtr("No id here")})

	assert.Equal(t, "https://news.ycombinator.com/item?id=", story.CommentsURL)
	require.NotNil(t, story.Title)
	assert.Equal(t, "No id here", *story.Title)
}

// TestShapeStory_EmptyItem verifies an empty item shapes without panicking
func TestShapeStory_EmptyItem(t *testing.T) {
	story := ShapeStory(Item{})

	assert.Equal(t, Story{CommentsURL: CommentsURLPrefix}, story)
}

// TestShapeStories_PreservesOrder verifies slice order is kept
func TestShapeStories_PreservesOrder(t *testing.T) {
	items := []Item{
		{ID: int64Ptr(3)},
		{ID: int64Ptr(1)},
		{ID: int64Ptr(2)},
	}

	stories := ShapeStories(items)

	require.Len(t, stories, 3)
	assert.Equal(t, CommentsURLPrefix+"3", stories[0].CommentsURL)
	assert.Equal(t, CommentsURLPrefix+"1", stories[1].CommentsURL)
	assert.Equal(t, CommentsURLPrefix+"2", stories[2].CommentsURL)
}

// TestShapeStories_Empty verifies an empty input gives an empty, non-nil
// result
func TestShapeStories_Empty(t *testing.T) {
	stories := ShapeStories(nil)

	assert.NotNil(t, stories)
	assert.Empty(t, stories)
}

// TestItem_DecodeTimeField verifies the upstream time field feeds timestamp
func TestItem_DecodeTimeField(t *testing.T) {
	var item Item
	require.NoError(t, json.Unmarshal([]byte(`{"id": 5, "time": 1700000000, "score": 0}`), &item))

	story := ShapeStory(item)

	require.NotNil(t, story.Timestamp)
	assert.Equal(t, int64(1700000000), *story.Timestamp)
	require.NotNil(t, story.Score, "a zero score is present, not missing")
	assert.Equal(t, 0, *story.Score)
}

// TestStory_JSONEncoding verifies missing fields encode as null
func TestStory_JSONEncoding(t *testing.T) {
	story := ShapeStory(Item{ID: int64Ptr(9), Title: strPtr("Title")})

	data, err := json.Marshal(story)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"title": "Title",
		"url": null,
		"comments_url": "https://news.ycombinator.com/item?id=9",
		"by": null,
		"score": null,
		"timestamp": null
	}`, string(data))
}

// TestStory_TitleOrEmpty verifies the nil title fallback
func TestStory_TitleOrEmpty(t *testing.T) {
	assert.Equal(t, "", Story{}.TitleOrEmpty())
	assert.Equal(t, "Hello", Story{Title: strPtr("Hello")}.TitleOrEmpty())
}
