package matchers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kova98/redd/enums"
)

func TestMatchesWholeWord_ExactMatch(t *testing.T) {
	assert.True(t, MatchesWholeWord("hello world", "hello"))
	assert.True(t, MatchesWholeWord("hello world", "world"))
	assert.True(t, MatchesWholeWord("hello world ", "world"))
	assert.True(t, MatchesWholeWord("hello", "hello"))
}

func TestMatchesWholeWord_NoMatch(t *testing.T) {
	assert.False(t, MatchesWholeWord("application", "app"))
	assert.False(t, MatchesWholeWord("unhappy", "happy"))
	assert.False(t, MatchesWholeWord("goodbye", "good"))
}

func TestMatchesWholeWord_WithPunctuation(t *testing.T) {
	assert.True(t, MatchesWholeWord("hello, world!", "hello"))
	assert.True(t, MatchesWholeWord("hello, world!", "world"))
	assert.True(t, MatchesWholeWord("(app)", "app"))
	assert.True(t, MatchesWholeWord("check this app.", "app"))
}

func TestMatchesWholeWord_MultipleOccurrences(t *testing.T) {
	assert.True(t, MatchesWholeWord("the application has an app", "app"))
	assert.False(t, MatchesWholeWord("application apps", "app"))
}

func TestMatchesWholeWord_EdgeCases(t *testing.T) {
	assert.True(t, MatchesWholeWord("app", "app"))
	assert.False(t, MatchesWholeWord("", "app"))
	assert.True(t, MatchesWholeWord("app at start", "app"))
	assert.True(t, MatchesWholeWord("ends with app", "app"))
}

func TestMatchesPartially_Match(t *testing.T) {
	assert.True(t, MatchesPartially("application", "app"))
	assert.True(t, MatchesPartially("unhappy", "happy"))
	assert.True(t, MatchesPartially("hello world", "hello"))
	assert.True(t, MatchesPartially("hello world", "world"))
}

func TestMatchesPartially_NoMatch(t *testing.T) {
	assert.False(t, MatchesPartially("hello", "world"))
	assert.False(t, MatchesPartially("golang", "rust"))
}

func TestMatchesPartially_EdgeCases(t *testing.T) {
	assert.True(t, MatchesPartially("app", "app"))
	assert.False(t, MatchesPartially("", "app"))
	assert.True(t, MatchesPartially("app", ""))
}

func TestMatchesWholeWord_UnicodeBoundaries(t *testing.T) {
	assert.True(t, MatchesWholeWord("über go ünd", "go"))
	assert.False(t, MatchesWholeWord("égo", "go"))
	assert.False(t, MatchesWholeWord("goé", "go"))
	assert.False(t, MatchesWholeWord("anything", ""))
}

func TestMatches_Modes(t *testing.T) {
	assert.True(t, Matches("I love Golang", "golang", enums.MatchModeExact))
	assert.False(t, Matches("I love Golang", "go", enums.MatchModeExact))
	assert.True(t, Matches("I love Golang", "GO", enums.MatchModeBroad))
	assert.False(t, Matches("I love Golang", "golang", enums.MatchModeInvalid))
}
