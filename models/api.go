package models

import "time"

// The types below are the JSON shapes served by the HTTP API.

type ThreadResponse struct {
	Submission SubmissionSummary `json:"submission"`
	Comments   []FlatComment     `json:"comments"`
	Total      int               `json:"total"`
}

type SubmissionSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Subreddit   string `json:"subreddit"`
	Permalink   string `json:"permalink"`
	NumComments int    `json:"numComments"`
}

// FlatComment is one entry of a flattened thread. Placeholders for
// truncated branches have Kind "more" and list the ids left to load.
type FlatComment struct {
	Kind         string   `json:"kind"`
	ID           string   `json:"id"`
	ParentID     string   `json:"parentId"`
	Depth        int      `json:"depth"`
	Author       string   `json:"author,omitempty"`
	Body         string   `json:"body,omitempty"`
	Score        int      `json:"score"`
	MoreCount    int      `json:"moreCount,omitempty"`
	MoreChildren []string `json:"moreChildren,omitempty"`
}

type Message struct {
	Fullname   string    `json:"fullname"`
	Kind       string    `json:"kind"`
	Category   string    `json:"category"`
	Author     string    `json:"author"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	Language   string    `json:"language"`
	CreatedUTC time.Time `json:"createdUtc"`
}

type GetMessagesResponse struct {
	Messages []Message `json:"messages"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PerPage  int       `json:"perPage"`
}
