package leetcode

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"
)

// Stats holds accepted-submission counts per difficulty tier.
type Stats struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// StatsFetcher fetches solved-problem stats for a LeetCode username.
// Implementations return ErrStatsUnavailable for every failure mode.
type StatsFetcher interface {
	FetchStats(username string) (*Stats, error)
}

const statsQuery = `
query userProfile($username: String!) {
  matchedUser(username: $username) {
    username
    submitStats {
      acSubmissionNum {
        difficulty
        count
      }
    }
  }
}`

// DefaultTimeout bounds the outbound GraphQL call so a slow upstream
// cannot hold a worker indefinitely.
const DefaultTimeout = 10 * time.Second

// HTTPClient fetches stats from the LeetCode public GraphQL endpoint.
type HTTPClient struct {
	url    string
	client *http.Client
}

func NewHTTPClient(url string) *HTTPClient {
	return &HTTPClient{
		url:    url,
		client: &http.Client{Timeout: DefaultTimeout},
	}
}

// FetchStats issues a single GraphQL POST for the given username.
// A missing matchedUser in the payload means the username is unknown.
func (c *HTTPClient) FetchStats(username string) (*Stats, error) {
	body, err := json.Marshal(map[string]interface{}{
		"query":     statsQuery,
		"variables": map[string]string{"username": username},
	})
	if err != nil {
		return nil, ErrStatsUnavailable
	}

	resp, err := c.client.Post(c.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, ErrStatsUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrStatsUnavailable
	}

	var payload struct {
		Data struct {
			MatchedUser *struct {
				SubmitStats struct {
					AcSubmissionNum []struct {
						Difficulty string `json:"difficulty"`
						Count      int    `json:"count"`
					} `json:"acSubmissionNum"`
				} `json:"submitStats"`
			} `json:"matchedUser"`
		} `json:"data"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, ErrStatsUnavailable
	}
	if payload.Data.MatchedUser == nil {
		return nil, ErrStatsUnavailable
	}

	// The API also reports an "All" bucket; only the three tiers count.
	stats := &Stats{}
	for _, item := range payload.Data.MatchedUser.SubmitStats.AcSubmissionNum {
		switch item.Difficulty {
		case "Easy":
			stats.Easy = item.Count
		case "Medium":
			stats.Medium = item.Count
		case "Hard":
			stats.Hard = item.Count
		}
	}

	return stats, nil
}
