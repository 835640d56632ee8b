package leetcode

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func statsPayload(buckets ...map[string]interface{}) string {
	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"matchedUser": map[string]interface{}{
				"username": "someone",
				"submitStats": map[string]interface{}{
					"acSubmissionNum": buckets,
				},
			},
		},
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}

func TestFetchStatsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body struct {
			Query     string            `json:"query"`
			Variables map[string]string `json:"variables"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body.Query, "matchedUser")
		assert.Equal(t, "someone", body.Variables["username"])

		w.Write([]byte(statsPayload(
			map[string]interface{}{"difficulty": "All", "count": 17},
			map[string]interface{}{"difficulty": "Easy", "count": 10},
			map[string]interface{}{"difficulty": "Medium", "count": 5},
			map[string]interface{}{"difficulty": "Hard", "count": 2},
		)))
	}))
	defer srv.Close()

	stats, err := NewHTTPClient(srv.URL).FetchStats("someone")
	assert.NoError(t, err)
	assert.Equal(t, &Stats{Easy: 10, Medium: 5, Hard: 2}, stats)
}

func TestFetchStatsMissingTiersDefaultToZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(statsPayload(
			map[string]interface{}{"difficulty": "Easy", "count": 4},
		)))
	}))
	defer srv.Close()

	stats, err := NewHTTPClient(srv.URL).FetchStats("someone")
	assert.NoError(t, err)
	assert.Equal(t, &Stats{Easy: 4, Medium: 0, Hard: 0}, stats)
}

// Every failure mode must be indistinguishable to the caller.
func TestFetchStatsFailureModes(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"http 404", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}},
		{"http 500", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"empty body", func(w http.ResponseWriter, r *http.Request) {
			// 200 with no payload
		}},
		{"malformed json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data": {`))
		}},
		{"unknown user", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data": {"matchedUser": null}}`))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			stats, err := NewHTTPClient(srv.URL).FetchStats("someone")
			assert.Nil(t, stats)
			assert.ErrorIs(t, err, ErrStatsUnavailable)
		})
	}
}

func TestFetchStatsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(statsPayload()))
	}))
	defer srv.Close()

	client := &HTTPClient{
		url:    srv.URL,
		client: &http.Client{Timeout: 50 * time.Millisecond},
	}

	stats, err := client.FetchStats("someone")
	assert.Nil(t, stats)
	assert.ErrorIs(t, err, ErrStatsUnavailable)
}

func TestFetchStatsUnreachableHost(t *testing.T) {
	// Closed server: connection refused
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	stats, err := NewHTTPClient(srv.URL).FetchStats("someone")
	assert.Nil(t, stats)
	assert.ErrorIs(t, err, ErrStatsUnavailable)
}
