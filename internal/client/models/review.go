package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Sentiment is a server-computed classification of review text. The client
// consumes it read-only.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Rating is a 1..5 review score. The server serializes it as a decimal
// string ("4.0"); older payloads carry a plain number. Both forms decode
// into the integer value.
type Rating int

func (r *Rating) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*r = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*r = Rating(f)
	return nil
}

func (r Rating) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(r))
}

// ReviewUser is the nested author record attached to a review.
type ReviewUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Review is a server-owned review belonging to exactly one book.
// Sentiment and RelativeTime are computed server-side; the client never
// derives them from local input.
type Review struct {
	ID           int64      `json:"id"`
	Rating       Rating     `json:"rating"`
	Comment      string     `json:"comment"`
	Sentiment    string     `json:"sentiment"`
	User         ReviewUser `json:"user"`
	CreatedAt    string     `json:"created_at"`
	UpdatedAt    string     `json:"updated_at"`
	RelativeTime string     `json:"relative_time"`
}

// ReviewDraft is the client-side input for creating or editing a review.
type ReviewDraft struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
