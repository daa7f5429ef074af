package model

import "time"

// Lead is a prospect picked up from social media monitoring.
type Lead struct {
	ID            string    `db:"id" json:"id"`
	TwitterID     string    `db:"twitter_id" json:"twitterId"`
	Username      string    `db:"username" json:"username"`
	Name          string    `db:"name" json:"name"`
	Bio           string    `db:"bio" json:"bio,omitempty"`
	Tweet         string    `db:"tweet" json:"tweet"`
	FollowerCount int       `db:"follower_count" json:"followerCount"`
	Topics        []string  `db:"topics" json:"topics"`
	Status        string    `db:"status" json:"status"` // new, contacted, converted
	Notes         string    `db:"notes" json:"notes,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}
