// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Photo is a picture posted by a user. It is owned exclusively by the user
// referenced in UserID; the owner never changes after creation.
type Photo struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Caption        string    `json:"caption"`
	PosterImageURL string    `json:"poster_image_url"`
	UserID         int64     `json:"UserId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Photo model.
func (p Photo) TableName() string {
	return "photos"
}

// OwnerID returns the id of the user owning the photo.
func (p Photo) OwnerID() int64 {
	return p.UserID
}

// PhotoWithRelations is a photo of the public feed enriched with its owner
// and every comment left on it.
type PhotoWithRelations struct {
	Photo
	User     UserProfile    `json:"User"`
	Comments []FeedComment `json:"Comments"`
}

// FeedComment is a comment as shown under a photo in the feed.
type FeedComment struct {
	Text string   `json:"comment"`
	User UserName `json:"User"`
}

// PhotoSummary is the part of a photo embedded into comment listings.
type PhotoSummary struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Caption        string `json:"caption"`
	PosterImageURL string `json:"poster_image_url"`
}

// PhotoInput is the payload for photo creation.
type PhotoInput struct {
	Title          string `json:"title"`
	Caption        string `json:"caption"`
	PosterImageURL string `json:"poster_image_url"`
}

// PhotoUpdate describes a partial photo update.
// Only non-nil fields are written.
type PhotoUpdate struct {
	Title          *string `json:"title,omitempty"`
	Caption        *string `json:"caption,omitempty"`
	PosterImageURL *string `json:"poster_image_url,omitempty"`
}
