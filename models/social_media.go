// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SocialMedia is a link to one of the user's social network profiles.
type SocialMedia struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	SocialMediaURL string    `json:"social_media_url"`
	UserID         int64     `json:"UserId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the SocialMedia model.
func (s SocialMedia) TableName() string {
	return "social_medias"
}

// OwnerID returns the id of the user owning the link.
func (s SocialMedia) OwnerID() int64 {
	return s.UserID
}

// SocialMediaWithUser is a social media link enriched with its owner.
type SocialMediaWithUser struct {
	SocialMedia
	User UserProfile `json:"User"`
}

// SocialMediaInput is the payload for social media creation.
type SocialMediaInput struct {
	Name           string `json:"name"`
	SocialMediaURL string `json:"social_media_url"`
}

// SocialMediaUpdate describes a partial social media update.
type SocialMediaUpdate struct {
	Name           *string `json:"name,omitempty"`
	SocialMediaURL *string `json:"social_media_url,omitempty"`
}
