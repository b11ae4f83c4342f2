// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Comment is a text left by a user under a photo. The comment belongs to the
// commenting user, not to the owner of the photo.
type Comment struct {
	ID        int64     `json:"id"`
	Text      string    `json:"comment"`
	UserID    int64     `json:"UserId"`
	PhotoID   int64     `json:"PhotoId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}

// OwnerID returns the id of the user who wrote the comment.
func (c Comment) OwnerID() int64 {
	return c.UserID
}

// CommentWithRelations is a comment enriched with the commented photo and
// its author, as returned by the comment listing.
type CommentWithRelations struct {
	Comment
	Photo PhotoSummary `json:"Photo"`
	User  UserContact  `json:"User"`
}

// CommentInput is the payload for comment creation.
type CommentInput struct {
	Text    string `json:"comment"`
	PhotoID int64  `json:"PhotoId"`
}

// CommentUpdate describes a partial comment update.
type CommentUpdate struct {
	Text *string `json:"comment,omitempty"`
}
