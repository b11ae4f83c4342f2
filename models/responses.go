// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserResponse wraps a user profile: {"user": {...}}.
type UserResponse struct {
	User User `json:"user"`
}

// LoginResponse carries the issued access token: {"token": "..."}.
type LoginResponse struct {
	Token string `json:"token"`
}

// PhotoResponse wraps an updated photo: {"photo": {...}}.
type PhotoResponse struct {
	Photo Photo `json:"photo"`
}

// PhotosResponse is the public photo feed: {"photos": [...]}.
type PhotosResponse struct {
	Photos []PhotoWithRelations `json:"photos"`
}

// CommentResponse wraps a single comment: {"comment": {...}}.
type CommentResponse struct {
	Comment Comment `json:"comment"`
}

// CommentsResponse lists the requester's comments: {"comments": [...]}.
type CommentsResponse struct {
	Comments []CommentWithRelations `json:"comments"`
}

// SocialMediaResponse wraps a single social media link: {"social_media": {...}}.
type SocialMediaResponse struct {
	SocialMedia SocialMedia `json:"social_media"`
}

// SocialMediasResponse lists the requester's links: {"social_medias": [...]}.
type SocialMediasResponse struct {
	SocialMedias []SocialMediaWithUser `json:"social_medias"`
}

// MessageResponse carries a human-readable confirmation: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the single error envelope of the API:
// {"code": <http status>, "message": <string or field error list>}.
type ErrorResponse struct {
	Code    int `json:"code"`
	Message any `json:"message"`
}

// FieldError describes a single invalid field of a request payload.
type FieldError struct {
	// Path is the JSON name of the offending field.
	Path string `json:"path"`

	// Message explains why the value was rejected.
	Message string `json:"message"`
}
