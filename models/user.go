// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and as the owner
// of photos, comments and social media links.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user generated by the database.
	ID int64 `json:"id"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// FullName is the display name of the user.
	FullName string `json:"full_name"`

	// Username is the public nickname shown next to photos and comments.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized to JSON.
	PasswordHash string `json:"-"`

	// ProfileImageURL is a link to the user's avatar.
	ProfileImageURL string `json:"profile_image_url"`

	// Age of the user in full years.
	Age int `json:"age"`

	// PhoneNumber is the user's contact phone.
	PhoneNumber string `json:"phone_number"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last profile change.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// OwnerID returns the user's own id: a user is the owner of their account.
func (u User) OwnerID() int64 {
	return u.ID
}

// UserProfile is the public part of a user embedded into photo feeds and
// social media listings.
type UserProfile struct {
	ID              int64  `json:"id"`
	Username        string `json:"username"`
	ProfileImageURL string `json:"profile_image_url"`
}

// UserContact is the part of a user embedded into comment listings.
type UserContact struct {
	ID              int64  `json:"id"`
	Username        string `json:"username"`
	ProfileImageURL string `json:"profile_image_url"`
	PhoneNumber     string `json:"phone_number"`
}

// UserName is the minimal user projection embedded into feed comments.
type UserName struct {
	Username string `json:"username"`
}

// RegisterRequest is the payload of the registration endpoint.
type RegisterRequest struct {
	Email           string `json:"email"`
	FullName        string `json:"full_name"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ProfileImageURL string `json:"profile_image_url"`
	Age             int    `json:"age"`
	PhoneNumber     string `json:"phone_number"`
}

// LoginRequest is the payload of the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUpdate describes a partial profile update.
// Only non-nil fields are written; the password cannot be changed here.
type UserUpdate struct {
	Email           *string `json:"email,omitempty"`
	FullName        *string `json:"full_name,omitempty"`
	Username        *string `json:"username,omitempty"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
	Age             *int    `json:"age,omitempty"`
	PhoneNumber     *string `json:"phone_number,omitempty"`
}
