package store

import (
	"time"

	"github.com/MKhiriev/my-gram/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns = []string{
		"id", "email", "full_name", "username", "password",
		"profile_image_url", "age", "phone_number", "created_at", "updated_at",
	}
	photoColumns = []string{
		"id", "title", "caption", "poster_image_url", "user_id", "created_at", "updated_at",
	}
	commentColumns = []string{
		"id", "comment", "user_id", "photo_id", "created_at", "updated_at",
	}
	socialMediaColumns = []string{
		"id", "name", "social_media_url", "user_id", "created_at", "updated_at",
	}
)

// timestamp returns the current time at the precision every supported
// database keeps, so values written and read back compare equal.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func buildSelectByIDQuery(b sq.StatementBuilderType, table string, columns []string, id int64) (string, []any, error) {
	return b.Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteByIDQuery(b sq.StatementBuilderType, table string, id int64) (string, []any, error) {
	return b.Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(models.User{}.TableName()).
		Columns(userColumns[1:]...).
		Values(
			user.Email,
			user.FullName,
			user.Username,
			user.PasswordHash,
			user.ProfileImageURL,
			user.Age,
			user.PhoneNumber,
			user.CreatedAt,
			user.UpdatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, userID int64, update models.UserUpdate, now time.Time) (string, []any, error) {
	query := b.Update(models.User{}.TableName()).Set("updated_at", now)

	if update.Email != nil {
		query = query.Set("email", *update.Email)
	}
	if update.FullName != nil {
		query = query.Set("full_name", *update.FullName)
	}
	if update.Username != nil {
		query = query.Set("username", *update.Username)
	}
	if update.ProfileImageURL != nil {
		query = query.Set("profile_image_url", *update.ProfileImageURL)
	}
	if update.Age != nil {
		query = query.Set("age", *update.Age)
	}
	if update.PhoneNumber != nil {
		query = query.Set("phone_number", *update.PhoneNumber)
	}

	return query.Where(sq.Eq{"id": userID}).ToSql()
}

// ── photos ────────────────────────────────────────────────────────────────────

func buildInsertPhotoQuery(b sq.StatementBuilderType, photo models.Photo) (string, []any, error) {
	return b.Insert(models.Photo{}.TableName()).
		Columns(photoColumns[1:]...).
		Values(
			photo.Title,
			photo.Caption,
			photo.PosterImageURL,
			photo.UserID,
			photo.CreatedAt,
			photo.UpdatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdatePhotoQuery(b sq.StatementBuilderType, photoID int64, update models.PhotoUpdate, now time.Time) (string, []any, error) {
	query := b.Update(models.Photo{}.TableName()).Set("updated_at", now)

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.Caption != nil {
		query = query.Set("caption", *update.Caption)
	}
	if update.PosterImageURL != nil {
		query = query.Set("poster_image_url", *update.PosterImageURL)
	}

	return query.Where(sq.Eq{"id": photoID}).ToSql()
}

// buildSelectFeedPhotosQuery selects every photo joined with its owner.
func buildSelectFeedPhotosQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(
		"p.id", "p.title", "p.caption", "p.poster_image_url", "p.user_id", "p.created_at", "p.updated_at",
		"u.id", "u.username", "u.profile_image_url",
	).
		From("photos p").
		Join("users u ON u.id = p.user_id").
		OrderBy("p.id").
		ToSql()
}

// buildSelectFeedCommentsQuery selects the comments of the given photos
// joined with their authors' usernames.
func buildSelectFeedCommentsQuery(b sq.StatementBuilderType, photoIDs []int64) (string, []any, error) {
	return b.Select("c.photo_id", "c.comment", "u.username").
		From("comments c").
		Join("users u ON u.id = c.user_id").
		Where(sq.Eq{"c.photo_id": photoIDs}).
		OrderBy("c.id").
		ToSql()
}

// ── comments ──────────────────────────────────────────────────────────────────

func buildInsertCommentQuery(b sq.StatementBuilderType, comment models.Comment) (string, []any, error) {
	return b.Insert(models.Comment{}.TableName()).
		Columns(commentColumns[1:]...).
		Values(
			comment.Text,
			comment.UserID,
			comment.PhotoID,
			comment.CreatedAt,
			comment.UpdatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateCommentQuery(b sq.StatementBuilderType, commentID int64, update models.CommentUpdate, now time.Time) (string, []any, error) {
	query := b.Update(models.Comment{}.TableName()).Set("updated_at", now)

	if update.Text != nil {
		query = query.Set("comment", *update.Text)
	}

	return query.Where(sq.Eq{"id": commentID}).ToSql()
}

func buildSelectUserCommentsQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(
		"c.id", "c.comment", "c.user_id", "c.photo_id", "c.created_at", "c.updated_at",
		"p.id", "p.title", "p.caption", "p.poster_image_url",
		"u.id", "u.username", "u.profile_image_url", "u.phone_number",
	).
		From("comments c").
		Join("photos p ON p.id = c.photo_id").
		Join("users u ON u.id = c.user_id").
		Where(sq.Eq{"c.user_id": userID}).
		OrderBy("c.id").
		ToSql()
}

// ── social medias ─────────────────────────────────────────────────────────────

func buildInsertSocialMediaQuery(b sq.StatementBuilderType, socialMedia models.SocialMedia) (string, []any, error) {
	return b.Insert(models.SocialMedia{}.TableName()).
		Columns(socialMediaColumns[1:]...).
		Values(
			socialMedia.Name,
			socialMedia.SocialMediaURL,
			socialMedia.UserID,
			socialMedia.CreatedAt,
			socialMedia.UpdatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateSocialMediaQuery(b sq.StatementBuilderType, socialMediaID int64, update models.SocialMediaUpdate, now time.Time) (string, []any, error) {
	query := b.Update(models.SocialMedia{}.TableName()).Set("updated_at", now)

	if update.Name != nil {
		query = query.Set("name", *update.Name)
	}
	if update.SocialMediaURL != nil {
		query = query.Set("social_media_url", *update.SocialMediaURL)
	}

	return query.Where(sq.Eq{"id": socialMediaID}).ToSql()
}

func buildSelectUserSocialMediasQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(
		"s.id", "s.name", "s.social_media_url", "s.user_id", "s.created_at", "s.updated_at",
		"u.id", "u.username", "u.profile_image_url",
	).
		From("social_medias s").
		Join("users u ON u.id = s.user_id").
		Where(sq.Eq{"s.user_id": userID}).
		OrderBy("s.id").
		ToSql()
}
