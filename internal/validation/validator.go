package validation

import (
	"regexp"
	"strings"

	"github.com/magazine-platform/internal/models"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// MinPasswordLength matches the original admin signup rule.
const MinPasswordLength = 6

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidateArticle checks an article payload. Title, excerpt, content,
// author, category, image and read time are required; date, trending,
// tags and takeaways are optional.
func ValidateArticle(in *models.ArticleInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, ValidationError{Field: "title", Message: "title is required"})
	}
	if strings.TrimSpace(in.Excerpt) == "" {
		errs = append(errs, ValidationError{Field: "excerpt", Message: "excerpt is required"})
	}
	if strings.TrimSpace(in.Content) == "" {
		errs = append(errs, ValidationError{Field: "content", Message: "content is required"})
	}
	if strings.TrimSpace(in.Author) == "" {
		errs = append(errs, ValidationError{Field: "author", Message: "author is required"})
	}
	if strings.TrimSpace(in.Category) == "" {
		errs = append(errs, ValidationError{Field: "category", Message: "category is required"})
	}
	if strings.TrimSpace(in.Image) == "" {
		errs = append(errs, ValidationError{Field: "image", Message: "image URL is required"})
	}
	if strings.TrimSpace(in.ReadTime) == "" {
		errs = append(errs, ValidationError{Field: "readTime", Message: "read time is required"})
	}

	return errs
}

// ValidateCategory checks a category payload. Slugs must be kebab-case
// because they double as URL fragments.
func ValidateCategory(c *models.Category) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "name is required"})
	}
	if c.Slug == "" {
		errs = append(errs, ValidationError{Field: "slug", Message: "slug is required"})
	} else if !slugRegex.MatchString(c.Slug) {
		errs = append(errs, ValidationError{
			Field:   "slug",
			Message: "slug must be kebab-case (lowercase letters, numbers, hyphens)",
			Value:   c.Slug,
		})
	}

	return errs
}

// ValidateComment checks a comment or reply payload. Commenting is
// unauthenticated, so author is free text but still required.
func ValidateComment(in *models.CommentInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(in.Author) == "" {
		errs = append(errs, ValidationError{Field: "author", Message: "author is required"})
	}
	if strings.TrimSpace(in.Text) == "" {
		errs = append(errs, ValidationError{Field: "text", Message: "text is required"})
	}

	return errs
}

// ValidateRegistration checks an admin signup payload.
func ValidateRegistration(in *models.RegisterInput) []ValidationError {
	var errs []ValidationError

	if in.Email == "" {
		errs = append(errs, ValidationError{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(in.Email) {
		errs = append(errs, ValidationError{Field: "email", Message: "invalid email format", Value: in.Email})
	}
	if in.Password == "" {
		errs = append(errs, ValidationError{Field: "password", Message: "password is required"})
	} else if len(in.Password) < MinPasswordLength {
		errs = append(errs, ValidationError{Field: "password", Message: "password must be at least 6 characters"})
	}
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "name is required"})
	}

	return errs
}

// ValidateCancellation checks a subscription cancellation payload.
func ValidateCancellation(in *models.CancellationInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(in.Reason) == "" {
		errs = append(errs, ValidationError{Field: "reason", Message: "reason is required"})
	}

	return errs
}
