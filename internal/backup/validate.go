package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/models"
)

// UserInput is a user read from a snapshot. Snapshots written elsewhere may carry a credential hash,
// exports of this service never do.
type UserInput struct {
	UserRecord

	Password       string `json:"password"`
	CredentialHash string `json:"credentialHash"`
}

// credential returns the hash carried by the document, if any.
func (u UserInput) credential() string {
	if u.CredentialHash != "" {
		return u.CredentialHash
	}

	return u.Password
}

// DocumentData is the data section of a snapshot being restored.
type DocumentData struct {
	Categories     []models.Category       `json:"categories" validate:"dive"`
	Users          []UserInput             `json:"users" validate:"dive"`
	Media          []models.Media          `json:"media" validate:"dive"`
	SystemSettings []models.SystemSettings `json:"systemSettings"`
}

// Records returns the number of rows in the data section.
func (d *DocumentData) Records() int {
	return len(d.Categories) + len(d.Users) + len(d.Media) + len(d.SystemSettings)
}

// Document is a snapshot being restored.
type Document struct {
	Metadata Metadata      `json:"metadata"`
	Data     *DocumentData `json:"data"`
}

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals

// Decode parses and validates a snapshot. Every failure wraps ErrInvalidSnapshot.
func Decode(body []byte) (*Document, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrInvalidSnapshot)
	}

	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSnapshot, describeJSONError(err))
	}

	if doc.Data == nil {
		return nil, fmt.Errorf("%w: missing data section", ErrInvalidSnapshot)
	}

	// metadata is informational, a document is judged by its data alone
	if v := doc.Metadata.Version; v != "" && !strings.HasPrefix(v, "1.") && v != "1" {
		log.Warn().Str("version", v).Msg("restoring a snapshot of an unknown version")
	}

	if err := validate.Struct(doc.Data); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSnapshot, describeValidationError(err))
	}

	if total := doc.Metadata.TotalRecords; total != 0 && total != doc.Data.Records() {
		log.Warn().Int("announced", total).Int("found", doc.Data.Records()).
			Msg("snapshot metadata total records differs from its data")
	}

	return &doc, nil
}

func describeJSONError(err error) string {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset)
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "document"
		}

		return fmt.Sprintf("%s must be %s, not %s", field, describeKind(typeErr.Type.Kind().String()), typeErr.Value)
	default:
		return err.Error()
	}
}

func describeKind(kind string) string {
	switch kind {
	case "slice", "array":
		return "an array"
	case "struct", "map", "ptr":
		return "an object"
	default:
		return "a " + kind
	}
}

func describeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		// DocumentData.Media[0].Title reads better as data.Media[0].Title
		path := strings.Replace(fe.Namespace(), "DocumentData.", "data.", 1)

		switch fe.Tag() {
		case "required":
			problems = append(problems, path+" is required")
		case "oneof":
			problems = append(problems, fmt.Sprintf("%s must be one of [%s], got %q", path, fe.Param(), fe.Value()))
		default:
			problems = append(problems, fmt.Sprintf("%s failed %s", path, fe.Tag()))
		}
	}

	return strings.Join(problems, "; ")
}
