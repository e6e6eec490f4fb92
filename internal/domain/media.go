package domain

import (
	"time"

	"github.com/google/uuid"
)

// MediaType tags the kind of object stored externally. Only images exist
// today; the enum is validated at the boundary so unknown tags never
// reach the database.
type MediaType string

const (
	MediaTypeImage MediaType = "IMAGE"
)

func (t MediaType) Valid() bool {
	switch t {
	case MediaTypeImage:
		return true
	}
	return false
}

// Media is the application-side record of one uploaded object. PublicID
// is assigned by the object store and is the primary key. ServiceRefID
// stays nil while the object is orphaned (uploaded but not yet attached
// to an owning entity).
type Media struct {
	PublicID     string     `json:"public_id" db:"public_id"`
	MediaType    MediaType  `json:"media_type" db:"media_type"`
	URL          string     `json:"url" db:"url"`
	ServiceRefID *uuid.UUID `json:"service_ref_id,omitempty" db:"service_ref_id"`
	UploadedBy   string     `json:"uploaded_by" db:"uploaded_by"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

// AttachMediaOptions carries the optional immediate link target for
// AttachMedia. When ServiceRefID is set the media is linked in the same
// call and the upload is rolled back if linking fails.
type AttachMediaOptions struct {
	ServiceRefID *uuid.UUID
}

// UploadResult is what the media upload endpoint returns to the editor
// UI: public URLs plus the store-assigned identifiers the client echoes
// back on post create/update.
type UploadResult struct {
	Thumbnail  string `json:"thumbnail,omitempty"`
	ThumbID    string `json:"thumb_id,omitempty"`
	CoverImage string `json:"coverImage,omitempty"`
	CoverID    string `json:"cover_id,omitempty"`
}
