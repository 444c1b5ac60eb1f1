package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ParseRequest represents a request to parse a single resume file.
type ParseRequest struct {
	Path    string `json:"path" validate:"required,min=1"`
	OutPath string `json:"out_path,omitempty"`
	Pretty  bool   `json:"pretty,omitempty"`
	Summary bool   `json:"summary,omitempty"`
}

// BatchRequest represents a request to parse every supported resume in a directory.
type BatchRequest struct {
	Dir         string `json:"dir" validate:"required,min=1"`
	OutDir      string `json:"out_dir,omitempty"`
	Concurrency int    `json:"concurrency" validate:"gte=1"`
}

// BatchResult pairs one input path with its parse outcome. Err is nil on
// success; a failed document never blocks its siblings.
type BatchResult struct {
	Path   string
	Record *ResumeRecord
	Err    error
}

// BatchRun is the outcome of one batch invocation.
type BatchRun struct {
	RunID   uuid.UUID
	Results []BatchResult
}

// Validate validates the ParseRequest using the validator.
func (r *ParseRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BatchRequest using the validator.
func (r *BatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
