package store

import (
	"context"
	"errors"
	"time"

	"github.com/ekremtas/lingopyr/internal/llm"
	"github.com/ekremtas/lingopyr/internal/stepgen"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a conditional update matched no rows,
	// usually because another writer got there first or the record is
	// already completed.
	ErrConflict = errors.New("conflict")
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// UserRecord is a learner profile row.
type UserRecord struct {
	ID               string
	Username         string
	Level            string
	LearningLanguage string
	SystemLanguage   string
	Purpose          string
	XP               int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ProfileUpdate carries the mutable profile fields. Nil pointers leave
// the current value untouched.
type ProfileUpdate struct {
	Level            *string
	LearningLanguage *string
	SystemLanguage   *string
	Purpose          *string
}

// UserRepo manages learner profiles.
type UserRepo interface {
	// Create persists a new user and fills in the generated ID.
	Create(ctx context.Context, rec *UserRecord) error

	// Get loads a user by ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (*UserRecord, error)

	// GetByUsername loads a user by username. Returns ErrNotFound if absent.
	GetByUsername(ctx context.Context, username string) (*UserRecord, error)

	// GetOrCreate loads the user with the given username, creating a
	// default profile on first use.
	GetOrCreate(ctx context.Context, username string) (*UserRecord, error)

	// UpdateProfile applies the non-nil fields of upd.
	UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*UserRecord, error)

	// AddXP atomically increments the user's XP total.
	AddXP(ctx context.Context, id string, delta int) error
}

// PyramidRecord is one stored pyramid session.
type PyramidRecord struct {
	ID               string
	UserID           string
	Level            string
	LearningLanguage string
	SystemLanguage   string
	Purpose          string
	TotalSteps       int
	StepKinds        []string
	Steps            []stepgen.Step
	LastStepIndex    int
	Completed        bool
	EventID          string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ListOpts filters and paginates pyramid listings.
type ListOpts struct {
	Completed *bool // nil = both
	Limit     int   // 0 = default page size
	Offset    int
}

// PyramidRepo manages pyramid sessions.
type PyramidRepo interface {
	// Create persists a new pyramid and fills in the generated ID.
	Create(ctx context.Context, rec *PyramidRecord) error

	// Get loads a pyramid by ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (*PyramidRecord, error)

	// List returns the user's pyramids newest first.
	List(ctx context.Context, userID string, opts ListOpts) ([]*PyramidRecord, error)

	// SaveSelection overwrites the step slice of an open pyramid,
	// recording the learner's option choice. Returns ErrConflict when
	// the pyramid is already completed.
	SaveSelection(ctx context.Context, id string, steps []stepgen.Step) error

	// AppendStep writes the step slice and advances last_step_index,
	// but only when the pyramid is open and still at expectedLast.
	// Returns ErrConflict when another append won the race.
	AppendStep(ctx context.Context, id string, expectedLast int, steps []stepgen.Step) error

	// SetEventID links the pyramid to its activity event.
	SetEventID(ctx context.Context, id, eventID string) error

	// MarkCompleted flips the pyramid to completed. Returns ErrConflict
	// when it already was.
	MarkCompleted(ctx context.Context, id string) error

	// Delete removes the pyramid if it belongs to userID.
	// Returns ErrNotFound otherwise.
	Delete(ctx context.Context, id, userID string) error
}

// LLMEventRecord is a stored LLM request event, bodies included.
type LLMEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// PurposeUsage aggregates LLM token usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM token usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
// It satisfies llm.RequestLogger so it can sit behind the logging
// middleware directly.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, log llm.RequestLog) error

	// QueryLLMEvents lists events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEventRecord, error)

	// GetLLMEvent loads one event with its full request/response bodies.
	// Returns nil when the ID does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
