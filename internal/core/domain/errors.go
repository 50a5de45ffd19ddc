package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyTaskID is returned when a task record has no identifier.
	ErrEmptyTaskID = zerr.New("task id is empty")

	// ErrDuplicateTaskID is returned when two task records share an identifier.
	ErrDuplicateTaskID = zerr.New("duplicate task id")

	// ErrUnknownPredecessor is returned when a task references a predecessor that is not in the task set.
	ErrUnknownPredecessor = zerr.New("unknown predecessor")

	// ErrCycleDetected is returned when the predecessor relation contains a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrNegativeDuration is returned when a task has a duration below zero.
	ErrNegativeDuration = zerr.New("negative duration")

	// ErrDurationOverflow is returned when the durations along a chain add up to more than an int holds.
	ErrDurationOverflow = zerr.New("total duration overflows")

	// ErrInconsistentSchedule is returned when start slack and finish slack of a task disagree.
	// It indicates a defect in the scheduling passes, not bad input.
	ErrInconsistentSchedule = zerr.New("inconsistent schedule")

	// ErrNoCriticalPathFound is returned when a non-empty schedule has no zero-slack chain.
	// It indicates a defect in the scheduling passes, not bad input.
	ErrNoCriticalPathFound = zerr.New("no critical path found")

	// ErrTaskNotFound is returned when a requested task is not in the graph.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrScheduleFailed is returned when scheduling one or more project files fails.
	ErrScheduleFailed = zerr.New("schedule failed")

	// ErrDeadlineExceeded is returned when the project duration overruns its declared deadline.
	ErrDeadlineExceeded = zerr.New("project duration exceeds deadline")

	// ErrConfigNotFound is returned when no project file can be found.
	ErrConfigNotFound = zerr.New("could not find crit.yaml or crit.toml")

	// ErrConfigReadFailed is returned when the project file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read project file")

	// ErrConfigParseFailed is returned when the project file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse project file")

	// ErrConfigInvalid is returned when the project file fails field validation.
	ErrConfigInvalid = zerr.New("invalid project file")

	// ErrUnsupportedVersion is returned when the project file declares an unknown schema version.
	ErrUnsupportedVersion = zerr.New("unsupported project file version")

	// ErrUnsupportedFormat is returned when a report format is not known.
	ErrUnsupportedFormat = zerr.New("unsupported report format")

	// ErrOutputWithMultipleFiles is returned when --output is combined with several project files.
	ErrOutputWithMultipleFiles = zerr.New("--output requires exactly one project file")

	// ErrStoreCreateFailed is returned when the report cache directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create report cache directory")

	// ErrStoreReadFailed is returned when a cached report cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read cached report")

	// ErrStoreUnmarshalFailed is returned when a cached report cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal cached report")

	// ErrStoreMarshalFailed is returned when a report cannot be encoded for the cache.
	ErrStoreMarshalFailed = zerr.New("failed to marshal report")

	// ErrStoreWriteFailed is returned when a report cannot be written to the cache.
	ErrStoreWriteFailed = zerr.New("failed to write cached report")

	// ErrRenderFailed is returned when a report cannot be written to its destination.
	ErrRenderFailed = zerr.New("failed to render report")

	// ErrWatchFailed is returned when the project files cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch project files")
)
