package constants

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued    JobStatus = "QUEUED"     // queued for processing
	JobStatusRunning   JobStatus = "RUNNING"    // in progress
	JobStatusExtracted JobStatus = "EXTRACT_OK" // session finished with records
	JobStatusEmpty     JobStatus = "EMPTY"      // session finished, every strategy exhausted
	JobStatusFailed    JobStatus = "FAILED"     // terminal failure outside the session
)

var allJobStatuses = []JobStatus{
	JobStatusQueued,
	JobStatusRunning,
	JobStatusExtracted,
	JobStatusEmpty,
	JobStatusFailed,
}

// JobStatusesAsStringSlice returns the stable status values for enum
// validation at the schema layer.
func JobStatusesAsStringSlice() []string {
	result := make([]string, len(allJobStatuses))
	for i, s := range allJobStatuses {
		result[i] = string(s)
	}
	return result
}
