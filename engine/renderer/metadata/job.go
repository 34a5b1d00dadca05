package metadata

/**
 * @brief Describes a job to be run on the job system's workers.
 */
type JobTask struct {
	/** @brief Used in logs when the job fails. */
	Name string
	/** @brief Invoked when the job starts. Required. */
	OnStart func() error
	/** @brief Invoked when OnStart succeeds. Optional. */
	OnComplete func()
	/** @brief Invoked with the error OnStart returned. Optional. */
	OnFailure func(err error)
	/** @brief Invoked after OnComplete or OnFailure. Optional. */
	OnCompletionCallback func()
}

// JobSubmitter queues jobs for background execution.
type JobSubmitter interface {
	Submit(job JobTask) error
}
