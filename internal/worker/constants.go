package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanicked = "Worker job panicked"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
