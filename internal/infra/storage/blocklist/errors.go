package blocklist

import "errors"

var (
	// ErrBlockNotFound блокировка с указанным ID не существует
	ErrBlockNotFound = errors.New("blocklist.repository: blocked slot not found")

	ErrBuildQuery = errors.New("blocklist.repository: failed to build query")
	ErrExecQuery  = errors.New("blocklist.repository: failed to execute query")
	ErrScanRow    = errors.New("blocklist.repository: failed to scan row")
)
