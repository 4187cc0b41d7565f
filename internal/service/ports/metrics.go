package ports

import "time"

type BackendMetrics interface {
	ObserveBackendCall(op string, elapsed time.Duration, err error)
}
