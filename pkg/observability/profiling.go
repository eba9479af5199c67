package observability

import (
	"os"
	"runtime"

	pyroscope "github.com/grafana/pyroscope-go"

	"highlight-vmaf-service/pkg/logger"
)

// StartProfiling attaches continuous profiling when a pyroscope server is
// configured. A missing PYROSCOPE_SERVER_ADDRESS disables it silently so
// local runs need no setup.
func StartProfiling(appName string) {
	serverAddr := os.Getenv("PYROSCOPE_SERVER_ADDRESS")
	if serverAddr == "" {
		return
	}

	runtime.SetMutexProfileFraction(5)
	runtime.SetBlockProfileRate(5)

	_, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: appName,
		ServerAddress:   serverAddr,
		Logger:          nil,
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
			pyroscope.ProfileMutexCount,
			pyroscope.ProfileMutexDuration,
			pyroscope.ProfileBlockCount,
			pyroscope.ProfileBlockDuration,
		},
	})
	if err != nil {
		logger.Warnf("Failed to start pyroscope profiling error=%v", err)
	}
}
