package core

import "context"

type OptionKey string

const (
	ProcessOptionKey OptionKey = "process_options"
	WorkerOptionKey  OptionKey = "worker_options"
)

type WorkerOptions struct {
	MaxCount int
}

type ProcessOptions struct {
	ProcessRemaining bool
}

func WithProcessOptions(ctx context.Context, processRemaining bool) context.Context {
	return context.WithValue(ctx, ProcessOptionKey, ProcessOptions{ProcessRemaining: processRemaining})
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxCount: maxWorkers})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	if options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions); ok {
		return options.MaxCount
	}
	return defaultMaxWorkers
}

func IsProcessRemainingEnabled(ctx context.Context, defaultProcessRemaining bool) bool {
	if options, ok := ctx.Value(ProcessOptionKey).(ProcessOptions); ok {
		return options.ProcessRemaining
	}
	return defaultProcessRemaining
}
