package services

import "context"

type nopLogger struct{}

func (nopLogger) Info(string)                                           {}
func (nopLogger) InfoWithFields(string, map[string]interface{})         {}
func (nopLogger) Error(error, string)                                   {}
func (nopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (nopLogger) Debug(string)                                          {}
func (nopLogger) DebugWithFields(string, map[string]interface{})        {}
func (nopLogger) Warn(string)                                           {}
func (nopLogger) WarnWithFields(string, map[string]interface{})         {}

type fakeTextGenerator struct {
	complete func(ctx context.Context, prompt string) (string, error)
}

func (f *fakeTextGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	return f.complete(ctx, prompt)
}

type goroutineDispatcher struct{}

func (goroutineDispatcher) Submit(task func()) error {
	go task()
	return nil
}
