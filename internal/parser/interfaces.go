package parser

// Reporter receives problems that do not stop parsing; *utils.DiagnosticSystem satisfies it
type Reporter interface {
	Warn(format string, args ...interface{})
}

type nopReporter struct{}

func (nopReporter) Warn(string, ...interface{}) {}
