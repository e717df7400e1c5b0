package reporter

// Reporter defines the interface for batch result reporting.
type Reporter interface {
	BatchStarted(info BatchStartInfo)
	FileChecked(report FileReport)
	FileFailed(path string, err error)
	RemediationStarted(start RemediationStart)
	RemediationProgress(progress ProgressSnapshot)
	RemediationComplete(outcome RemediationOutcome)
	Warning(message string)
	BatchComplete(summary BatchSummary)
}

// NullReporter is a no-op reporter that discards all updates.
type NullReporter struct{}

func (NullReporter) BatchStarted(BatchStartInfo)            {}
func (NullReporter) FileChecked(FileReport)                 {}
func (NullReporter) FileFailed(string, error)               {}
func (NullReporter) RemediationStarted(RemediationStart)    {}
func (NullReporter) RemediationProgress(ProgressSnapshot)   {}
func (NullReporter) RemediationComplete(RemediationOutcome) {}
func (NullReporter) Warning(string)                         {}
func (NullReporter) BatchComplete(BatchSummary)             {}
