package boss

// LogMaskVal replaces sensitive values before they reach a log line.
const LogMaskVal = "xxxxxx"
