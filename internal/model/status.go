// Package model defines the core domain models used throughout the application.
package model

// Status classifies an extracted value against its reference range.
type Status string

// Classification status constants.
const (
	StatusLow    Status = "Low"
	StatusNormal Status = "Normal"
	StatusHigh   Status = "High"
	// StatusUnknown is only possible when a value arrives without
	// reference bounds; catalog-driven results never carry it.
	StatusUnknown Status = "Unknown"
)

// ReportType identifies the category of a scanned medical report.
type ReportType string

// Report type constants, in detection precedence order.
const (
	ReportTypeEEG ReportType = "EEG Report"
	ReportTypeMRI ReportType = "MRI Report"
	ReportTypeECG ReportType = "ECG Report"
	ReportTypeLab ReportType = "Lab Report"
)
