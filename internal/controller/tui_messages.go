package controller

import (
	m "github.com/mouse-blink/flagstrip/internal/model"
)

// Message types.
type warningsMsg struct {
	warnings []string
}

type runInfoMsg struct {
	info RunInfo
}

type outcomeMsg struct {
	outcome m.Outcome
}

type summaryMsg struct {
	report m.Report
}

type featuresMsg struct {
	listing FeatureListing
}

// List item types.
type outcomeItem struct {
	path         string
	status       m.OutcomeStatus
	linesRemoved int
	passes       int
	message      string
}

func (o outcomeItem) FilterValue() string {
	return o.path + " " + string(o.status)
}

type featureItem struct {
	name  string
	class string
}

func (f featureItem) FilterValue() string {
	return f.name
}
