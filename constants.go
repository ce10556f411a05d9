package main

import "time"

type Mode int

const (
	ModeLoading Mode = iota
	ModeForm
	ModeGreeting
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "LOADING"
	case ModeForm:
		return "FORM"
	case ModeGreeting:
		return "GREETING"
	default:
		return "UNKNOWN"
	}
}

const (
	confettiCount = 50
	balloonCount  = 8

	confettiStartY  = -10.0
	confettiMaxVX   = 4.0
	confettiMinVY   = 2.0
	confettiMaxVY   = 5.0
	confettiMinSize = 4.0
	confettiMaxSize = 12.0

	balloonMinSize       = 60.0
	balloonMaxSize       = 100.0
	balloonMaxDelay      = 2.0
	balloonMinFloatSpeed = 1.0
	balloonMaxFloatSpeed = 3.0

	gravity    = 0.1
	cullMargin = 100.0

	defaultTickInterval = 50 * time.Millisecond
	defaultViewWidth    = 1200.0
	defaultViewHeight   = 800.0

	// Pixel size of one terminal cell. The PNG exporter uses the same metrics.
	cellWidth  = 8.0
	cellHeight = 16.0
)

var palette = []string{
	"#FF6B6B",
	"#4ECDC4",
	"#45B7D1",
	"#96CEB4",
	"#FFEAA7",
	"#DDA0DD",
	"#98D8C8",
}

const (
	greetingTitle   = "Happy Birthday!"
	greetingMessage = "May your special day be filled with joy, laughter, and wonderful memories.\nHere's to another amazing year ahead!"
	formTitle       = "Birthday Wishes"
	formSubtitle    = "Create a special birthday greeting for someone special!"
	formLabel       = "Enter their name:"
	formPlaceholder = "e.g., Sarah, Mom, Best Friend..."
	submitLabel     = "Create Birthday Greeting"
	resetLabel      = "Create Another Greeting"
	loadingText     = "Loading..."
	settledText     = "the confetti has settled"
)
