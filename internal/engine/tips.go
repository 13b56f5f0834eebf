package engine

import "time"

// Tips rotate deterministically by day so everyone sees the same tip on the
// same date.
var Tips = []string{
	"Set app limits for the two biggest time sinks.",
	"Charge your phone outside the bedroom to improve sleep.",
	"Create a tech-free zone at meals.",
	"Turn off non-essential notifications for 24 hours.",
	"Ask “Why am I opening my phone?” before you unlock.",
	"Schedule a 10-minute scroll window, not all day.",
	"Move distracting apps off your home screen.",
}

// TipOfTheDay returns the tip for now's day index.
func TipOfTheDay(now time.Time) string {
	dayIndex := int(now.UnixMilli()/(1000*60*60*24)) % len(Tips)
	return Tips[dayIndex]
}
