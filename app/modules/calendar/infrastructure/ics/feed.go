// Package calendarics renders event listings as iCalendar feeds.
package calendarics

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	calendarservice "github.com/Black-And-White-Club/roomly/app/modules/calendar/application"
)

const (
	productID = "-//Roomly//Calendar//EN"
	uidDomain = "@roomly"

	utcLayout   = "20060102T150405Z"
	localLayout = "20060102T150405"
)

// ContentType is the media type of a rendered feed.
const ContentType = "text/calendar; charset=utf-8"

// Render builds a PUBLISH calendar from views. Occurrences keep their own id
// as the UID so every instance is addressable.
func Render(views []calendarservice.EventView, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName("Roomly")

	for _, v := range views {
		ev := cal.AddEvent(v.ID + uidDomain)
		ev.SetDtStampTime(stamp.UTC())
		ev.SetSummary(v.Title)
		if v.RRule != nil {
			setSeriesTimes(ev, v)
		} else {
			if v.Start != nil {
				ev.SetStartAt(v.Start.UTC())
			}
			if v.End != nil {
				ev.SetEndAt(v.End.UTC())
			}
		}
		if v.Description != nil && *v.Description != "" {
			ev.SetDescription(*v.Description)
		}
		if v.RoomCode != nil {
			ev.SetLocation(*v.RoomCode)
		}
		if v.RRule != nil {
			ev.AddProperty(ical.ComponentPropertyRrule, *v.RRule)
		}
		ev.AddProperty(ical.ComponentPropertyCategories, v.EventType)
		ev.SetStatus(statusOf(v.Status))
	}
	return cal.Serialize()
}

// setSeriesTimes writes DTSTART as local time with a TZID so clients apply
// the RRULE in the event's own zone. A stored duration becomes DURATION,
// otherwise the end is written as DTEND in the same zone.
func setSeriesTimes(ev *ical.VEvent, v calendarservice.EventView) {
	if v.Start == nil {
		return
	}
	zone := v.Start.Location().String()
	local := zone != "UTC" && zone != "Local"
	setLocal := func(prop ical.ComponentProperty, t time.Time) {
		if !local {
			ev.SetProperty(prop, t.UTC().Format(utcLayout))
			return
		}
		ev.SetProperty(prop, t.In(v.Start.Location()).Format(localLayout), ical.WithTZID(zone))
	}

	setLocal(ical.ComponentPropertyDtStart, *v.Start)
	if v.Duration != nil {
		if d, ok := isoDuration(*v.Duration); ok {
			ev.SetProperty(ical.ComponentPropertyDuration, d)
			return
		}
	}
	if v.End != nil {
		setLocal(ical.ComponentPropertyDtEnd, *v.End)
	}
}

// isoDuration converts "HH:MM" into an RFC 5545 duration such as "PT1H30M".
func isoDuration(hhmm string) (string, bool) {
	h, m, ok := strings.Cut(hhmm, ":")
	if !ok {
		return "", false
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 {
		return "", false
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || hours+minutes == 0 {
		return "", false
	}
	var b strings.Builder
	b.WriteString("PT")
	if hours > 0 {
		fmt.Fprintf(&b, "%dH", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%dM", minutes)
	}
	return b.String(), true
}

func statusOf(status string) ical.ObjectStatus {
	switch status {
	case "approved":
		return ical.ObjectStatusConfirmed
	case "pending":
		return ical.ObjectStatusTentative
	default:
		return ical.ObjectStatusCancelled
	}
}
