package generator

import (
	"log/slog"
	"time"

	"github.com/balkashynov/trackgen/internal/models"
)

const (
	weekendSkipChance = 0.7
	projectChance     = 0.7
	taskChance        = 0.6
	manualEntryChance = 0.05
	screenshotChance  = 0.8

	minSessionsPerDay = 2
	maxSessionsPerDay = 8

	minDurationMinutes = 5
	maxDurationMinutes = 180

	firstStartHour = 8
	lastStartHour  = 17

	// keyboard and mouse counters stay at zero for idle sessions
	idleActivityThreshold = 30

	progressEveryDays = 30
)

// Window is the inclusive range of simulated calendar days
type Window struct {
	Start time.Time
	End   time.Time
}

// Days returns the number of days between start and end
func (w Window) Days() int {
	return int(w.End.Sub(w.Start).Hours() / 24)
}

// Catalog is the dimension data sessions reference
type Catalog struct {
	Users        []models.User
	Applications []models.Application
	Projects     []models.Project
	Tasks        []models.Task
}

// GenerateSessions walks every day of the window and emits sessions for the
// users whose profile makes them active that day.
func GenerateSessions(r *Rand, w Window, cat Catalog, profiles Profiles, logger *slog.Logger) []models.Session {
	weights := make([]float64, len(cat.Applications))
	for i, app := range cat.Applications {
		weights[i] = classificationWeight[app.Classification]
	}
	pickApp := r.Weighted(weights)
	projectTasks := tasksByProject(cat.Tasks)

	var sessions []models.Session
	next := 1

	for day := w.Start; !day.After(w.End); day = day.AddDate(0, 0, 1) {
		if isWeekend(day) && r.Chance(weekendSkipChance) {
			continue
		}

		for _, u := range cat.Users {
			p, ok := profiles[u.UserID]
			if !ok || !p.Active(day) {
				continue
			}
			if skip, gated := skipProbability[p.Tier]; gated && r.Chance(skip) {
				continue
			}

			count := r.IntRange(minSessionsPerDay, maxSessionsPerDay)
			for i := 0; i < count; i++ {
				s := newSession(r, day, p, cat.Applications[pickApp()], cat.Projects, projectTasks)
				s.SessionID = sessionID(next)
				sessions = append(sessions, s)
				next++
			}
		}

		elapsed := int(day.AddDate(0, 0, 1).Sub(w.Start).Hours() / 24)
		if total := w.Days(); total > 0 && elapsed%progressEveryDays == 0 && logger != nil {
			pct := float64(elapsed) / float64(total) * 100
			logger.Info("generating sessions", "progress_pct", int(pct), "sessions", len(sessions))
		}
	}

	return sessions
}

func newSession(r *Rand, day time.Time, p Profile, app models.Application, projects []models.Project, projectTasks map[string][]models.Task) models.Session {
	// most sessions run 15-60 minutes
	duration := clamp(r.LogNormal(3, 0.8), minDurationMinutes, maxDurationMinutes)

	start := time.Date(day.Year(), day.Month(), day.Day(),
		r.IntRange(firstStartHour, lastStartHour), r.IntRange(0, 59), 0, 0, time.UTC)

	s := models.Session{
		UserID:         p.UserID,
		AccountID:      p.AccountID,
		AppID:          app.AppID,
		Date:           truncateDay(day),
		StartTimestamp: start,
	}

	if r.Chance(projectChance) && len(projects) > 0 {
		proj := Pick(r, projects)
		s.ProjectID = &proj.ProjectID
		if tasks := projectTasks[proj.ProjectID]; len(tasks) > 0 && r.Chance(taskChance) {
			task := Pick(r, tasks)
			s.TaskID = &task.TaskID
		}
	}

	activity := r.Beta(5, 2) * 100
	if activity > idleActivityThreshold {
		s.KeyboardStrokes = int(duration * float64(r.IntRange(50, 200)))
		s.MouseClicks = int(duration * float64(r.IntRange(20, 100)))
	}

	s.DurationMinutes = round2(duration)
	s.ActivityPercentage = round2(activity)
	s.IsManualEntry = r.Chance(manualEntryChance)
	if r.Chance(screenshotChance) {
		s.ScreenshotCount = int(duration / 10)
	}
	return s
}

// AddDuplicates appends verbatim copies of floor(len*ratio) distinct
// sessions to emulate data-quality noise. The count is clamped to
// [0, len(sessions)].
func AddDuplicates(r *Rand, sessions []models.Session, ratio float64) []models.Session {
	n := int(float64(len(sessions)) * ratio)
	n = max(0, min(n, len(sessions)))
	if n == 0 {
		return sessions
	}
	picked := r.Perm(len(sessions))[:n]
	out := make([]models.Session, len(sessions), len(sessions)+n)
	copy(out, sessions)
	for _, i := range picked {
		out = append(out, sessions[i])
	}
	return out
}

func isWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
