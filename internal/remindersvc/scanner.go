package remindersvc

import (
	"context"
	"fmt"
	"html"
	"strings"
	"sync"
	"time"

	"github.com/picksleague/picks-services/internal/email"
	"github.com/picksleague/picks-services/internal/picksvc/models"
	"github.com/picksleague/picks-services/internal/picksvc/store"
	log "github.com/sirupsen/logrus"
)

// Reminder window bounds relative to now, Central time. A game qualifies
// when it starts strictly inside (now+windowStart, now+windowEnd); the
// boundaries themselves are excluded.
const (
	windowStart = 15 * time.Minute
	windowEnd   = 30 * time.Minute
)

const reminderSubject = "⚠️ Reminder: Games Starting Soon!"

// Scanner is the reminder job: one full pass per invocation, no state kept
// between runs.
type Scanner struct {
	gameStore *store.GameStore
	userStore *store.UserStore
	mailer    *email.Mailer
	appURL    string
}

func NewScanner(gameStore *store.GameStore, userStore *store.UserStore, mailer *email.Mailer, appURL string) *Scanner {
	return &Scanner{
		gameStore: gameStore,
		userStore: userStore,
		mailer:    mailer,
		appURL:    appURL,
	}
}

// windowGame is a qualifying game tagged with its round.
type windowGame struct {
	models.Game
	Round string
}

// Run executes one scan. Errors loading games or users abort the whole
// invocation; the caller logs them and the next tick retries. Individual
// send failures only cost that one recipient.
func (s *Scanner) Run(ctx context.Context) error {
	now := time.Now()

	var upcoming []windowGame
	for _, round := range models.Rounds {
		games, err := s.gameStore.GetRound(ctx, round)
		if err != nil {
			return fmt.Errorf("failed to load games for round %s: %w", round, err)
		}
		for _, g := range games {
			if inReminderWindow(g.StartTime, now) {
				log.Infof("Found upcoming game: %s vs %s (%s)", g.HomeTeam, g.AwayTeam, round)
				upcoming = append(upcoming, windowGame{Game: g, Round: round})
			}
		}
	}

	if len(upcoming) == 0 {
		log.Info("No upcoming games found")
		return nil
	}

	users, err := s.userStore.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	var wg sync.WaitGroup
	dispatched := 0

	for _, user := range users {
		if user.Email == "" {
			log.Infof("Skipping user %s - no email found", user.ID)
			continue
		}

		missing := missingGames(user.Picks, upcoming)
		if len(missing) == 0 {
			continue
		}
		log.Infof("User %s missing picks for %d games", user.Email, len(missing))

		dispatched++
		wg.Add(1)
		go func(to string, missing []windowGame) {
			defer wg.Done()
			if err := s.mailer.Send(ctx, to, reminderSubject, s.reminderBody(missing)); err != nil {
				log.Errorf("Error sending email to %s: %s", to, err)
				return
			}
			log.Infof("Successfully sent email to %s", to)
		}(user.Email, missing)
	}

	wg.Wait()

	if dispatched > 0 {
		log.Infof("Sent %d reminder emails", dispatched)
	}
	return nil
}

// inReminderWindow reports whether a game's start time falls strictly inside
// the reminder window measured from now.
func inReminderWindow(startTime string, now time.Time) bool {
	start, err := models.ParseStartTime(startTime)
	if err != nil {
		return false
	}

	now = now.In(models.Central())
	return start.After(now.Add(windowStart)) && start.Before(now.Add(windowEnd))
}

// missingGames filters the window games down to those the user has not
// picked. A confidence-round game needs both a team and a points value to
// count as picked; other rounds need only a team.
func missingGames(picks models.Picks, upcoming []windowGame) []windowGame {
	var missing []windowGame
	for _, g := range upcoming {
		pick, ok := picks.Get(g.Round, g.Key())
		if g.Round == models.ConfidenceRound {
			if !ok || pick.Team == "" || pick.Points == 0 {
				missing = append(missing, g)
			}
			continue
		}
		if !ok || pick.Team == "" {
			missing = append(missing, g)
		}
	}
	return missing
}

func (s *Scanner) reminderBody(missing []windowGame) string {
	plural := ""
	if len(missing) > 1 {
		plural = "s"
	}

	var b strings.Builder
	b.WriteString("<h2>Reminder: Make Your Picks!</h2>")
	fmt.Fprintf(&b, "<p>You have %d game%s starting in about 30 minutes that you haven't picked yet:</p>", len(missing), plural)

	for _, g := range missing {
		b.WriteString(`<div style="margin: 10px 0; padding: 10px; background: #f8f9fa; border-radius: 4px;">`)
		fmt.Fprintf(&b, "<p><strong>%s vs %s</strong></p>", html.EscapeString(g.HomeTeam), html.EscapeString(g.AwayTeam))
		fmt.Fprintf(&b, "<p>Game starts at: %s</p>", localStartTime(g.StartTime))
		if g.Round == models.ConfidenceRound {
			b.WriteString("<p>Remember to set your confidence points!</p>")
		}
		b.WriteString("</div>")
	}

	fmt.Fprintf(&b, `<p><a href="%s">Click here to make your picks!</a></p>`, s.appURL)
	return b.String()
}

// localStartTime renders a stored start time like "6:00 PM CST". Times that
// fail to parse fall back to the stored string.
func localStartTime(startTime string) string {
	start, err := models.ParseStartTime(startTime)
	if err != nil {
		return html.EscapeString(startTime)
	}
	return start.Format("3:04 PM MST")
}
