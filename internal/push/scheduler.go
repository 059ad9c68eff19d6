package push

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/graceview/graceview-api/internal/content"
)

// Scheduler sends the day's devotional to every registered device once a
// day, at the configured local time.
type Scheduler struct {
	repo    PushRepo
	relay   *RelayClient
	content content.ContentService
	cron    *cron.Cron
}

func NewScheduler(repo PushRepo, relay *RelayClient, contentService content.ContentService) *Scheduler {
	return &Scheduler{
		repo:    repo,
		relay:   relay,
		content: contentService,
		cron:    cron.New(),
	}
}

// Start registers the daily job. sendTime is "HH:MM", 24-hour clock.
func (s *Scheduler) Start(sendTime string) error {
	spec, err := cronSpec(sendTime)
	if err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(spec, s.SendDailyDevotional); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("push scheduler started, daily send at %s", sendTime)
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// SendDailyDevotional is one scheduled run. Every failure is logged and the
// run finishes; the job must never crash the process.
func (s *Scheduler) SendDailyDevotional() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	devotional, err := s.content.TodaysDevotional(ctx)
	if errors.Is(err, content.ErrNotFound) {
		log.Println("push: no devotional for today, skipping send")
		return
	}
	if err != nil {
		log.Printf("push: loading devotional failed: %v", err)
		return
	}

	tokens, err := s.repo.ListTokens(ctx)
	if err != nil {
		log.Printf("push: loading tokens failed: %v", err)
		return
	}
	if len(tokens) == 0 {
		return
	}

	failed, err := s.relay.Send(ctx, tokens, devotional.Title, devotional.PassageRef, map[string]string{
		"type": "devotional",
		"id":   fmt.Sprint(devotional.ID),
	})
	if failed > 0 {
		log.Printf("push: %d batch(es) failed, first error: %v", failed, err)
	}
	log.Printf("push: daily devotional sent to %d device(s)", len(tokens))
}

func cronSpec(sendTime string) (string, error) {
	parts := strings.SplitN(sendTime, ":", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid send time %q, want HH:MM", sendTime)
	}
	var hour, minute int
	if _, err := fmt.Sscanf(sendTime, "%d:%d", &hour, &minute); err != nil {
		return "", fmt.Errorf("invalid send time %q: %w", sendTime, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid send time %q, out of range", sendTime)
	}
	return fmt.Sprintf("%d %d * * *", minute, hour), nil
}
