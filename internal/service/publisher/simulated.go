package publisher

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Simulated publishers let the whole pipeline run without external calls.
// They always succeed and return a deterministic fake post URL.

type SimulatedPublisher struct {
	family  string
	fakeURL string
	logger  *zap.Logger
}

func NewSimulatedFacebook(logger *zap.Logger) *SimulatedPublisher {
	return &SimulatedPublisher{
		family:  FamilyFacebook,
		fakeURL: "https://facebook.com/fake_page_post",
		logger:  logger,
	}
}

func NewSimulatedLinkedIn(logger *zap.Logger) *SimulatedPublisher {
	return &SimulatedPublisher{
		family:  FamilyLinkedIn,
		fakeURL: "https://linkedin.com/posts/fake_linkedin_post",
		logger:  logger,
	}
}

func NewSimulatedInstagram(logger *zap.Logger) *SimulatedPublisher {
	return &SimulatedPublisher{
		family:  FamilyInstagram,
		fakeURL: "https://instagram.com/p/fake_instagram_post",
		logger:  logger,
	}
}

func (p *SimulatedPublisher) Name() string {
	return p.family
}

func (p *SimulatedPublisher) Publish(_ context.Context, caption string) (string, error) {
	p.logger.Info("Simulating publish",
		zap.String("platform", p.family),
		zap.Int("caption_len", len(caption)))
	return p.fakeURL, nil
}

// SimulatedGroupSharer fakes re-sharing a Facebook post into a group.
type SimulatedGroupSharer struct {
	logger *zap.Logger
}

func NewSimulatedGroupSharer(logger *zap.Logger) *SimulatedGroupSharer {
	return &SimulatedGroupSharer{logger: logger}
}

func (s *SimulatedGroupSharer) ShareToGroup(_ context.Context, group, caption string) (string, error) {
	url := "https://facebook.com/groups/" + strings.ReplaceAll(group, " ", "_") + "/fake_post"
	s.logger.Info("Simulating group share",
		zap.String("group", group),
		zap.String("url", url))
	return url, nil
}
