package publisher

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// aliasFamilies maps the platform spellings users write to registry keys.
var aliasFamilies = map[string]string{
	"fb":        FamilyFacebook,
	"facebook":  FamilyFacebook,
	"li":        FamilyLinkedIn,
	"linkedin":  FamilyLinkedIn,
	"ig":        FamilyInstagram,
	"insta":     FamilyInstagram,
	"instagram": FamilyInstagram,
}

// Manager is the publisher registry. Lookup is by alias family,
// case-insensitive.
type Manager struct {
	publishers map[string]Publisher
	sharer     GroupSharer
	logger     *zap.Logger
}

func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		publishers: make(map[string]Publisher),
		logger:     logger,
	}
}

func (m *Manager) Register(p Publisher) error {
	name := p.Name()
	if _, exists := m.publishers[name]; exists {
		return fmt.Errorf("publisher for platform %s already registered", name)
	}

	m.publishers[name] = p
	m.logger.Info("Publisher registered", zap.String("platform", name))
	return nil
}

func (m *Manager) SetGroupSharer(s GroupSharer) {
	m.sharer = s
}

// Resolve maps a user-written platform alias to its registered publisher.
// Unknown aliases are a per-platform condition, not a fatal one.
func (m *Manager) Resolve(alias string) (Publisher, error) {
	family, ok := aliasFamilies[strings.ToLower(strings.TrimSpace(alias))]
	if !ok {
		return nil, fmt.Errorf("platform %q not implemented", alias)
	}
	p, ok := m.publishers[family]
	if !ok {
		return nil, fmt.Errorf("publisher for platform %s not found", family)
	}
	return p, nil
}

// GroupSharer returns the Facebook group-share capability when configured.
func (m *Manager) GroupSharer() (GroupSharer, bool) {
	return m.sharer, m.sharer != nil
}

// IsFacebookAlias reports whether the alias belongs to the Facebook family,
// which is the only family with group fan-out.
func IsFacebookAlias(alias string) bool {
	return aliasFamilies[strings.ToLower(strings.TrimSpace(alias))] == FamilyFacebook
}
