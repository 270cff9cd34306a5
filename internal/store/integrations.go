package store

import (
	"github.com/Sortedsinghal/URE-HR/internal/errors"
	"github.com/Sortedsinghal/URE-HR/internal/models"
)

func (s *Store) ListIntegrations() []models.Integration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.integrations)
}

// ConnectIntegration marks the integration connected and installs its
// category default settings. Connecting an already-connected
// integration is a no-op.
func (s *Store) ConnectIntegration(id string) (models.Integration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, in := range s.integrations {
		if in.ID != id {
			continue
		}
		if in.Status != models.IntegrationConnected {
			in.Status = models.IntegrationConnected
			in.Settings = models.DefaultIntegrationSettings(in.Category)
			s.integrations[i] = in
		}
		return in, nil
	}
	return models.Integration{}, errors.NotFound("integration not found", nil)
}

func (s *Store) DisconnectIntegration(id string) (models.Integration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, in := range s.integrations {
		if in.ID != id {
			continue
		}
		in.Status = models.IntegrationAvailable
		in.Settings = nil
		s.integrations[i] = in
		return in, nil
	}
	return models.Integration{}, errors.NotFound("integration not found", nil)
}

func (s *Store) UpdateIntegrationSetting(id, setting string, value bool) (models.Integration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, in := range s.integrations {
		if in.ID != id {
			continue
		}
		if in.Status != models.IntegrationConnected {
			return models.Integration{}, errors.InvalidInput("integration is not connected", nil)
		}
		if _, ok := in.Settings[setting]; !ok {
			return models.Integration{}, errors.InvalidInput("unknown setting for integration", nil)
		}
		in.Settings[setting] = value
		s.integrations[i] = in
		return in, nil
	}
	return models.Integration{}, errors.NotFound("integration not found", nil)
}
