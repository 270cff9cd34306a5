package store

import (
	"github.com/google/uuid"

	"github.com/Sortedsinghal/URE-HR/internal/errors"
	"github.com/Sortedsinghal/URE-HR/internal/models"
)

// TemplateFields is the editable subset of a template; id and usage
// counter are owned by the store.
type TemplateFields struct {
	Name     string                 `json:"name"`
	Channel  models.TemplateChannel `json:"channel"`
	Subject  string                 `json:"subject"`
	Content  string                 `json:"content"`
	Category string                 `json:"category"`
}

func (s *Store) ListTemplates() []models.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.templates)
}

func (s *Store) GetTemplate(id string) (models.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findTemplate(id)
}

func (s *Store) findTemplate(id string) (models.Template, error) {
	for _, t := range s.templates {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Template{}, errors.NotFound("template not found", nil)
}

func (s *Store) CreateTemplate(f TemplateFields) models.Template {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := models.Template{
		ID:       uuid.NewString(),
		Name:     f.Name,
		Channel:  f.Channel,
		Subject:  f.Subject,
		Content:  f.Content,
		Category: f.Category,
		Usage:    0,
	}
	s.templates = append(s.templates, t)
	return t
}

// UpdateTemplate replaces the editable fields of the matching entry,
// keeping its id and usage counter.
func (s *Store) UpdateTemplate(id string, f TemplateFields) (models.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.templates {
		if t.ID != id {
			continue
		}
		t.Name = f.Name
		t.Channel = f.Channel
		t.Subject = f.Subject
		t.Content = f.Content
		t.Category = f.Category
		s.templates[i] = t
		return t, nil
	}
	return models.Template{}, errors.NotFound("template not found", nil)
}

func (s *Store) DeleteTemplate(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.templates {
		if t.ID == id {
			s.templates = append(s.templates[:i], s.templates[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("template not found", nil)
}

// DuplicateTemplate clones the entry under a fresh id with " (Copy)"
// appended to the name and the usage counter reset.
func (s *Store) DuplicateTemplate(id string) (models.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, err := s.findTemplate(id)
	if err != nil {
		return models.Template{}, err
	}

	dup := src
	dup.ID = uuid.NewString()
	dup.Name = src.Name + " (Copy)"
	dup.Usage = 0
	s.templates = append(s.templates, dup)
	return dup, nil
}

func (s *Store) IncrementTemplateUsage(id string) (models.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.templates {
		if s.templates[i].ID == id {
			s.templates[i].Usage++
			return s.templates[i], nil
		}
	}
	return models.Template{}, errors.NotFound("template not found", nil)
}
