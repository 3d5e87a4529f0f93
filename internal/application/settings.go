package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"emotebot/internal/domain"
	"emotebot/internal/domain/entities"
	"emotebot/internal/logmessage"
	"emotebot/internal/ports/input"
	"emotebot/internal/ports/output"
)

var _ input.SettingsUseCase = (*SettingsService)(nil)

type SettingsService struct {
	settingsRepo output.UserSettingsRepository
}

func NewSettingsService(settingsRepo output.UserSettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

func (s *SettingsService) Get(ctx context.Context, userID string) (*entities.UserSettings, error) {
	return s.settingsRepo.FindByUserID(ctx, userID)
}

func (s *SettingsService) Update(ctx context.Context, userID string, update input.SettingsUpdate) (*entities.UserSettings, error) {
	settings, err := s.settingsRepo.FindByUserID(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrSettingsNotFound):
		// Language stays empty until chosen so the client locale keeps applying.
		settings = &entities.UserSettings{UserID: userID, Gender: logmessage.Male}
	case err != nil:
		return nil, err
	}

	if update.CharacterName != nil {
		settings.CharacterName = strings.TrimSpace(*update.CharacterName)
	}
	if update.World != nil {
		settings.World = strings.TrimSpace(*update.World)
	}
	if update.Gender != nil {
		g, err := logmessage.ParseGender(*update.Gender)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidGender, *update.Gender)
		}
		settings.Gender = g
	}
	if update.Language != nil {
		lang, err := entities.ParseLanguage(strings.ToLower(strings.TrimSpace(*update.Language)))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidLanguage, *update.Language)
		}
		settings.Language = lang
	}

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *SettingsService) Delete(ctx context.Context, userID string) error {
	return s.settingsRepo.Delete(ctx, userID)
}

func (s *SettingsService) Character(ctx context.Context, userID, displayName string) (logmessage.Character, entities.Language, error) {
	settings, err := s.settingsRepo.FindByUserID(ctx, userID)
	if errors.Is(err, domain.ErrSettingsNotFound) {
		return logmessage.Character{Name: displayName, Gender: logmessage.Male, IsPlayer: true}, "", nil
	}
	if err != nil {
		return logmessage.Character{}, "", err
	}
	return settings.Character(displayName), settings.Language, nil
}
