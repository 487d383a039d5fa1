package mock

import (
	"context"

	"github.com/awalczyk/lectio"
)

var _ lectio.SettingService = (*SettingService)(nil)

// SettingService is a mock implementation of lectio.SettingService.
type SettingService struct {
	SettingFn       func(ctx context.Context, key string) (string, error)
	SetSettingFn    func(ctx context.Context, key, value string) error
	DeleteSettingFn func(ctx context.Context, key string) error
}

func (s *SettingService) Setting(ctx context.Context, key string) (string, error) {
	return s.SettingFn(ctx, key)
}

func (s *SettingService) SetSetting(ctx context.Context, key, value string) error {
	return s.SetSettingFn(ctx, key, value)
}

func (s *SettingService) DeleteSetting(ctx context.Context, key string) error {
	return s.DeleteSettingFn(ctx, key)
}
