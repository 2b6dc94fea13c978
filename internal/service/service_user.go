// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-tick-sdk/internal/adapter"
	"github.com/MKhiriev/go-tick-sdk/internal/logger"
	"github.com/MKhiriev/go-tick-sdk/models"
)

type userService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewUserService builds the account-information façade.
func NewUserService(serverAdapter adapter.ServerAdapter, log *logger.Logger) UserService {
	return &userService{adapter: serverAdapter, logger: log}
}

func (s *userService) Profile(ctx context.Context) (models.UserProfile, error) {
	return s.adapter.GetUserProfile(ctx)
}

func (s *userService) Status(ctx context.Context) (models.UserStatus, error) {
	return s.adapter.GetUserStatus(ctx)
}

func (s *userService) Settings(ctx context.Context) (models.UserSettings, error) {
	return s.adapter.GetUserSettings(ctx)
}

func (s *userService) Limits(ctx context.Context) (models.UserLimits, error) {
	return s.adapter.GetUserLimits(ctx)
}
