// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_EmptyVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestGetAppVersion(t *testing.T) {
	for _, version := range []string{"1.0.0", "dev", "v1.2.3-beta+build.42"} {
		t.Run(version, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: version}, logger.Nop())
			require.NoError(t, err)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			assert.Equal(t, version, svc.GetAppVersion(ctx))
		})
	}
}
