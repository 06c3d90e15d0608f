/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/
package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/jsonview/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	assert.Equal(t, config.DefaultIDField, got.IDField)
	assert.Equal(t, config.DefaultTag, got.Tag)
	assert.Equal(t, config.DefaultMaxUnwrap, got.MaxUnwrap)
	assert.Nil(t, got.Logger)
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	assert.Equal(t, config.DefaultConfig(), config.NewConfig())
}

func TestWithIDField(t *testing.T) {
	assert.Equal(t, "UUID", config.NewConfig(config.WithIDField("UUID")).IDField)
	assert.Equal(t, config.DefaultIDField, config.NewConfig(config.WithIDField("")).IDField)
}

func TestWithTag(t *testing.T) {
	assert.Equal(t, "api", config.NewConfig(config.WithTag("api")).Tag)
	assert.Equal(t, config.DefaultTag, config.NewConfig(config.WithTag("")).Tag)
}

func TestWithMaxUnwrap(t *testing.T) {
	assert.Equal(t, 3, config.NewConfig(config.WithMaxUnwrap(3)).MaxUnwrap)
	assert.Equal(t, 0, config.NewConfig(config.WithMaxUnwrap(0)).MaxUnwrap)
	assert.Equal(t, config.DefaultMaxUnwrap, config.NewConfig(config.WithMaxUnwrap(-1)).MaxUnwrap)
}

func TestWithLogger(t *testing.T) {
	l := slog.Default()
	cfg := config.NewConfig(config.WithLogger(l))
	require.Same(t, l, cfg.Logger)
	assert.Same(t, l, config.Logger(cfg))

	// Without a logger a discarding one is returned, never nil.
	assert.NotNil(t, config.Logger(config.DefaultConfig()))
}

func TestOptions_LastWins(t *testing.T) {
	cfg := config.NewConfig(config.WithIDField("A"), config.WithIDField("B"))
	assert.Equal(t, "B", cfg.IDField)
}
