// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
)

func TestLogNotifier_WritesCode(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(&logger.Logger{Logger: zerolog.New(&buf)})
	buf.Reset()

	require.NoError(t, n.SendActivationCode(context.Background(), "a@example.com", "code-1"))
	out := buf.String()
	assert.Contains(t, out, `"email":"a@example.com"`)
	assert.Contains(t, out, `"kind":"activation"`)
	assert.Contains(t, out, `"code":"code-1"`)

	buf.Reset()
	require.NoError(t, n.SendResetCode(context.Background(), "a@example.com", "code-2"))
	assert.Contains(t, buf.String(), `"kind":"reset"`)
}
