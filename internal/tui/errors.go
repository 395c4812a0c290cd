// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrPromptAborted is returned when the operator cancels a prompt with
// esc or ctrl+c. The caller treats this as "skip the current account",
// not as a fatal condition.
var ErrPromptAborted = errors.New("prompt aborted")
