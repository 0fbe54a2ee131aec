// Copyright 2025 Microsoft Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package helpers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"
)

// RetriesExhaustedError is returned by Retry when every attempt failed with a retryable error.
type RetriesExhaustedError struct {
	Attempts int
	Last     error
}

func (e *RetriesExhaustedError) Error() string {
	return fmt.Sprintf("giving up after %d attempts: %v", e.Attempts, e.Last)
}

func (e *RetriesExhaustedError) Unwrap() error {
	return e.Last
}

// Retry calls fn up to attempts times with a fixed delay between calls. A nil
// retryable retries every error; otherwise the first non-retryable error is
// returned as is.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func(context.Context) error, retryable func(error) bool) error {
	if attempts < 1 {
		attempts = 1
	}
	backoff := wait.Backoff{
		Duration: delay,
		Factor:   1,
		Steps:    attempts,
	}

	var last error
	err := wait.ExponentialBackoffWithContext(ctx, backoff, func(ctx context.Context) (bool, error) {
		last = fn(ctx)
		if last == nil {
			return true, nil
		}
		if retryable != nil && !retryable(last) {
			return false, last
		}
		return false, nil
	})
	if err == nil {
		return nil
	}
	if wait.Interrupted(err) && last != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return &RetriesExhaustedError{Attempts: attempts, Last: last}
	}
	return err
}
