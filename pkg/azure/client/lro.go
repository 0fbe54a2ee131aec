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

package client

import (
	"context"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// StandardPollInterval is used for every long running operation the CLI waits on.
const StandardPollInterval = 15 * time.Second

// PollUntilDone waits for poller to finish. With noWait the zero response is
// returned right after submission.
func PollUntilDone[T any](ctx context.Context, poller *runtime.Poller[T], noWait bool, frequency time.Duration) (T, error) {
	var zero T
	if noWait {
		return zero, nil
	}
	if frequency <= 0 {
		frequency = StandardPollInterval
	}
	return poller.PollUntilDone(ctx, &runtime.PollUntilDoneOptions{
		Frequency: frequency,
	})
}
