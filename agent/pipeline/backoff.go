/*
Copyright 2019 Google Inc. All Rights Reserved.
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

package pipeline

import (
	"math/rand"
	"time"
)

const (
	startingDelay    = 125 * time.Millisecond
	totalDelayCutoff = 60 * time.Second
)

// backoff provides a retry schedule for object-store puts.
type backoff struct {
	delayCount uint64
	totalDelay time.Duration
}

// getDelay returns a delay duration and bool indicating whether or not the
// caller should continue using the delay and retrying the event. Every
// iteration the delay grows exponentially (with jitter).
func (b *backoff) getDelay() (time.Duration, bool) {
	if b.totalDelay > totalDelayCutoff {
		return 0, false
	}
	delay := time.Duration((1 << b.delayCount) * int64(startingDelay))
	delay += time.Duration(rand.Int63n(int64(delay)))
	b.totalDelay += delay
	b.delayCount++
	return delay, true
}
