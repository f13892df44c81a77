//go:build !windows

package clock

import "time"

// epoch anchors tick counts to process start. time.Since uses the monotonic
// reading carried by epoch, so wall-clock adjustments never move Now backwards.
var epoch = time.Now()

const tickFrequency = int64(time.Second)

func readTicks() int64 {
	return int64(time.Since(epoch))
}
