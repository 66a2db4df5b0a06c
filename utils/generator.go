package utils

import (
	"fmt"
	"math/rand"
	"time"
)

const meetingCodeLength = 10
const letterBytes = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateMeetingLink builds a meeting room URL for a confirmed booking when
// the mentor did not supply one.
func GenerateMeetingLink() string {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	b := make([]byte, meetingCodeLength)
	for i := range b {
		b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
	}

	return fmt.Sprintf("https://meet.careermentor.app/%s", string(b))
}
