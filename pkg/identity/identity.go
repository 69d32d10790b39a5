package identity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewID returns an identifier that is collision-free across the process
// lifetime: creation time in unix millis plus a random suffix.
func NewID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.New().String()[:8])
}
