package services

import (
	"time"

	"github.com/google/uuid"
)

// now returns the current time at the millisecond precision the store keeps.
var now = func() time.Time {
	return time.UnixMilli(time.Now().UnixMilli())
}

var newID = uuid.NewString
