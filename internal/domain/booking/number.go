package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateBookingNumber produces a human-readable booking number of the
// form BKG-YYYYMMDD-XXXXXX. The suffix comes from a fresh UUID, so
// collisions are possible in theory; callers retry on a uniqueness
// conflict from the store.
func GenerateBookingNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:6]
	return fmt.Sprintf("BKG-%s-%s", now.Format("20060102"), suffix)
}
