// README: Chat quota errors and defaults.
package chatquota

import "errors"

// ErrQuotaExceeded is returned when a visitor has no assistant messages left
// for the current day.
var ErrQuotaExceeded = errors.New("daily chat quota exceeded")

// DefaultDailyMessages is the number of assistant messages granted per
// visitor per day.
const DefaultDailyMessages = 30
