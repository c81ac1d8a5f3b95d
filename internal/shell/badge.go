package shell

import "strconv"

// DefaultUnreadCeiling is the largest unread count shown verbatim in the
// navbar badge.
const DefaultUnreadCeiling = 9

// BadgeLabel formats an unread count for the notification badge.
// Counts above ceiling render as "{ceiling}+"; zero renders nothing.
// A non-positive ceiling falls back to DefaultUnreadCeiling.
func BadgeLabel(count, ceiling int) string {
	if count <= 0 {
		return ""
	}
	if ceiling <= 0 {
		ceiling = DefaultUnreadCeiling
	}
	if count > ceiling {
		return strconv.Itoa(ceiling) + "+"
	}
	return strconv.Itoa(count)
}
