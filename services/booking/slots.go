package booking

// timeSlots is the fixed set of one-hour appointment slots. Eight slots span
// 09:00 to 18:00 with a lunch gap from 13:00 to 14:00.
var timeSlots = []string{
	"09:00 AM - 10:00 AM",
	"10:00 AM - 11:00 AM",
	"11:00 AM - 12:00 PM",
	"12:00 PM - 01:00 PM",
	"02:00 PM - 03:00 PM",
	"03:00 PM - 04:00 PM",
	"04:00 PM - 05:00 PM",
	"05:00 PM - 06:00 PM",
}

// TimeSlots returns the fixed slot enumeration in display order.
func TimeSlots() []string {
	out := make([]string, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// IsValidSlot reports whether value is a member of the fixed slot enumeration.
func IsValidSlot(value string) bool {
	for _, s := range timeSlots {
		if s == value {
			return true
		}
	}
	return false
}
