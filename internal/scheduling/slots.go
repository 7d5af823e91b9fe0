package scheduling

// slotLabels is the platform's fixed booking grid: half-hour slots from
// 09:00 AM through 05:30 PM.
var slotLabels = []string{
	"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"12:00 PM", "12:30 PM", "01:00 PM", "01:30 PM", "02:00 PM", "02:30 PM",
	"03:00 PM", "03:30 PM", "04:00 PM", "04:30 PM", "05:00 PM", "05:30 PM",
}

// Slots returns the bookable slot labels in day order.
func Slots() []string {
	out := make([]string, len(slotLabels))
	copy(out, slotLabels)
	return out
}

// IsValidSlot reports whether the label is one of the bookable slots.
func IsValidSlot(label string) bool {
	for _, s := range slotLabels {
		if s == label {
			return true
		}
	}
	return false
}
