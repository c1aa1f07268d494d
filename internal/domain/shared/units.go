package shared

// HoursPerDay converts between day rates and the hourly simulation axis
const HoursPerDay = 24.0

// DayRateToHourly converts a USD/day rate to USD/hour
func DayRateToHourly(dayRate float64) float64 {
	return dayRate / HoursPerDay
}

// DaysToHours converts days to simulation hours
func DaysToHours(days float64) float64 {
	return days * HoursPerDay
}
