package attendance

// DailyWorkedMinutes is the worked time of a single closed session with the
// lunch interval removed. It is what the auto-checkout job stores as the
// day's total_hours and has nothing to do with the monthly overtime baseline.
func DailyWorkedMinutes(r Record) float64 {
	worked := SessionMinutes(r)
	if worked == 0 {
		return 0
	}

	if r.LunchStart != nil && r.LunchEnd != nil && r.LunchEnd.After(*r.LunchStart) {
		worked -= r.LunchEnd.Sub(*r.LunchStart).Minutes()
	}
	if worked < 0 {
		return 0
	}
	return worked
}
