package holiday

import "time"

// EasterSunday returns the date of Easter Sunday in the Gregorian calendar
// (Meeus/Jones/Butcher). It is defined for every integer year, although only
// years from 1583 onward are meaningful.
func EasterSunday(year int) CalendarDate {
	g := floorMod(year, 19)
	c := floorDiv(year, 100)
	h := floorMod(c-floorDiv(c, 4)-floorDiv(8*c+13, 25)+19*g+15, 30)
	i := h - floorDiv(h, 28)*(1-floorDiv(29, h+1)*floorDiv(21-g, 11))
	j := floorMod(year+floorDiv(year, 4)+i+2-c+floorDiv(c, 4), 7)
	l := i - j
	month := 3 + floorDiv(l+40, 44)
	day := l + 28 - 31*floorDiv(month, 4)

	return CalendarDate{Year: year, Month: time.Month(month), Day: day}
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod is the remainder matching floorDiv; its sign follows b.
func floorMod(a, b int) int {
	return a - b*floorDiv(a, b)
}
