package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/Jamaica")
	if err != nil {
		panic(err)
	}
}

// force timezone to be Jamaica because draw sessions are announced
// in local time and our servers may end up anywhere, which disturbs
// date math based on <time.Time>.Year()/Month()/Day()/Hour()/...
func Now() time.Time {
	return time.Now().In(Location)
}
