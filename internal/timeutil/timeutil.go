package timeutil

import "time"

// Naive converts any instant to its canonical naive-UTC form: the zone offset
// is applied and the result carries UTC. Both candidate appointments and
// stored dates go through this before any comparison, so rows written with a
// zone offset and rows written naive compare on the same axis.
func Naive(t time.Time) time.Time {
	return t.UTC()
}

func Now() time.Time {
	return Naive(time.Now())
}
