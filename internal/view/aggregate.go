package view

// Number is a numeric field type that can be summed.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Summary holds the record total and per-key counters of a store.
type Summary[K comparable] struct {
	Total  int       `json:"total"  yaml:"total"`
	Counts map[K]int `json:"counts" yaml:"counts"`
}

// Count returns the counter for key, zero if absent.
func (s Summary[K]) Count(key K) int {
	return s.Counts[key]
}

// CountBy counts records per key. Keys with no records are absent.
func CountBy[R any, K comparable](records []R, key func(R) K) map[K]int {
	counts := make(map[K]int)

	for _, rec := range records {
		counts[key(rec)]++
	}

	return counts
}

// CountEach counts records whose key equals each of keys.
//
// Every listed key is present in the result, zero when nothing matches.
// Records whose key is not listed are not counted.
func CountEach[R any, K comparable](records []R, key func(R) K, keys ...K) map[K]int {
	counts := make(map[K]int, len(keys))

	for _, k := range keys {
		n := 0

		for _, rec := range records {
			if key(rec) == k {
				n++
			}
		}

		counts[k] = n
	}

	return counts
}

// Summarize returns the total and the [CountEach] counters of records.
func Summarize[R any, K comparable](records []R, key func(R) K, keys ...K) Summary[K] {
	return Summary[K]{
		Total:  len(records),
		Counts: CountEach(records, key, keys...),
	}
}

// Sum adds value over every record.
func Sum[R any, N Number](records []R, value func(R) N) N {
	var total N

	for _, rec := range records {
		total += value(rec)
	}

	return total
}

// Percent is a percentage that may be undefined.
//
// Valid is false when the underlying ratio had a zero denominator; Value is
// then zero and must not be displayed.
type Percent struct {
	Value float64 `json:"value" yaml:"value"`
	Valid bool    `json:"valid" yaml:"valid"`
}

// Ratio returns num/den, or [ErrUndefinedRatio] when den is zero.
func Ratio(num, den float64) (float64, error) {
	if den == 0 {
		return 0, ErrUndefinedRatio
	}

	return num / den, nil
}

// PercentOf returns num/den*100, invalid when den is zero.
func PercentOf(num, den float64) Percent {
	r, err := Ratio(num, den)
	if err != nil {
		return Percent{}
	}

	return Percent{Value: r * 100, Valid: true}
}

// Mean returns the arithmetic mean of value over records. ok is false when
// records is empty.
func Mean[R any, N Number](records []R, value func(R) N) (mean float64, ok bool) {
	r, err := Ratio(float64(Sum(records, value)), float64(len(records)))
	if err != nil {
		return 0, false
	}

	return r, true
}
