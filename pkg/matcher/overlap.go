package matcher

import "math"

// Percentage returns 100 * |A ∩ J| / |J| rounded to two decimals, where A is
// the applicant skill set and J the job skill set. It is 0 when either set is
// empty. Comparison is exact and case-sensitive; duplicates and empty strings
// are ignored.
func Percentage(applicant, job []string) float64 {
	matched, total := overlap(applicant, job)
	return percent(matched, total)
}

// Split partitions the job skills into the ones the applicant has and the ones
// missing, preserving the job's order.
func Split(applicant, job []string) (matched, missing []string) {
	have := toSet(applicant)
	seen := make(map[string]struct{}, len(job))
	matched, missing = []string{}, []string{}
	for _, s := range job {
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		if _, ok := have[s]; ok {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	return matched, missing
}

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func overlap(applicant, job []string) (matched, total int) {
	js := toSet(job)
	as := toSet(applicant)
	if len(js) == 0 || len(as) == 0 {
		return 0, len(js)
	}
	for s := range js {
		if _, ok := as[s]; ok {
			matched++
		}
	}
	return matched, len(js)
}

func percent(matched, total int) float64 {
	if total == 0 || matched == 0 {
		return 0
	}
	p := Round2(100 * float64(matched) / float64(total))
	// 100 is reserved for a full match
	if matched < total && p >= 100 {
		return 99.99
	}
	return p
}

func toSet(xs []string) map[string]struct{} {
	out := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		if x == "" {
			continue
		}
		out[x] = struct{}{}
	}
	return out
}
