package main

import "github.com/dolthub/swiss"

const resultsCapacity = 16_384

type stationSummary struct {
	name  string
	min   int16
	max   int16
	count int64
	sum   int64
}

func (s *stationSummary) merge(o *stationSummary) {
	s.count += o.count
	s.sum += o.sum
	s.min = min(s.min, o.min)
	s.max = max(s.max, o.max)
}

// results maps station names, raw bytes as a string, to their totals.
type results struct {
	stations *swiss.Map[string, *stationSummary]
}

func newResults(capacity int) *results {
	return &results{stations: swiss.NewMap[string, *stationSummary](uint32(max(capacity, 1)))}
}

func (r *results) add(s *stationSummary) {
	if cur, ok := r.stations.Get(s.name); ok {
		cur.merge(s)
		return
	}
	c := *s
	r.stations.Put(c.name, &c)
}

func (r *results) merge(o *results) {
	o.stations.Iter(func(_ string, s *stationSummary) bool {
		r.add(s)
		return false
	})
}

func (r *results) len() int {
	return r.stations.Count()
}

// fold collects the occupied slots of t into name-keyed results.
func (t *table) fold() *results {
	r := newResults(t.used)
	for i := range t.slots {
		s := &t.slots[i]
		if !s.occupied {
			continue
		}
		r.add(&stationSummary{
			name:  string(s.name[:s.nameLen]),
			min:   s.min,
			max:   s.max,
			count: s.count,
			sum:   s.sum,
		})
	}
	return r
}

// reduce merges parts pairwise, level by level, into a single results.
func reduce(parts []*results) *results {
	if len(parts) == 0 {
		return newResults(0)
	}

	for len(parts) > 1 {
		next := make([]*results, 0, (len(parts)+1)/2)
		for i := 0; i < len(parts); i += 2 {
			if i+1 < len(parts) {
				parts[i].merge(parts[i+1])
			}
			next = append(next, parts[i])
		}
		parts = next
	}
	return parts[0]
}
