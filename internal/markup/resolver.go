package markup

import "sort"

// resolveOverlaps filters the scanner output down to a non-overlapping
// span set.
//
// Two rules apply. A bare URL or ticket reference whose range falls inside
// an explicit link is dropped outright: the link already owns that text.
// Any remaining cross-kind collision is settled by kind priority (Code >
// ExplicitLink > Bold > Italic > URL > TicketRef), keeping the earlier
// span on equal priority. The second rule is what turns italic delimiters
// re-matched inside a bold pair, or a URL inside bold text, into a
// deterministic outcome.
//
// Output preserves ascending-by-start order.
func resolveOverlaps(spans []span) []span {
	candidates := make([]span, 0, len(spans))
	for _, s := range spans {
		if (s.kind == kindURL || s.kind == kindTicketRef) && insideExplicitLink(s, spans) {
			continue
		}
		candidates = append(candidates, s)
	}

	// Greedy keep in priority order; a span survives only if it clears
	// every already-kept span.
	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		pa, pb := candidates[order[a]].kind.priority(), candidates[order[b]].kind.priority()
		if pa != pb {
			return pa > pb
		}
		return candidates[order[a]].start < candidates[order[b]].start
	})

	var kept []span
	for _, i := range order {
		s := candidates[i]
		if overlapsAny(s, kept) {
			continue
		}
		kept = append(kept, s)
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].start < kept[j].start })
	return kept
}

func insideExplicitLink(s span, spans []span) bool {
	for _, link := range spans {
		if link.kind == kindExplicitLink && link.start <= s.start && s.end <= link.end {
			return true
		}
	}
	return false
}

func overlapsAny(s span, kept []span) bool {
	for _, k := range kept {
		if s.start < k.end && k.start < s.end {
			return true
		}
	}
	return false
}
