package magic

// Match returns the Kind of the first built-in rule matching data, or Unknown.
//
// Rules whose signature lies beyond len(data) simply fail, so data should be
// at least RecommendedReadSize bytes long (or the whole file, if shorter).
func Match(data []byte) Kind {
	return MatchRules(data, signatureTable)
}

// MatchBounded is Match restricted to rules whose MaxBytesRead does not exceed
// allowedMaxRead, the number of bytes the caller actually read.
// A rule that could not have been fully checked is never consulted.
func MatchBounded(data []byte, allowedMaxRead int) Kind {
	return MatchRulesBounded(data, signatureTable, allowedMaxRead)
}

// MatchIfLongEnough returns Unknown when data is shorter than allowedMaxRead;
// otherwise it checks every rule regardless of its own MaxBytesRead.
func MatchIfLongEnough(data []byte, allowedMaxRead int) Kind {
	if len(data) < allowedMaxRead {
		return Unknown
	}
	return MatchRules(data, signatureTable)
}

// MatchRules runs the first-match scan over an arbitrary rule table.
func MatchRules(data []byte, rules []Rule) Kind {
	for i := range rules {
		if rules[i].Matches(data) {
			return rules[i].Kind
		}
	}
	return Unknown
}

// MatchRulesBounded is MatchRules skipping rules whose MaxBytesRead exceeds
// allowedMaxRead.
func MatchRulesBounded(data []byte, rules []Rule, allowedMaxRead int) Kind {
	for i := range rules {
		r := &rules[i]
		if r.MaxBytesRead > allowedMaxRead {
			continue
		}
		if r.Matches(data) {
			return r.Kind
		}
	}
	return Unknown
}
