// Package filter provides the composable boolean query filters used to
// narrow vector searches: equality matches, numeric ranges, and
// geo-spatial conditions, combined through AND / OR / NOT composites.
//
// A filter is an immutable tree. Leaves are single-field predicates
// ([Match], [Range], [GeoBoundingBox], [GeoRadius]); composites ([And],
// [Or], [Not]) group child filters. The tree serializes verbatim into the
// "filter" field of a vector-store request body.
//
// # Fluent Builder
//
// The [Builder] accumulates conditions and collapses them with [Builder.Build]:
//
//	f, err := filter.NewBuilder().
//	    Where("ticker").Equals("NVDA").
//	    Where("price").InRange(100, 200).
//	    Build()
//	// f is And{Must: [Match(ticker,NVDA), Range(price, gte=100, lte=200)]}
//
// The logical mode is late-bound: And(), Or(), and Not() are pure mode
// switches, and the mode active at the moment Build is called wraps the
// entire accumulated condition list. Appending conditions under one mode
// and then switching does not partition them into sub-groups; use
// [Builder.AndAll] and [Builder.OrAny] with sub-builders for nesting:
//
//	f, _ := filter.NewBuilder().
//	    Where("status").Equals("active").
//	    OrAny(
//	        filter.NewBuilder().Where("city").Equals("London"),
//	        filter.NewBuilder().Where("city").Equals("Berlin"),
//	    ).
//	    Build()
//
// Build on zero conditions yields a nil filter (omit the filter parameter
// downstream); a single condition is returned unwrapped.
//
// # Validation
//
// Validation is split in two deliberately independent halves:
//
//   - Eager: [FieldFilter.InRange] rejects min > max and
//     [FieldFilter.WithinRadius] rejects a non-positive radius at
//     construction time, before anything is appended. Because fluent
//     chains cannot raise, the failure is recorded on the builder and
//     surfaces from [Builder.Build] or [Builder.Err].
//   - Deferred: [ValidateCondition] (and the opt-in [Builder.Validate])
//     checks required keys, value types, numeric finiteness, and
//     geographic bounds. Nothing invokes it implicitly; a caller that
//     never validates can build and send a structurally malformed filter.
//
// All violations are reported as [*ValidationError].
//
// # Pure Combinators
//
// [NewEqualityFilter], [NewRangeFilter], [CombineAnd], [CombineOr],
// [Negate], and [IsEmpty] operate directly on Filter values without the
// builder. [Serialize] and [Decode] round-trip the wire JSON:
//
//	s, _ := filter.Serialize(f)      // {"must":[{"match":{...}},...]}
//	f2, _ := filter.Decode([]byte(s)) // deep-equal to f
//
// # Concurrency
//
// Everything here is a pure computation over caller-owned values. A
// Builder has no internal synchronization; use one builder per query
// construction.
package filter
