package gelf

// NormalizeMeta converts arbitrary metadata attached to a log call into a
// value safe to hand to the JSON encoder, merged with the given static fields.
//
// A nil meta becomes an empty map. A bare error collapses to a map holding its
// message under "error". For a string-keyed map, every error value is reduced
// to its message, one level deep. Metadata that is neither of these passes
// through unchanged and the static fields are not applied, as there is nothing
// to merge them into.
func NormalizeMeta(meta any, staticFields map[string]any) any {
	switch t := meta.(type) {
	case nil:
		return mergeMeta(map[string]any{}, staticFields)
	case error:
		return mergeMeta(map[string]any{"error": t.Error()}, staticFields)
	case map[string]any:
		normalized := make(map[string]any, len(t))

		for k, v := range t {
			if err, ok := v.(error); ok {
				normalized[k] = err.Error()

				continue
			}

			normalized[k] = v
		}

		return mergeMeta(normalized, staticFields)
	default:
		return meta
	}
}

// mergeMeta merges source into a copy of target. Source wins on collision,
// nested string-keyed maps merge recursively, scalars overwrite.
func mergeMeta(target map[string]any, source map[string]any) map[string]any {
	merged := make(map[string]any, len(target)+len(source))

	for k, v := range target {
		merged[k] = v
	}

	for k, v := range source {
		sourceMap, sourceOk := v.(map[string]any)
		targetMap, targetOk := merged[k].(map[string]any)

		if sourceOk && targetOk {
			merged[k] = mergeMeta(targetMap, sourceMap)

			continue
		}

		merged[k] = v
	}

	return merged
}
