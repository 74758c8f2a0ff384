package mixamo

import "regexp"

// Prefix is the vendor namespace every standard joint name carries.
// Only names under this prefix participate in canonicalization.
const Prefix = "mixamorig:"

// canonical holds every standard joint name. The reference skeleton
// table is the single source of truth for the vocabulary.
var canonical = func() map[string]struct{} {
	m := make(map[string]struct{}, len(BoneDefs))
	for _, d := range BoneDefs {
		m[d.Name] = struct{}{}
	}
	return m
}()

// IsCanonical reports whether name is a standard joint name.
func IsCanonical(name string) bool {
	_, ok := canonical[name]
	return ok
}

// Importers disambiguate duplicated joints with a trailing underscore
// and 2-3 digits (Hips_02, Spine_015). Exactly that width: canonical
// names legitimately end in bare single digits (finger joints 1-4),
// which must never be stripped.
var suffixRe = regexp.MustCompile(`^(.+)_(\d{2,3})$`)

// CanonicalFor maps a bone name to its standard form. It returns the
// name itself when already standard, the suffix-stripped form when the
// remainder is standard, and ok=false when the name cannot be resolved.
func CanonicalFor(name string) (string, bool) {
	if IsCanonical(name) {
		return name, true
	}
	if m := suffixRe.FindStringSubmatch(name); m != nil {
		if IsCanonical(m[1]) {
			return m[1], true
		}
	}
	return "", false
}
